package layout

import (
	"hash/fnv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// Split fractions for auto-split and val carving, in percent.
const (
	trainPercent = 70
	valPercent   = 15
	// test takes the remainder.
)

// splitFor assigns a filename to a split by hashing it. The assignment
// depends only on the name, so re-running the split on the same archive is
// a no-op in expectation and never mixes samples across splits differently.
func splitFor(filename string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(filename))
	bucket := h.Sum32() % 100
	switch {
	case bucket < trainPercent:
		return SplitTrain
	case bucket < trainPercent+valPercent:
		return SplitVal
	default:
		return SplitTest
	}
}

// autoSplit converts a bare root of class dirs into train/val/test splits,
// moving each file to the split its name hashes to.
func autoSplit(root string, classes []string) error {
	sort.Strings(classes)
	for _, class := range classes {
		classDir := filepath.Join(root, class)
		entries, err := os.ReadDir(classDir)
		if err != nil {
			return flowerr.Wrap(flowerr.Permanent, "auto_split", err)
		}

		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			split := splitFor(e.Name())
			destDir := filepath.Join(root, split, class)
			if err := os.MkdirAll(destDir, 0o755); err != nil {
				return flowerr.Wrap(flowerr.ResourceExhausted, "auto_split", err)
			}
			if err := os.Rename(filepath.Join(classDir, e.Name()), filepath.Join(destDir, e.Name())); err != nil {
				return flowerr.Wrap(flowerr.Permanent, "auto_split", err)
			}
		}

		if err := os.Remove(classDir); err != nil {
			return flowerr.Wrap(flowerr.Permanent, "auto_split", err)
		}
	}
	return nil
}

// carveValFromTrain builds a val split for train+test archives by moving a
// deterministic ~15% of each train class into val.
func carveValFromTrain(root string) error {
	trainDir := filepath.Join(root, SplitTrain)
	classes, _, err := listEntries(trainDir)
	if err != nil {
		return err
	}
	sort.Strings(classes)

	for _, class := range classes {
		classDir := filepath.Join(trainDir, class)
		entries, err := os.ReadDir(classDir)
		if err != nil {
			return flowerr.Wrap(flowerr.Permanent, "carve_val", err)
		}

		valDir := filepath.Join(root, SplitVal, class)
		if err := os.MkdirAll(valDir, 0o755); err != nil {
			return flowerr.Wrap(flowerr.ResourceExhausted, "carve_val", err)
		}

		moved := 0
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			// Reuse the hash assignment: the val bucket is the carve set.
			if splitFor(e.Name()) != SplitVal {
				continue
			}
			if err := os.Rename(filepath.Join(classDir, e.Name()), filepath.Join(valDir, e.Name())); err != nil {
				return flowerr.Wrap(flowerr.Permanent, "carve_val", err)
			}
			moved++
		}

		// Hash skew can leave a tiny class with nothing in the val bucket;
		// move the first file so the split validates.
		if moved == 0 {
			if err := moveFirstFile(classDir, valDir); err != nil {
				return err
			}
		}
	}
	return nil
}

func moveFirstFile(fromDir, toDir string) error {
	entries, err := os.ReadDir(fromDir)
	if err != nil {
		return flowerr.Wrap(flowerr.Permanent, "carve_val", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	if len(names) < 2 {
		return flowerr.New(flowerr.BadDatasetLayout, "carve_val",
			"class %q has too few samples to carve a validation split", filepath.Base(fromDir))
	}
	sort.Strings(names)
	return flowerr.Wrap(flowerr.Permanent, "carve_val",
		os.Rename(filepath.Join(fromDir, names[0]), filepath.Join(toDir, names[0])))
}
