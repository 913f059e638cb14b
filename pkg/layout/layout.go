// Package layout turns an extracted dataset archive into the canonical
// train/val/test class-directory structure the trainer runtime expects.
//
// Accepted input shapes:
//   - train/val/test split dirs, each holding one dir per class
//   - train/test only; a validation split is carved out of train
//   - a bare root of class dirs; the files are auto-split 70/15/15
//
// Anything else fails with bad_dataset_layout. All moves and splits are
// deterministic so a re-run of the same archive produces the same structure.
package layout

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// Split directory names.
const (
	SplitTrain = "train"
	SplitVal   = "val"
	SplitTest  = "test"
)

// Info describes a prepared dataset.
type Info struct {
	// Root is the directory holding train/, val/, test/.
	Root string
	// Classes is the sorted list of class labels.
	Classes []string
	// FileCounts maps split name to number of sample files.
	FileCounts map[string]int
}

// NumClasses returns the class count.
func (i *Info) NumClasses() int {
	return len(i.Classes)
}

// Prepare normalizes the extracted archive under root into the canonical
// structure and validates it. The returned Info.Root may be a subdirectory
// of root when the archive nests its content.
func Prepare(root string) (*Info, error) {
	root, err := descendSingleRoot(root)
	if err != nil {
		return nil, err
	}
	if err := normalizeSplitCasing(root); err != nil {
		return nil, err
	}

	dirs, files, err := listEntries(root)
	if err != nil {
		return nil, err
	}

	hasTrain := contains(dirs, SplitTrain)
	hasVal := contains(dirs, SplitVal)
	hasTest := contains(dirs, SplitTest)

	switch {
	case hasTrain && hasVal && hasTest:
		// Already split.
	case hasTrain && hasTest:
		if err := carveValFromTrain(root); err != nil {
			return nil, err
		}
	case !hasTrain && !hasVal && !hasTest && len(dirs) > 0 && len(files) == 0:
		// Bare class dirs: auto-split.
		if err := autoSplit(root, dirs); err != nil {
			return nil, err
		}
	default:
		return nil, flowerr.New(flowerr.BadDatasetLayout, "prepare",
			"unrecognized dataset layout: dirs=%v files=%d", dirs, len(files))
	}

	return validate(root)
}

// descendSingleRoot unwraps archives whose content sits under one (possibly
// nested) wrapper directory.
func descendSingleRoot(root string) (string, error) {
	for {
		dirs, files, err := listEntries(root)
		if err != nil {
			return "", err
		}
		if len(files) == 0 && len(dirs) == 1 && !isSplitName(dirs[0]) {
			root = filepath.Join(root, dirs[0])
			continue
		}
		return root, nil
	}
}

// normalizeSplitCasing renames Train/VAL/Test style dirs to lowercase, and
// maps the common aliases "valid"/"validation" to val.
func normalizeSplitCasing(root string) error {
	aliases := map[string]string{
		"train": SplitTrain, "training": SplitTrain,
		"val": SplitVal, "valid": SplitVal, "validation": SplitVal,
		"test": SplitTest, "testing": SplitTest,
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return flowerr.Wrap(flowerr.Permanent, "prepare", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		canonical, ok := aliases[strings.ToLower(e.Name())]
		if !ok || e.Name() == canonical {
			continue
		}
		oldPath := filepath.Join(root, e.Name())
		newPath := filepath.Join(root, canonical)
		if _, err := os.Stat(newPath); err == nil {
			return flowerr.New(flowerr.BadDatasetLayout, "prepare",
				"both %q and %q present", e.Name(), canonical)
		}
		if err := os.Rename(oldPath, newPath); err != nil {
			return flowerr.Wrap(flowerr.Permanent, "prepare", err)
		}
	}
	return nil
}

// validate checks the canonical structure: every split holds the same
// non-empty set of class dirs, each class dir holds at least one file.
func validate(root string) (*Info, error) {
	info := &Info{Root: root, FileCounts: make(map[string]int)}

	var reference []string
	for _, split := range []string{SplitTrain, SplitVal, SplitTest} {
		splitDir := filepath.Join(root, split)
		classes, _, err := listEntries(splitDir)
		if err != nil {
			return nil, flowerr.New(flowerr.BadDatasetLayout, "validate", "missing %s split", split)
		}
		if len(classes) == 0 {
			return nil, flowerr.New(flowerr.BadDatasetLayout, "validate", "%s split has no class directories", split)
		}
		sort.Strings(classes)

		if reference == nil {
			reference = classes
		} else if !equalStrings(reference, classes) {
			return nil, flowerr.New(flowerr.BadDatasetLayout, "validate",
				"class mismatch between splits: %v vs %v", reference, classes)
		}

		count := 0
		for _, class := range classes {
			n, err := countFiles(filepath.Join(splitDir, class))
			if err != nil {
				return nil, err
			}
			if n == 0 {
				return nil, flowerr.New(flowerr.BadDatasetLayout, "validate",
					"class %q in %s split is empty", class, split)
			}
			count += n
		}
		info.FileCounts[split] = count
	}

	info.Classes = reference
	return info, nil
}

func listEntries(dir string) (dirs, files []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, flowerr.Wrap(flowerr.Permanent, "prepare", err)
	}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || name == "__MACOSX" {
			continue
		}
		if e.IsDir() {
			dirs = append(dirs, name)
		} else {
			files = append(files, name)
		}
	}
	return dirs, files, nil
}

func countFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, flowerr.Wrap(flowerr.Permanent, "validate", err)
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			n++
		}
	}
	return n, nil
}

func isSplitName(name string) bool {
	switch strings.ToLower(name) {
	case "train", "training", "val", "valid", "validation", "test", "testing":
		return true
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
