package layout

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// writeFiles creates empty sample files under root, keyed by relative path.
func writeFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0o644))
	}
}

func TestPrepare_AlreadySplit(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"train/cats/1.jpg", "train/cats/2.jpg", "train/dogs/1.jpg",
		"val/cats/3.jpg", "val/dogs/2.jpg",
		"test/cats/4.jpg", "test/dogs/3.jpg",
	)

	info, err := Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, root, info.Root)
	assert.Equal(t, []string{"cats", "dogs"}, info.Classes)
	assert.Equal(t, 2, info.NumClasses())
	assert.Equal(t, map[string]int{"train": 3, "val": 2, "test": 2}, info.FileCounts)
}

func TestPrepare_DescendsWrapperDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"archive/dataset/train/cats/1.jpg", "archive/dataset/train/dogs/1.jpg",
		"archive/dataset/val/cats/2.jpg", "archive/dataset/val/dogs/2.jpg",
		"archive/dataset/test/cats/3.jpg", "archive/dataset/test/dogs/3.jpg",
	)

	info, err := Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "archive", "dataset"), info.Root)
	assert.Equal(t, []string{"cats", "dogs"}, info.Classes)
}

func TestPrepare_NormalizesSplitAliases(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"Training/cats/1.jpg", "Training/dogs/1.jpg",
		"validation/cats/2.jpg", "validation/dogs/2.jpg",
		"Testing/cats/3.jpg", "Testing/dogs/3.jpg",
	)

	info, err := Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"train": 2, "val": 2, "test": 2}, info.FileCounts)

	_, err = os.Stat(filepath.Join(root, "val", "cats", "2.jpg"))
	assert.NoError(t, err)
}

func TestPrepare_CarvesValFromTrain(t *testing.T) {
	root := t.TempDir()
	var paths []string
	for i := 0; i < 40; i++ {
		paths = append(paths, filepath.Join("train/cats", numbered("a", i)))
		paths = append(paths, filepath.Join("train/dogs", numbered("b", i)))
	}
	paths = append(paths, "test/cats/t1.jpg", "test/dogs/t2.jpg")
	writeFiles(t, root, paths...)

	info, err := Prepare(root)
	require.NoError(t, err)

	assert.Greater(t, info.FileCounts["val"], 0)
	assert.Equal(t, 80, info.FileCounts["train"]+info.FileCounts["val"])
	assert.Equal(t, 2, info.FileCounts["test"])
}

func TestPrepare_AutoSplitsBareClassDirs(t *testing.T) {
	root := t.TempDir()
	var paths []string
	for i := 0; i < 60; i++ {
		paths = append(paths, filepath.Join("roses", numbered("r", i)))
		paths = append(paths, filepath.Join("tulips", numbered("t", i)))
	}
	writeFiles(t, root, paths...)

	info, err := Prepare(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"roses", "tulips"}, info.Classes)
	total := info.FileCounts["train"] + info.FileCounts["val"] + info.FileCounts["test"]
	assert.Equal(t, 120, total)
	// 70/15/15 in expectation; train must dominate on 120 samples.
	assert.Greater(t, info.FileCounts["train"], info.FileCounts["val"])
	assert.Greater(t, info.FileCounts["train"], info.FileCounts["test"])

	// The bare class dirs are gone after the move.
	_, err = os.Stat(filepath.Join(root, "roses"))
	assert.True(t, os.IsNotExist(err))
}

func TestPrepare_AutoSplitIsDeterministic(t *testing.T) {
	build := func() map[string]int {
		root := t.TempDir()
		var paths []string
		for i := 0; i < 50; i++ {
			paths = append(paths, filepath.Join("roses", numbered("r", i)))
		}
		writeFiles(t, root, paths...)

		info, err := Prepare(root)
		require.NoError(t, err)
		return info.FileCounts
	}

	assert.Equal(t, build(), build())
}

func TestPrepare_RejectsBadLayouts(t *testing.T) {
	t.Run("loose files at root", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "readme.txt", "cats/1.jpg")
		_, err := Prepare(root)
		require.Error(t, err)
		assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
	})

	t.Run("class mismatch between splits", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root,
			"train/cats/1.jpg", "train/dogs/1.jpg",
			"val/cats/2.jpg", "val/dogs/2.jpg",
			"test/cats/3.jpg", "test/birds/1.jpg",
		)
		_, err := Prepare(root)
		require.Error(t, err)
		assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
	})

	t.Run("empty class dir", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root,
			"train/cats/1.jpg", "val/cats/2.jpg", "test/cats/3.jpg",
		)
		require.NoError(t, os.MkdirAll(filepath.Join(root, "train", "dogs"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "val", "dogs"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "test", "dogs"), 0o755))
		_, err := Prepare(root)
		require.Error(t, err)
		assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
	})

	t.Run("conflicting split aliases", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root,
			"val/cats/1.jpg", "validation/cats/2.jpg",
			"train/cats/3.jpg", "test/cats/4.jpg",
		)
		_, err := Prepare(root)
		require.Error(t, err)
		assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
	})
}

func TestPrepare_IgnoresJunkEntries(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root,
		"train/cats/1.jpg", "val/cats/2.jpg", "test/cats/3.jpg",
		".DS_Store",
		"__MACOSX/train/cats/._1.jpg",
	)

	info, err := Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"cats"}, info.Classes)
}

func TestSplitFor_CoversAllSplitsDeterministically(t *testing.T) {
	counts := map[string]int{}
	for i := 0; i < 500; i++ {
		name := numbered("sample", i)
		split := splitFor(name)
		assert.Equal(t, split, splitFor(name))
		counts[split]++
	}

	assert.Greater(t, counts[SplitTrain], counts[SplitVal])
	assert.Greater(t, counts[SplitTrain], counts[SplitTest])
	assert.Greater(t, counts[SplitVal], 0)
	assert.Greater(t, counts[SplitTest], 0)
}

func TestCarveVal_TinyClassFallback(t *testing.T) {
	// Force moved==0 by finding two names that both hash to train, then
	// verify the smallest-name fallback kicks in.
	root := t.TempDir()
	names := trainOnlyNames(t, 2)
	writeFiles(t, root,
		filepath.Join("train/cats", names[0]),
		filepath.Join("train/cats", names[1]),
		"test/cats/t.jpg",
	)

	info, err := Prepare(root)
	require.NoError(t, err)
	assert.Equal(t, 1, info.FileCounts["val"])
	assert.Equal(t, 1, info.FileCounts["train"])
}

func TestCarveVal_SingleSampleFails(t *testing.T) {
	root := t.TempDir()
	names := trainOnlyNames(t, 1)
	writeFiles(t, root,
		filepath.Join("train/cats", names[0]),
		"test/cats/t.jpg",
	)

	_, err := Prepare(root)
	require.Error(t, err)
	assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
}

// trainOnlyNames finds n filenames whose hash bucket lands in train.
func trainOnlyNames(t *testing.T, n int) []string {
	t.Helper()
	var names []string
	for i := 0; len(names) < n && i < 10000; i++ {
		name := numbered("img", i)
		if splitFor(name) == SplitTrain {
			names = append(names, name)
		}
	}
	require.Len(t, names, n)
	sort.Strings(names)
	return names
}

func numbered(prefix string, i int) string {
	return prefix + "_" + string(rune('a'+i%26)) + string(rune('a'+(i/26)%26)) + ".jpg"
}
