package layout

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// buildZip writes a zip archive with the given entry name to content mapping.
// Entries ending in "/" become directories.
func buildZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	w := zip.NewWriter(f)
	for name, content := range entries {
		entry, err := w.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())
}

func TestExtractZip(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	buildZip(t, archive, map[string]string{
		"train/cats/1.jpg": "cat",
		"train/dogs/1.jpg": "dog",
		"labels.txt":       "cats\ndogs\n",
	})

	dest := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, ExtractZip(archive, dest))

	got, err := os.ReadFile(filepath.Join(dest, "train", "cats", "1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "cat", string(got))

	got, err = os.ReadFile(filepath.Join(dest, "labels.txt"))
	require.NoError(t, err)
	assert.Equal(t, "cats\ndogs\n", string(got))
}

func TestExtractZip_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "evil.zip")
	buildZip(t, archive, map[string]string{
		"../outside.txt": "escape",
	})

	dest := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(dest, 0o755))

	err := ExtractZip(archive, dest)
	require.Error(t, err)
	assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))

	_, statErr := os.Stat(filepath.Join(dir, "outside.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractZip_BadArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "not-a.zip")
	require.NoError(t, os.WriteFile(archive, []byte("plain text"), 0o644))

	err := ExtractZip(archive, dir)
	require.Error(t, err)
	assert.Equal(t, flowerr.BadDatasetLayout, flowerr.KindOf(err))
}

func TestZipDir_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFiles(t, src, "train/cats/1.jpg", "val/cats/2.jpg", "test/cats/3.jpg")

	archive := filepath.Join(dir, "processed.zip")
	require.NoError(t, ZipDir(src, archive))

	dest := filepath.Join(dir, "roundtrip")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, ExtractZip(archive, dest))

	for _, p := range []string{"train/cats/1.jpg", "val/cats/2.jpg", "test/cats/3.jpg"} {
		_, err := os.Stat(filepath.Join(dest, filepath.FromSlash(p)))
		assert.NoError(t, err, p)
	}
}
