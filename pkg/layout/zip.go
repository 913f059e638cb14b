package layout

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// ZipDir archives the contents of srcDir into destZip, with entry names
// relative to srcDir and forward slashes, so the archive round-trips through
// ExtractZip.
func ZipDir(srcDir, destZip string) error {
	out, err := os.Create(destZip)
	if err != nil {
		return flowerr.Wrap(flowerr.ResourceExhausted, "zip", err)
	}
	w := zip.NewWriter(out)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		entry, err := w.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(entry, f)
		return err
	})
	if err != nil {
		_ = w.Close()
		_ = out.Close()
		_ = os.Remove(destZip)
		return flowerr.Wrap(flowerr.ResourceExhausted, "zip", err)
	}

	if err := w.Close(); err != nil {
		_ = out.Close()
		_ = os.Remove(destZip)
		return flowerr.Wrap(flowerr.ResourceExhausted, "zip", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(destZip)
		return flowerr.Wrap(flowerr.ResourceExhausted, "zip", err)
	}
	return nil
}
