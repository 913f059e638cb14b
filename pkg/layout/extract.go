package layout

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// ExtractZip unpacks archivePath into destDir. Entries that would escape
// destDir are rejected rather than skipped: an archive that tries traversal
// is not one we want any part of.
func ExtractZip(archivePath, destDir string) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return flowerr.Wrap(flowerr.BadDatasetLayout, "extract", fmt.Errorf("open archive: %w", err))
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
	}
	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	cleaned := filepath.Clean(f.Name)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return flowerr.New(flowerr.BadDatasetLayout, "extract", "archive entry %q escapes extraction root", f.Name)
	}
	target := filepath.Join(destDir, cleaned)
	if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
		return flowerr.New(flowerr.BadDatasetLayout, "extract", "archive entry %q escapes extraction root", f.Name)
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(target, 0o755); err != nil {
			return flowerr.Wrap(flowerr.ResourceExhausted, "extract", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return flowerr.Wrap(flowerr.ResourceExhausted, "extract", err)
	}

	src, err := f.Open()
	if err != nil {
		return flowerr.Wrap(flowerr.BadDatasetLayout, "extract", fmt.Errorf("open entry %q: %w", f.Name, err))
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return flowerr.Wrap(flowerr.ResourceExhausted, "extract", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return flowerr.Wrap(flowerr.ResourceExhausted, "extract", err)
	}
	return dst.Close()
}
