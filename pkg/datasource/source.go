// Package datasource finds and downloads public dataset archives for a
// project's search keywords. Kaggle is the only implemented source; the
// Source interface keeps the dataset agent independent of which one is
// configured.
package datasource

import "context"

// Candidate is one search result, prior to ranking.
type Candidate struct {
	// Ref is the source-native dataset reference, e.g. "owner/flowers-dataset".
	Ref string
	// Title is the human-readable dataset title.
	Title string
	// SizeBytes is the archive size as reported by the source.
	SizeBytes int64
	// Downloads is the source's popularity count.
	Downloads int
}

// SizeGB returns the candidate's size in gigabytes.
func (c Candidate) SizeGB() float64 {
	return float64(c.SizeBytes) / (1024 * 1024 * 1024)
}

// Source searches a dataset provider and downloads archives.
type Source interface {
	// Name identifies the provider ("kaggle").
	Name() string
	// Search returns candidates for a single query string.
	Search(ctx context.Context, query string) ([]Candidate, error)
	// Download fetches the candidate's archive to destPath and returns the
	// file extension of the archive (without dot), normally "zip".
	Download(ctx context.Context, ref, destPath string) (ext string, err error)
}
