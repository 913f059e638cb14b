package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

const kaggleAPIBase = "https://www.kaggle.com/api/v1"

// KaggleClient provides HTTP access to the Kaggle datasets API.
type KaggleClient struct {
	httpClient *http.Client
	username   string
	key        string
	baseURL    string
}

// NewKaggleClient creates a Kaggle API client. Credentials come from the
// KAGGLE_USERNAME and KAGGLE_KEY environment variables when empty strings
// are passed.
func NewKaggleClient(username, key string) *KaggleClient {
	if username == "" {
		username = os.Getenv("KAGGLE_USERNAME")
	}
	if key == "" {
		key = os.Getenv("KAGGLE_KEY")
	}
	return &KaggleClient{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		username:   username,
		key:        key,
		baseURL:    kaggleAPIBase,
	}
}

// Name implements Source.
func (c *KaggleClient) Name() string {
	return "kaggle"
}

// kaggleDataset is one entry of the datasets list API response.
type kaggleDataset struct {
	Ref           string `json:"ref"`
	Title         string `json:"title"`
	TotalBytes    int64  `json:"totalBytes"`
	DownloadCount int    `json:"downloadCount"`
}

// Search implements Source using the datasets list endpoint, sorted by
// popularity.
func (c *KaggleClient) Search(ctx context.Context, query string) ([]Candidate, error) {
	apiURL := fmt.Sprintf("%s/datasets/list?search=%s&sortBy=votes&fileType=all&page=1",
		c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, flowerr.Wrap(flowerr.Transient, "kaggle_search", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, flowerr.New(flowerr.Transient, "kaggle_search", "kaggle returned HTTP %d for %q", resp.StatusCode, query)
	default:
		return nil, flowerr.New(flowerr.Dependency, "kaggle_search", "kaggle returned HTTP %d for %q", resp.StatusCode, query)
	}

	var datasets []kaggleDataset
	if err := json.NewDecoder(resp.Body).Decode(&datasets); err != nil {
		return nil, flowerr.Wrap(flowerr.Dependency, "kaggle_search", err)
	}

	candidates := make([]Candidate, 0, len(datasets))
	for _, d := range datasets {
		if d.Ref == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			Ref:       d.Ref,
			Title:     d.Title,
			SizeBytes: d.TotalBytes,
			Downloads: d.DownloadCount,
		})
	}
	return candidates, nil
}

// Download implements Source. Kaggle serves dataset archives as zip files.
func (c *KaggleClient) Download(ctx context.Context, ref, destPath string) (string, error) {
	apiURL := fmt.Sprintf("%s/datasets/download/%s", c.baseURL, ref)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.SetBasicAuth(c.username, c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", flowerr.Wrap(flowerr.Transient, "kaggle_download", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return "", flowerr.New(flowerr.NotFound, "kaggle_download", "dataset %s not found", ref)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return "", flowerr.New(flowerr.Transient, "kaggle_download", "kaggle returned HTTP %d for %s", resp.StatusCode, ref)
	default:
		return "", flowerr.New(flowerr.Dependency, "kaggle_download", "kaggle returned HTTP %d for %s", resp.StatusCode, ref)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return "", flowerr.Wrap(flowerr.ResourceExhausted, "kaggle_download", err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		_ = os.Remove(destPath)
		return "", flowerr.Wrap(flowerr.Transient, "kaggle_download", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(destPath)
		return "", flowerr.Wrap(flowerr.ResourceExhausted, "kaggle_download", err)
	}

	return "zip", nil
}

// Queries builds the search strategies for a keyword set, in order of
// preference: the exact phrase first, then each keyword on its own, then
// adjacent keyword pairs. Duplicates are dropped while preserving order.
func Queries(keywords []string) []string {
	var queries []string
	seen := make(map[string]bool)
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q != "" && !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}

	add(strings.Join(keywords, " "))
	for _, kw := range keywords {
		add(kw)
	}
	for i := 0; i+1 < len(keywords); i++ {
		add(keywords[i] + " " + keywords[i+1])
	}
	return queries
}
