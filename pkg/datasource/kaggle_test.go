package datasource

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

func newTestKaggleClient(baseURL string) *KaggleClient {
	return &KaggleClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		username:   "user",
		key:        "key",
		baseURL:    baseURL,
	}
}

func TestKaggleSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, key, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "user", user)
		assert.Equal(t, "key", key)
		assert.Equal(t, "cats dogs", r.URL.Query().Get("search"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"ref": "a/cats", "title": "Cats", "totalBytes": 1048576, "downloadCount": 1200},
			{"ref": "", "title": "broken entry"},
			{"ref": "b/dogs", "title": "Dogs", "totalBytes": 2097152, "downloadCount": 50}
		]`))
	}))
	defer srv.Close()

	c := newTestKaggleClient(srv.URL)
	candidates, err := c.Search(t.Context(), "cats dogs")
	require.NoError(t, err)

	require.Len(t, candidates, 2)
	assert.Equal(t, Candidate{Ref: "a/cats", Title: "Cats", SizeBytes: 1048576, Downloads: 1200}, candidates[0])
	assert.Equal(t, "b/dogs", candidates[1].Ref)
}

func TestKaggleSearch_ErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		kind   flowerr.Kind
	}{
		{http.StatusTooManyRequests, flowerr.Transient},
		{http.StatusBadGateway, flowerr.Transient},
		{http.StatusForbidden, flowerr.Dependency},
	}
	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		c := newTestKaggleClient(srv.URL)

		_, err := c.Search(t.Context(), "cats")
		require.Error(t, err, "status %d", tt.status)
		assert.Equal(t, tt.kind, flowerr.KindOf(err), "status %d", tt.status)
		srv.Close()
	}
}

func TestKaggleDownload(t *testing.T) {
	payload := []byte("PK\x03\x04 pretend zip bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/datasets/download/a/cats", r.URL.Path)
		_, _ = w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "raw.zip")
	c := newTestKaggleClient(srv.URL)

	ext, err := c.Download(t.Context(), "a/cats", dest)
	require.NoError(t, err)
	assert.Equal(t, "zip", ext)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestKaggleDownload_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestKaggleClient(srv.URL)
	_, err := c.Download(t.Context(), "a/missing", filepath.Join(t.TempDir(), "raw.zip"))
	require.Error(t, err)
	assert.Equal(t, flowerr.NotFound, flowerr.KindOf(err))
}
