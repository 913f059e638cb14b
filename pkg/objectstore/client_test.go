package objectstore

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RetryBudgets(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	c, err := NewClient(Config{
		Endpoint:        "localhost:9000",
		Scheme:          "s3",
		DefaultBucket:   "foundry",
		AllowedBuckets:  []string{"foundry"},
		DownloadRetries: 2,
		UploadRetries:   7,
	}, logger)
	require.NoError(t, err)
	assert.Equal(t, 2, c.downloadAttempts)
	assert.Equal(t, 7, c.uploadAttempts)

	// Unset budgets fall back to the default of 5.
	c, err = NewClient(Config{Endpoint: "localhost:9000"}, logger)
	require.NoError(t, err)
	assert.Equal(t, 5, c.downloadAttempts)
	assert.Equal(t, 5, c.uploadAttempts)
}

func TestNextDelay(t *testing.T) {
	assert.Equal(t, 2*time.Second, nextDelay(time.Second, 30*time.Second))
	assert.Equal(t, 30*time.Second, nextDelay(20*time.Second, 30*time.Second))
}
