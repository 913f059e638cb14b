package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables Load reads so ambient environment does not
// leak into assertions.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"AGENTS", "HTTP_PORT", "LOG_LEVEL", "LLM_SERVICE_ADDR",
		"TRAINER_SERVICE_ADDR", "KAGGLE_USERNAME", "KAGGLE_KEY",
		"POLL_INTERVAL_SECONDS", "BATCH_LIMIT", "MAX_DATASET_SIZE_GB",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, AllAgents, cfg.Agents)
	assert.Equal(t, 8000, cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "localhost:50051", cfg.LLMServiceAddr)
	assert.Equal(t, "localhost:50052", cfg.TrainerServiceAddr)
	assert.Equal(t, 10*time.Second, cfg.Pipeline.PollInterval)
	assert.Equal(t, 5, cfg.Pipeline.BatchLimit)
	assert.InDelta(t, 50.0, cfg.Pipeline.MaxDatasetSizeGB, 1e-9)
	assert.Equal(t, 120*time.Minute, cfg.Pipeline.WorkflowTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("POLL_INTERVAL_SECONDS", "2")
	t.Setenv("MAX_DATASET_SIZE_GB", "1.5")
	t.Setenv("AGENTS", "gateway, training")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 2*time.Second, cfg.Pipeline.PollInterval)
	assert.InDelta(t, 1.5, cfg.Pipeline.MaxDatasetSizeGB, 1e-9)
	assert.Equal(t, []string{"gateway", "training"}, cfg.Agents)
}

func TestLoad_InvalidAgents(t *testing.T) {
	clearEnv(t)

	t.Setenv("AGENTS", "gateway,scheduler")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduler")

	t.Setenv("AGENTS", ", ,")
	_, err = Load()
	require.Error(t, err)
}

func TestLoad_BadNumberFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "not-a-port")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.HTTPPort)
}

func TestHasAgent(t *testing.T) {
	cfg := &Config{Agents: []string{"gateway", "dataset"}}
	assert.True(t, cfg.HasAgent("dataset"))
	assert.False(t, cfg.HasAgent("training"))
}
