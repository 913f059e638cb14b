// Package config loads process configuration from the environment. A .env
// file is read at startup when present; explicit environment variables win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full process configuration.
type Config struct {
	// Agents lists the roles this process runs.
	Agents []string

	HTTPPort int
	LogLevel string

	LLMServiceAddr     string
	TrainerServiceAddr string

	KaggleUsername string
	KaggleKey      string

	Pipeline PipelineConfig
}

// PipelineConfig controls the workflow agents.
type PipelineConfig struct {
	// PollInterval is the base interval between poll ticks.
	PollInterval time.Duration

	// BatchLimit is the per-tick fetch size for dataset and evaluation
	// agents. Training always runs one project at a time.
	BatchLimit int

	// MaxDatasetSizeGB is the hard ceiling on dataset archive size.
	MaxDatasetSizeGB float64

	// Training hyperparameter defaults, overridable per plan.
	BatchSize           int
	DefaultEpochs       int
	DefaultLearningRate float64

	// Retry budgets.
	DownloadRetries      int
	UploadRetries        int
	AdvanceStatusRetries int

	// WorkflowTimeout bounds one project's workflow run.
	WorkflowTimeout time.Duration

	// ShutdownTimeout bounds graceful drain on stop.
	ShutdownTimeout time.Duration
}

// AllAgents is the default role set.
var AllAgents = []string{"gateway", "planner", "dataset", "training", "evaluation"}

// Load reads configuration from the environment, loading a .env file first
// when one exists.
func Load() (*Config, error) {
	// Missing .env is fine; explicit environment always wins.
	_ = godotenv.Load()

	cfg := &Config{
		Agents:             AllAgents,
		HTTPPort:           envInt("HTTP_PORT", 8000),
		LogLevel:           envString("LOG_LEVEL", "info"),
		LLMServiceAddr:     envString("LLM_SERVICE_ADDR", "localhost:50051"),
		TrainerServiceAddr: envString("TRAINER_SERVICE_ADDR", "localhost:50052"),
		KaggleUsername:     os.Getenv("KAGGLE_USERNAME"),
		KaggleKey:          os.Getenv("KAGGLE_KEY"),
		Pipeline: PipelineConfig{
			PollInterval:         time.Duration(envInt("POLL_INTERVAL_SECONDS", 10)) * time.Second,
			BatchLimit:           envInt("BATCH_LIMIT", 5),
			MaxDatasetSizeGB:     envFloat("MAX_DATASET_SIZE_GB", 50),
			BatchSize:            envInt("BATCH_SIZE", 32),
			DefaultEpochs:        envInt("DEFAULT_EPOCHS", 10),
			DefaultLearningRate:  envFloat("DEFAULT_LEARNING_RATE", 0.001),
			DownloadRetries:      envInt("DOWNLOAD_RETRIES", 5),
			UploadRetries:        envInt("UPLOAD_RETRIES", 5),
			AdvanceStatusRetries: envInt("ADVANCE_STATUS_RETRIES", 3),
			WorkflowTimeout:      time.Duration(envInt("WORKFLOW_TIMEOUT_MINUTES", 120)) * time.Minute,
			ShutdownTimeout:      time.Duration(envInt("SHUTDOWN_TIMEOUT_SECONDS", 30)) * time.Second,
		},
	}

	if agents := os.Getenv("AGENTS"); agents != "" {
		cfg.Agents = nil
		for _, role := range strings.Split(agents, ",") {
			role = strings.TrimSpace(role)
			if role == "" {
				continue
			}
			if !validRole(role) {
				return nil, fmt.Errorf("unknown agent role %q in AGENTS", role)
			}
			cfg.Agents = append(cfg.Agents, role)
		}
		if len(cfg.Agents) == 0 {
			return nil, fmt.Errorf("AGENTS must name at least one role")
		}
	}

	return cfg, nil
}

// HasAgent reports whether the given role is enabled.
func (c *Config) HasAgent(role string) bool {
	for _, a := range c.Agents {
		if a == role {
			return true
		}
	}
	return false
}

func validRole(role string) bool {
	for _, a := range AllAgents {
		if a == role {
			return true
		}
	}
	return false
}

func envString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
