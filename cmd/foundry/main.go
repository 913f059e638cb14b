// Foundry pipeline server. One binary runs any combination of roles: the
// HTTP gateway, the planner, and the dataset/training/evaluation polling
// agents, selected with -agents or the AGENTS environment variable.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/agents/dataset"
	"github.com/modelfoundry/foundry/pkg/agents/evaluation"
	"github.com/modelfoundry/foundry/pkg/agents/planner"
	"github.com/modelfoundry/foundry/pkg/agents/training"
	"github.com/modelfoundry/foundry/pkg/api"
	"github.com/modelfoundry/foundry/pkg/config"
	"github.com/modelfoundry/foundry/pkg/database"
	"github.com/modelfoundry/foundry/pkg/datasource"
	"github.com/modelfoundry/foundry/pkg/llm"
	"github.com/modelfoundry/foundry/pkg/objectstore"
	"github.com/modelfoundry/foundry/pkg/poll"
	"github.com/modelfoundry/foundry/pkg/store"
	"github.com/modelfoundry/foundry/pkg/trainer"
	"github.com/modelfoundry/foundry/pkg/version"
)

func main() {
	agentsFlag := flag.String("agents", "",
		"Comma-separated roles to run (gateway,planner,dataset,training,evaluation); overrides AGENTS")
	flag.Parse()

	if *agentsFlag != "" {
		os.Setenv("AGENTS", *agentsFlag)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)
	slog.Info("Starting foundry",
		"version", version.Full(),
		"agents", strings.Join(cfg.Agents, ","),
		"http_port", cfg.HTTPPort)

	ctx := context.Background()

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	st := store.New(dbClient.Client)

	// Object store
	osConfig := objectstore.LoadConfigFromEnv()
	osConfig.DownloadRetries = cfg.Pipeline.DownloadRetries
	osConfig.UploadRetries = cfg.Pipeline.UploadRetries
	objects, err := objectstore.NewClient(osConfig, slog.Default())
	if err != nil {
		slog.Error("Failed to initialize object store client", "error", err)
		os.Exit(1)
	}

	// Planner (LLM sidecar connection is lazy; dialing happens on first RPC)
	var plannerAgent *planner.Agent
	if cfg.HasAgent("planner") {
		llmClient, err := llm.NewClient(cfg.LLMServiceAddr)
		if err != nil {
			slog.Error("Failed to initialize LLM client", "addr", cfg.LLMServiceAddr, "error", err)
			os.Exit(1)
		}
		defer llmClient.Close()
		plannerAgent = planner.New(st, llmClient, slog.Default())
		slog.Info("Planner initialized", "llm_addr", cfg.LLMServiceAddr)
	}

	// Trainer runtime, shared by training, evaluation, and the gateway's
	// test-inference endpoint.
	var runtime *trainer.Client
	if cfg.HasAgent("training") || cfg.HasAgent("evaluation") || cfg.HasAgent("gateway") {
		runtime, err = trainer.NewClient(cfg.TrainerServiceAddr)
		if err != nil {
			slog.Error("Failed to initialize trainer client", "addr", cfg.TrainerServiceAddr, "error", err)
			os.Exit(1)
		}
		defer runtime.Close()
	}

	var predictor api.Predictor
	if runtime != nil {
		predictor = runtime
	}
	server := api.NewServer(dbClient, st, objects, plannerAgent, predictor, slog.Default())

	// Workflow agents
	var runners []*poll.Runner
	pcfg := cfg.Pipeline

	if cfg.HasAgent("dataset") {
		source := datasource.NewKaggleClient(cfg.KaggleUsername, cfg.KaggleKey)
		workflow := dataset.New(st, objects, source, pcfg, slog.Default())
		runner := poll.NewRunner(workflow, st, poll.Config{
			PollInterval:    pcfg.PollInterval,
			BatchLimit:      pcfg.BatchLimit,
			WorkflowTimeout: pcfg.WorkflowTimeout,
		}, slog.Default())
		server.RegisterAgent(workflow, runner)
		runners = append(runners, runner)
	}

	if cfg.HasAgent("training") {
		workflow := training.New(st, objects, runtime, pcfg, slog.Default())
		runner := poll.NewRunner(workflow, st, poll.Config{
			PollInterval: pcfg.PollInterval,
			// One training at a time per process.
			BatchLimit:      1,
			WorkflowTimeout: pcfg.WorkflowTimeout,
		}, slog.Default())
		server.RegisterAgent(workflow, runner)
		runners = append(runners, runner)
	}

	if cfg.HasAgent("evaluation") {
		workflow := evaluation.New(st, objects, runtime, pcfg, slog.Default())
		runner := poll.NewRunner(workflow, st, poll.Config{
			PollInterval:    pcfg.PollInterval,
			BatchLimit:      pcfg.BatchLimit,
			WorkflowTimeout: pcfg.WorkflowTimeout,
		}, slog.Default())
		server.RegisterAgent(workflow, runner)
		runners = append(runners, runner)
	}

	for _, runner := range runners {
		runner.Start(ctx)
	}

	// HTTP server
	router := gin.New()
	router.Use(gin.Recovery())
	server.Routes(router)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: drain the polling agents within the shutdown
	// budget, then stop the HTTP server.
	drainCtx, cancel := context.WithTimeout(ctx, pcfg.ShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		for _, runner := range runners {
			runner.Stop()
		}
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Polling agents stopped gracefully")
	case <-drainCtx.Done():
		slog.Warn("Shutdown timeout exceeded; in-flight projects will be re-polled on restart")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn", "warning":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
