// Package poll provides the shared polling loop the workflow agents run on.
// Each agent owns one project status; the runner repeatedly fetches projects
// in that status, oldest updated first, and hands them to the workflow.
package poll

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
)

// Workflow is one agent's unit of work for a single project.
type Workflow interface {
	// AgentName identifies the agent for logging.
	AgentName() models.AgentName
	// OwnedStatus is the status this agent polls for.
	OwnedStatus() models.Status
	// Run processes one project end to end, including its own failure
	// handling. The error return is for the runner's log only.
	Run(ctx context.Context, project *models.Project) error
}

// ProjectLister is the store subset the runner needs.
type ProjectLister interface {
	ProjectsByStatus(ctx context.Context, status models.Status, limit int) ([]*models.Project, error)
}

// Config holds the runner settings for one agent.
type Config struct {
	PollInterval    time.Duration
	BatchLimit      int
	WorkflowTimeout time.Duration
}

// Status is a snapshot of the runner for the polling status endpoint.
type Status struct {
	IsRunning              bool          `json:"is_running"`
	PollInterval           time.Duration `json:"-"`
	PollIntervalSeconds    float64       `json:"poll_interval"`
	ProcessedProjectsCount int           `json:"processed_projects_count"`
}

// Runner drives one workflow's polling loop.
type Runner struct {
	workflow Workflow
	lister   ProjectLister
	config   Config
	logger   *slog.Logger

	mu        sync.Mutex
	running   bool
	stopCh    chan struct{}
	wg        sync.WaitGroup
	processed int
	inFlight  map[string]struct{}
}

// NewRunner creates a runner for a workflow.
func NewRunner(workflow Workflow, lister ProjectLister, cfg Config, logger *slog.Logger) *Runner {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 1
	}
	return &Runner{
		workflow: workflow,
		lister:   lister,
		config:   cfg,
		logger:   logger.With("agent", workflow.AgentName()),
		inFlight: make(map[string]struct{}),
	}
}

// Start launches the polling loop. Calling Start on a running runner is a
// no-op.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.running = true
	r.stopCh = make(chan struct{})

	r.wg.Add(1)
	go r.run(ctx, r.stopCh)
	r.logger.Info("Polling started", "status", r.workflow.OwnedStatus(), "interval", r.config.PollInterval)
}

// Stop signals the loop to exit and waits for in-flight work to drain.
// Calling Stop on a stopped runner is a no-op.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	r.wg.Wait()
	r.logger.Info("Polling stopped")
}

// Status returns a snapshot for the polling status endpoint.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Status{
		IsRunning:              r.running,
		PollInterval:           r.config.PollInterval,
		PollIntervalSeconds:    r.config.PollInterval.Seconds(),
		ProcessedProjectsCount: r.processed,
	}
}

func (r *Runner) run(ctx context.Context, stopCh chan struct{}) {
	defer r.wg.Done()

	for {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		default:
			r.tick(ctx, stopCh)
			r.sleep(stopCh, r.config.PollInterval)
		}
	}
}

// tick fetches one batch of owned-status projects and runs them one at a
// time. Projects already in flight in this process are skipped; the status
// row is the cross-process guard.
func (r *Runner) tick(ctx context.Context, stopCh chan struct{}) {
	projects, err := r.lister.ProjectsByStatus(ctx, r.workflow.OwnedStatus(), r.config.BatchLimit)
	if err != nil {
		r.logger.Error("Poll query failed", "error", err)
		return
	}

	for _, project := range projects {
		select {
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		default:
		}

		if !r.markInFlight(project.ID) {
			continue
		}
		r.process(ctx, project)
		r.clearInFlight(project.ID)
	}
}

func (r *Runner) process(ctx context.Context, project *models.Project) {
	log := r.logger.With("project_id", project.ID)
	log.Info("Project claimed for processing")

	runCtx := ctx
	var cancel context.CancelFunc
	if r.config.WorkflowTimeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, r.config.WorkflowTimeout)
		defer cancel()
	}

	if err := r.workflow.Run(runCtx, project); err != nil {
		if flowerr.KindOf(err) == flowerr.Conflict {
			// Another process advanced the project first; nothing to do.
			log.Info("Project claimed elsewhere", "error", err)
		} else {
			log.Error("Workflow failed", "kind", flowerr.KindOf(err), "error", err)
		}
	} else {
		log.Info("Workflow complete")
	}

	r.mu.Lock()
	r.processed++
	r.mu.Unlock()
}

func (r *Runner) markInFlight(projectID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.inFlight[projectID]; ok {
		return false
	}
	r.inFlight[projectID] = struct{}{}
	return true
}

func (r *Runner) clearInFlight(projectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inFlight, projectID)
}

// sleep waits for the poll interval or until stop is signalled.
func (r *Runner) sleep(stopCh chan struct{}, d time.Duration) {
	select {
	case <-stopCh:
	case <-time.After(d):
	}
}
