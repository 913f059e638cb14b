package poll

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
)

type fakeLister struct {
	mu       sync.Mutex
	projects []*models.Project
	calls    int
}

func (l *fakeLister) ProjectsByStatus(ctx context.Context, status models.Status, limit int) ([]*models.Project, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if len(l.projects) > limit {
		return l.projects[:limit], nil
	}
	return l.projects, nil
}

func (l *fakeLister) set(projects ...*models.Project) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.projects = projects
}

type fakeWorkflow struct {
	mu      sync.Mutex
	runs    []string
	runErr  error
	block   chan struct{} // when non-nil, Run waits on it
	started chan string   // when non-nil, Run reports the project id on entry
}

func (w *fakeWorkflow) AgentName() models.AgentName { return models.AgentDataset }
func (w *fakeWorkflow) OwnedStatus() models.Status  { return models.StatusPendingDataset }

func (w *fakeWorkflow) Run(ctx context.Context, project *models.Project) error {
	if w.started != nil {
		w.started <- project.ID
	}
	if w.block != nil {
		<-w.block
	}
	w.mu.Lock()
	w.runs = append(w.runs, project.ID)
	w.mu.Unlock()
	return w.runErr
}

func (w *fakeWorkflow) runCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.runs)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestRunner_ProcessesProjects(t *testing.T) {
	lister := &fakeLister{}
	lister.set(&models.Project{ID: "p1", Status: models.StatusPendingDataset})
	workflow := &fakeWorkflow{}

	r := NewRunner(workflow, lister, Config{PollInterval: 5 * time.Millisecond, BatchLimit: 5}, testLogger())
	r.Start(t.Context())
	defer r.Stop()

	waitFor(t, func() bool { return workflow.runCount() >= 1 })

	status := r.Status()
	assert.True(t, status.IsRunning)
	assert.Greater(t, status.ProcessedProjectsCount, 0)
}

func TestRunner_StartStopIdempotent(t *testing.T) {
	lister := &fakeLister{}
	workflow := &fakeWorkflow{}
	r := NewRunner(workflow, lister, Config{PollInterval: 5 * time.Millisecond}, testLogger())

	r.Start(t.Context())
	r.Start(t.Context()) // no-op
	assert.True(t, r.Status().IsRunning)

	r.Stop()
	r.Stop() // no-op
	assert.False(t, r.Status().IsRunning)

	// A stopped runner can be restarted.
	r.Start(t.Context())
	assert.True(t, r.Status().IsRunning)
	r.Stop()
}

func TestRunner_StopDrainsInFlightWork(t *testing.T) {
	lister := &fakeLister{}
	lister.set(&models.Project{ID: "p1", Status: models.StatusPendingDataset})
	workflow := &fakeWorkflow{
		block:   make(chan struct{}),
		started: make(chan string, 1),
	}

	r := NewRunner(workflow, lister, Config{PollInterval: 5 * time.Millisecond}, testLogger())
	r.Start(t.Context())

	// Wait until the workflow is mid-run, then release it while stopping.
	<-workflow.started
	go func() {
		time.Sleep(20 * time.Millisecond)
		close(workflow.block)
	}()
	r.Stop()

	// Stop returned only after the run finished.
	assert.GreaterOrEqual(t, workflow.runCount(), 1)
}

func TestRunner_ConflictIsTolerated(t *testing.T) {
	lister := &fakeLister{}
	lister.set(&models.Project{ID: "p1", Status: models.StatusPendingDataset})
	workflow := &fakeWorkflow{runErr: flowerr.New(flowerr.Conflict, "advance", "claim lost")}

	r := NewRunner(workflow, lister, Config{PollInterval: 5 * time.Millisecond}, testLogger())
	r.Start(t.Context())
	defer r.Stop()

	// The lost claim still counts as a processed poll item; the loop keeps
	// going instead of crashing or retrying hot.
	waitFor(t, func() bool { return r.Status().ProcessedProjectsCount >= 2 })
}

func TestRunner_DefaultsApplied(t *testing.T) {
	r := NewRunner(&fakeWorkflow{}, &fakeLister{}, Config{}, testLogger())
	require.Equal(t, 10*time.Second, r.config.PollInterval)
	require.Equal(t, 1, r.config.BatchLimit)
	assert.Equal(t, 10.0, r.Status().PollIntervalSeconds)
}

func TestRunner_BatchLimitRespected(t *testing.T) {
	lister := &fakeLister{}
	lister.set(
		&models.Project{ID: "p1", Status: models.StatusPendingDataset},
		&models.Project{ID: "p2", Status: models.StatusPendingDataset},
		&models.Project{ID: "p3", Status: models.StatusPendingDataset},
	)
	workflow := &fakeWorkflow{}

	r := NewRunner(workflow, lister, Config{PollInterval: time.Hour, BatchLimit: 2}, testLogger())
	r.Start(t.Context())

	waitFor(t, func() bool { return workflow.runCount() >= 2 })
	r.Stop()

	// First tick ran exactly the batch limit before the hour-long sleep.
	assert.Equal(t, 2, workflow.runCount())
}
