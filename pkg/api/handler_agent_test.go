package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/poll"
)

// stubWorkflow is a minimal poll.Workflow for the agent control surface.
type stubWorkflow struct {
	mu   sync.Mutex
	runs []string
}

func (w *stubWorkflow) AgentName() models.AgentName { return models.AgentDataset }
func (w *stubWorkflow) OwnedStatus() models.Status  { return models.StatusPendingDataset }

func (w *stubWorkflow) Run(ctx context.Context, project *models.Project) error {
	w.mu.Lock()
	w.runs = append(w.runs, project.ID)
	w.mu.Unlock()
	return nil
}

func (w *stubWorkflow) runCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.runs)
}

type stubLister struct{}

func (stubLister) ProjectsByStatus(ctx context.Context, status models.Status, limit int) ([]*models.Project, error) {
	return nil, nil
}

func newAgentRouter(st *fakeStore) (*gin.Engine, *stubWorkflow, *poll.Runner) {
	workflow := &stubWorkflow{}
	runner := poll.NewRunner(workflow, stubLister{}, poll.Config{PollInterval: time.Hour}, slog.New(slog.DiscardHandler))

	server := NewServer(nil, st, &fakeObjects{}, nil, nil, slog.New(slog.DiscardHandler))
	server.RegisterAgent(workflow, runner)
	r := gin.New()
	server.Routes(r)
	return r, workflow, runner
}

func TestAgentStart(t *testing.T) {
	st := newFakeStore()
	st.projects["p-1"] = &models.Project{ID: "p-1", UserID: "u-1", Status: models.StatusPendingDataset}
	st.projects["p-2"] = &models.Project{ID: "p-2", UserID: "u-1", Status: models.StatusCompleted}
	r, workflow, _ := newAgentRouter(st)

	// Wrong status is refused before any work starts.
	w := doRequest(r, http.MethodPost, "/agents/dataset/start", "", strings.NewReader(`{"project_id": "p-2"}`))
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown project.
	w = doRequest(r, http.MethodPost, "/agents/dataset/start", "", strings.NewReader(`{"project_id": "nope"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing body.
	w = doRequest(r, http.MethodPost, "/agents/dataset/start", "", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Owned status kicks off a detached run.
	w = doRequest(r, http.MethodPost, "/agents/dataset/start", "", strings.NewReader(`{"project_id": "p-1"}`))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "started")

	deadline := time.Now().Add(2 * time.Second)
	for workflow.runCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	assert.Equal(t, 1, workflow.runCount())
}

func TestAgentStatus(t *testing.T) {
	st := newFakeStore()
	st.projects["p-1"] = &models.Project{ID: "p-1", UserID: "u-1", Status: models.StatusPendingDataset}
	st.logs = []*models.AgentLog{
		{ID: "l-1", ProjectID: "p-1", AgentName: models.AgentDataset, Message: "found 3 candidate datasets", LogLevel: models.LogInfo},
	}
	r, _, _ := newAgentRouter(st)

	w := doRequest(r, http.MethodGet, "/agents/dataset/status/p-1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Agent      string             `json:"agent"`
		ProjectID  string             `json:"project_id"`
		Status     models.Status      `json:"status"`
		RecentLogs []*models.AgentLog `json:"recent_logs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dataset", resp.Agent)
	assert.Equal(t, models.StatusPendingDataset, resp.Status)
	require.Len(t, resp.RecentLogs, 1)
}

func TestPollingControl(t *testing.T) {
	r, _, runner := newAgentRouter(newFakeStore())
	defer runner.Stop()

	w := doRequest(r, http.MethodGet, "/agents/dataset/polling/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var status poll.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.IsRunning)

	w = doRequest(r, http.MethodPost, "/agents/dataset/polling/start", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/agents/dataset/polling/status", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.True(t, status.IsRunning)

	w = doRequest(r, http.MethodPost, "/agents/dataset/polling/stop", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/agents/dataset/polling/status", "", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.IsRunning)
}
