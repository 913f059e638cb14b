// Package api is the HTTP surface: the user-facing gateway under /api/ml,
// the admin surface under /api/admin, and the per-agent control surfaces
// under /agents. The gateway never performs status transitions; it reads
// state and forwards chat to the planner.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/agents/planner"
	"github.com/modelfoundry/foundry/pkg/database"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/poll"
	"github.com/modelfoundry/foundry/pkg/trainer"
)

// Store is the persistence surface the HTTP handlers need.
type Store interface {
	UserByExternalID(ctx context.Context, externalAuthID string) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	GetProject(ctx context.Context, projectID string) (*models.Project, error)
	ListProjects(ctx context.Context, f models.ProjectFilters) ([]*models.Project, error)
	CountProjectsByStatus(ctx context.Context) (map[models.Status]int, error)
	DatasetsByProject(ctx context.Context, projectID string) ([]*models.Dataset, error)
	ModelsByProject(ctx context.Context, projectID string) ([]*models.TrainedModel, error)
	ModelByProject(ctx context.Context, projectID string) (*models.TrainedModel, error)
	LogsByProject(ctx context.Context, projectID string, limit int) ([]*models.AgentLog, error)
	RecentLogs(ctx context.Context, limit int) ([]*models.AgentLog, error)
}

// ObjectStore is the artifact surface the download handler needs.
type ObjectStore interface {
	OpenRead(ctx context.Context, rawURI string) (io.ReadCloser, int64, error)
}

// Predictor is the trainer runtime surface the test-inference handler needs.
type Predictor interface {
	Predict(ctx context.Context, modelURI string, image []byte, topK int) ([]trainer.Prediction, error)
}

// Server holds the HTTP handlers' dependencies.
type Server struct {
	db        *database.Client
	store     Store
	objects   ObjectStore
	planner   *planner.Agent
	predictor Predictor
	runners   map[models.AgentName]*poll.Runner
	workflows map[models.AgentName]poll.Workflow
	logger    *slog.Logger
}

// NewServer creates the API server. planner, predictor, runners, and
// workflows may be partially populated depending on which roles this
// process runs; handlers for absent roles are not mounted.
func NewServer(db *database.Client, st Store, objects ObjectStore, plannerAgent *planner.Agent, predictor Predictor, logger *slog.Logger) *Server {
	return &Server{
		db:        db,
		store:     st,
		objects:   objects,
		planner:   plannerAgent,
		predictor: predictor,
		runners:   make(map[models.AgentName]*poll.Runner),
		workflows: make(map[models.AgentName]poll.Workflow),
		logger:    logger.With("agent", models.AgentGateway),
	}
}

// RegisterAgent mounts an agent's control surface: its workflow for manual
// starts and its runner for polling control.
func (s *Server) RegisterAgent(workflow poll.Workflow, runner *poll.Runner) {
	s.workflows[workflow.AgentName()] = workflow
	s.runners[workflow.AgentName()] = runner
}

// Routes registers all handlers on the router.
func (s *Server) Routes(r *gin.Engine) {
	r.GET("/health", s.Health)

	ml := r.Group("/api/ml", s.requireIdentity())
	{
		ml.POST("/chat", s.Chat)
		ml.GET("/projects", s.ListProjects)
		ml.GET("/projects/:id", s.GetProject)
		ml.GET("/projects/:id/logs", s.GetProjectLogs)
		ml.GET("/projects/:id/download", s.DownloadBundle)
		ml.POST("/projects/:id/test", s.TestModel)
	}

	admin := r.Group("/api/admin", s.requireIdentity(), s.requireAdmin())
	{
		admin.GET("/stats", s.AdminStats)
		admin.GET("/users", s.AdminUsers)
		admin.GET("/projects", s.AdminProjects)
		admin.GET("/logs", s.AdminLogs)
	}

	if s.planner != nil {
		r.POST("/agents/planner/handle_message", s.requireIdentity(), s.PlannerHandleMessage)
	}
	for name := range s.workflows {
		group := r.Group("/agents/" + string(name))
		group.POST("/start", s.agentStart(name))
		group.GET("/status/:project_id", s.agentStatus(name))
		group.POST("/polling/start", s.pollingStart(name))
		group.POST("/polling/stop", s.pollingStop(name))
		group.GET("/polling/status", s.pollingStatus(name))
	}
}

// Health reports service and database health.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		resp["database"] = dbHealth
		if err != nil {
			resp["status"] = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
