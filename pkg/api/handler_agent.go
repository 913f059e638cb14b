package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/models"
)

// StartRequest is the body of POST /agents/<name>/start.
type StartRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

// agentStart triggers one workflow run for a specific project, outside the
// polling loop. The project must currently sit in the agent's owned status.
func (s *Server) agentStart(name models.AgentName) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		workflow := s.workflows[name]
		project, err := s.store.GetProject(c.Request.Context(), req.ProjectID)
		if err != nil {
			writeError(c, err)
			return
		}
		if project.Status != workflow.OwnedStatus() {
			c.JSON(http.StatusConflict, gin.H{
				"error": "project is in status " + string(project.Status) + ", expected " + string(workflow.OwnedStatus()),
			})
			return
		}

		// Run detached: workflows are long and do their own failure
		// bookkeeping. The claim primitive keeps a concurrent poll tick from
		// double-processing.
		go func() {
			if err := workflow.Run(context.Background(), project); err != nil {
				s.logger.Warn("Manually started workflow failed", "agent", name, "project_id", project.ID, "error", err)
			}
		}()

		c.JSON(http.StatusOK, gin.H{"status": "started", "project_id": project.ID})
	}
}

// agentStatus reports a project's status plus its recent log entries.
func (s *Server) agentStatus(name models.AgentName) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := s.store.GetProject(c.Request.Context(), c.Param("project_id"))
		if err != nil {
			writeError(c, err)
			return
		}

		logs, err := s.store.LogsByProject(c.Request.Context(), project.ID, 20)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"agent":       name,
			"project_id":  project.ID,
			"status":      project.Status,
			"recent_logs": logs,
		})
	}
}

func (s *Server) pollingStart(name models.AgentName) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.runners[name].Start(context.Background())
		c.JSON(http.StatusOK, gin.H{"status": "polling started"})
	}
}

func (s *Server) pollingStop(name models.AgentName) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.runners[name].Stop()
		c.JSON(http.StatusOK, gin.H{"status": "polling stopped"})
	}
}

func (s *Server) pollingStatus(name models.AgentName) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.runners[name].Status())
	}
}
