package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/models"
)

// AdminStats returns per-status project counts.
func (s *Server) AdminStats(c *gin.Context) {
	counts, err := s.store.CountProjectsByStatus(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	total := 0
	byStatus := make(map[string]int, len(counts))
	for status, n := range counts {
		byStatus[string(status)] = n
		total += n
	}
	c.JSON(http.StatusOK, gin.H{
		"total_projects":     total,
		"projects_by_status": byStatus,
	})
}

// AdminUsers lists users.
func (s *Server) AdminUsers(c *gin.Context) {
	users, err := s.store.ListUsers(c.Request.Context(), queryLimit(c, 100), 0)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// AdminProjects lists projects across all users, optionally filtered by
// status.
func (s *Server) AdminProjects(c *gin.Context) {
	filters := models.ProjectFilters{Limit: queryLimit(c, 100)}
	if status := c.Query("status"); status != "" {
		if !models.Status(status).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}
		filters.Status = models.Status(status)
	}

	projects, err := s.store.ListProjects(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// AdminLogs returns the newest agent log entries across all projects.
func (s *Server) AdminLogs(c *gin.Context) {
	logs, err := s.store.RecentLogs(c.Request.Context(), queryLimit(c, 100))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
