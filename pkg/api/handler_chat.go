package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// ChatRequest is the body of POST /api/ml/chat.
type ChatRequest struct {
	Message     string `json:"message" binding:"required"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// Chat forwards the user's message to the planner and relays its reply
// verbatim.
func (s *Server) Chat(c *gin.Context) {
	if s.planner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "planner is not enabled on this instance"})
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	result, err := s.planner.HandleMessage(c.Request.Context(), externalID(c), req.Email, req.DisplayName, req.Message)
	if err != nil {
		if flowerr.KindOf(err) == flowerr.PlanInvalid && result == nil {
			// The planner already wrote its apology to the transcript; relay
			// the failure as a client-visible 400.
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not extract a project plan from the message"})
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PlannerHandleMessage is the planner's agent surface, same contract as
// Chat but mounted under /agents/planner.
func (s *Server) PlannerHandleMessage(c *gin.Context) {
	s.Chat(c)
}
