package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/flowerr"
)

// writeError maps a classified error to an HTTP response.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"

	switch flowerr.KindOf(err) {
	case flowerr.InputInvalid, flowerr.PlanInvalid:
		status = http.StatusBadRequest
		message = err.Error()
	case flowerr.NotFound:
		status = http.StatusNotFound
		message = "resource not found"
	case flowerr.Conflict:
		status = http.StatusConflict
		message = "conflicting state"
	default:
		slog.Error("Unexpected error in handler", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, gin.H{"error": message})
}
