package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
	"github.com/modelfoundry/foundry/pkg/plan"
)

// maxTestImageBytes bounds the uploaded image for POST /projects/:id/test.
const maxTestImageBytes = 10 << 20

// ListProjects returns the caller's projects, newest first.
func (s *Server) ListProjects(c *gin.Context) {
	user, err := s.currentUser(c)
	if err != nil {
		if flowerr.KindOf(err) == flowerr.NotFound {
			// First contact; the caller owns nothing yet.
			c.JSON(http.StatusOK, gin.H{"projects": []*models.Project{}})
			return
		}
		writeError(c, err)
		return
	}

	projects, err := s.store.ListProjects(c.Request.Context(), models.ProjectFilters{
		UserID: user.ID,
		Limit:  queryLimit(c, 50),
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetProject returns one project with its datasets and models embedded.
func (s *Server) GetProject(c *gin.Context) {
	project, err := s.authorizeProject(c, c.Param("id"))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	datasets, err := s.store.DatasetsByProject(c.Request.Context(), project.ID)
	if err != nil {
		writeError(c, err)
		return
	}
	trainedModels, err := s.store.ModelsByProject(c.Request.Context(), project.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ProjectDetail{
		Project:  *project,
		Datasets: datasets,
		Models:   trainedModels,
	})
}

// GetProjectLogs returns a project's activity log.
func (s *Server) GetProjectLogs(c *gin.Context) {
	project, err := s.authorizeProject(c, c.Param("id"))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	logs, err := s.store.LogsByProject(c.Request.Context(), project.ID, queryLimit(c, 200))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// DownloadBundle streams the completed project's bundle zip. The bundle is
// passed through from the object store, never materialized on the gateway.
func (s *Server) DownloadBundle(c *gin.Context) {
	project, err := s.authorizeProject(c, c.Param("id"))
	if err != nil {
		writeAuthError(c, err)
		return
	}

	if project.Status != models.StatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "project is not completed yet"})
		return
	}
	bundleURI, ok := project.Metadata[models.MetaBundleURI].(string)
	if !ok || bundleURI == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no bundle recorded for this project"})
		return
	}

	reader, size, err := s.objects.OpenRead(c.Request.Context(), bundleURI)
	if err != nil {
		writeError(c, err)
		return
	}
	defer reader.Close()

	filename := plan.Slug(project.Name) + ".zip"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/zip")
	c.Header("Content-Length", strconv.FormatInt(size, 10))
	if _, err := io.Copy(c.Writer, reader); err != nil {
		// Headers are gone; all we can do is log the broken stream.
		s.logger.Warn("Bundle stream interrupted", "project_id", project.ID, "error", err)
	}
}

// TestModel runs one image through the trained model via the trainer
// runtime. Intended for admins and smoke testing, not serving traffic.
func (s *Server) TestModel(c *gin.Context) {
	if s.predictor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "inference is not enabled on this instance"})
		return
	}

	project, err := s.authorizeProject(c, c.Param("id"))
	if err != nil {
		writeAuthError(c, err)
		return
	}
	if project.Status != models.StatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "project is not completed yet"})
		return
	}

	model, err := s.store.ModelByProject(c.Request.Context(), project.ID)
	if err != nil {
		writeError(c, err)
		return
	}

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxTestImageBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	if len(image) > maxTestImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 10 MB limit"})
		return
	}

	predictions, err := s.predictor.Predict(c.Request.Context(), model.ObjectURI, image, 3)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{"predictions": predictions}
	if len(predictions) > 0 {
		resp["label"] = predictions[0].Label
		resp["confidence"] = predictions[0].Confidence
	}
	c.JSON(http.StatusOK, resp)
}

// queryLimit parses the limit query parameter with a default cap.
func queryLimit(c *gin.Context, defaultLimit int) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 1000 {
			return n
		}
	}
	return defaultLimit
}
