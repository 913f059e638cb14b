package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/modelfoundry/foundry/pkg/flowerr"
	"github.com/modelfoundry/foundry/pkg/models"
)

// HeaderExternalUserID carries the caller identity established by the
// upstream auth proxy. Authentication itself is out of scope here; the
// gateway only maps the id to the owning user.
const HeaderExternalUserID = "X-External-User-ID"

const (
	ctxKeyExternalID = "external_user_id"
	ctxKeyUser       = "current_user"
)

// requireIdentity rejects requests without a caller identity header.
func (s *Server) requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		externalID := c.GetHeader(HeaderExternalUserID)
		if externalID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing " + HeaderExternalUserID + " header"})
			return
		}
		c.Set(ctxKeyExternalID, externalID)
		c.Next()
	}
}

// requireAdmin allows only known admin users through.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := s.currentUser(c)
		if err != nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// externalID returns the caller identity set by requireIdentity.
func externalID(c *gin.Context) string {
	return c.GetString(ctxKeyExternalID)
}

// currentUser resolves and caches the caller's user row. Unknown callers
// get a not_found error; they own nothing yet.
func (s *Server) currentUser(c *gin.Context) (*models.User, error) {
	if cached, ok := c.Get(ctxKeyUser); ok {
		return cached.(*models.User), nil
	}
	user, err := s.store.UserByExternalID(c.Request.Context(), externalID(c))
	if err != nil {
		return nil, err
	}
	c.Set(ctxKeyUser, user)
	return user, nil
}

// authorizeProject loads a project and checks the caller may act on it.
// Admins bypass the ownership check.
func (s *Server) authorizeProject(c *gin.Context, projectID string) (*models.Project, error) {
	project, err := s.store.GetProject(c.Request.Context(), projectID)
	if err != nil {
		return nil, err
	}

	user, err := s.currentUser(c)
	if err != nil {
		if flowerr.KindOf(err) == flowerr.NotFound {
			return nil, errForbidden
		}
		return nil, err
	}
	if project.UserID != user.ID && !user.IsAdmin {
		return nil, errForbidden
	}
	return project, nil
}

// errForbidden is mapped to 403 by handlers that call authorizeProject.
var errForbidden = flowerr.New(flowerr.Permanent, "authorize", "forbidden")

// writeAuthError handles authorizeProject failures, distinguishing the
// ownership rejection from lookup errors.
func writeAuthError(c *gin.Context, err error) {
	if err == errForbidden {
		c.JSON(http.StatusForbidden, gin.H{"error": "you do not have access to this project"})
		return
	}
	writeError(c, err)
}
