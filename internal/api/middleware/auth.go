package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/types"
)

// Auth resolves the authenticated identity against storage.
type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// LoadActor turns validated claims into the current user row and puts
// it on the context. Reading the row each request means role changes
// take effect immediately, not at next login.
func (a *Auth) LoadActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "invalid token claims")
			return
		}

		actor, err := a.repos.User.GetByID(claims.UserID)
		if err != nil {
			response.AbortError(c, http.StatusNotFound, "user not found")
			return
		}

		c.Set("actor", actor)
		c.Next()
	}
}
