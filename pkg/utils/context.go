package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/pkg/types"
)

var ErrNoClaims = errors.New("user claims not found in context")

func GetClaims(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

// ActorFromContext returns the authenticated user loaded by the
// identity middleware.
func ActorFromContext(c *gin.Context) (user.User, error) {
	actorVal, exists := c.Get("actor")
	if !exists {
		return user.User{}, errors.New("actor not found in context")
	}
	actor, ok := actorVal.(user.User)
	if !ok {
		return user.User{}, errors.New("invalid actor type")
	}
	return actor, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, errors.New("missing " + name + " parameter")
	}
	id64, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return uint(id64), nil
}
