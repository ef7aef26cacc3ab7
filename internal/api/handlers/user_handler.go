package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /user/admin
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	users, err := h.svc.ListUsers(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "get users successfully", gin.H{"users": users})
}

// GET /user/:username
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	usr, err := h.svc.GetByUsername(actor, c.Param("username"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "get user successfully", gin.H{"user": usr})
}

// PATCH /user/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input user.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required")
		return
	}

	usr, err := h.svc.UpdateProfile(c, actor.UID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "update profile successfully", gin.H{"user": usr})
}

// PATCH /user/admin/:username
func (h *UserHandler) UpdateRole(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input user.UpdateRoleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "role is required")
		return
	}

	usr, err := h.svc.UpdateRole(c, actor, c.Param("username"), input.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "update user role successfully", gin.H{"user": usr})
}
