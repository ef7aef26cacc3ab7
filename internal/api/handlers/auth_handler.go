package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/config"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

const sessionMaxAge = 24 * 60 * 60

type AuthHandler struct {
	svc *application.UserService
}

func NewAuthHandler(svc *application.UserService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input user.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required")
		return
	}

	usr, token, err := h.svc.Signup(c, input)
	if err != nil {
		writeError(c, err)
		return
	}

	setSessionCookie(c, token)
	response.Created(c, "user created successfully", gin.H{"user": usr, "token": token})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required")
		return
	}

	usr, token, err := h.svc.Login(input.Login, input.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	setSessionCookie(c, token)
	response.OK(c, "login successfully", gin.H{"user": usr, "token": token})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", false, true)
	response.OK(c, "logout successfully", nil)
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	response.OK(c, "get user successfully", gin.H{"user": actor})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(config.SessionCookieName, token, sessionMaxAge, "/", "", false, true)
}
