package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// POST /project/create
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var input project.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required")
		return
	}

	detail, err := h.svc.CreateProject(c, actor, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "create project successfully", gin.H{"project": detail})
}

// GET /project
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	projects, err := h.svc.ListProjects(actor)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "get projects successfully", gin.H{"projects": projects})
}

// POST /project/:id — fetch, despite the verb; kept for client
// compatibility.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.svc.GetProject(actor, pid)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "get project successfully", gin.H{"project": detail})
}

// PATCH /project/:id
func (h *ProjectHandler) ChangeStatus(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var input project.ChangeStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "status is required")
		return
	}

	p, err := h.svc.ChangeStatus(c, actor, pid, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "change project status successfully", gin.H{"project": p})
}

// PATCH /project/:id/add/:userId
func (h *ProjectHandler) AddMember(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	uid, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.svc.AddMember(c, actor, pid, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "add member successfully", gin.H{"project": detail})
}

// PATCH /project/:id/remove/:userId
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	uid, err := utils.ParseIDParam(c, "userId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.svc.RemoveMember(c, actor, pid, uid)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "remove member successfully", gin.H{"project": detail})
}
