package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type CommentHandler struct {
	svc *application.CommentService
}

func NewCommentHandler(svc *application.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

func commentPath(c *gin.Context) (pid, tid uint, err error) {
	pid, err = utils.ParseIDParam(c, "id")
	if err != nil {
		return 0, 0, err
	}
	tid, err = utils.ParseIDParam(c, "ticketId")
	if err != nil {
		return 0, 0, err
	}
	return pid, tid, nil
}

// POST /project/:id/ticket/:ticketId/comment
func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, tid, err := commentPath(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var input comment.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	cm, err := h.svc.CreateComment(c, actor, pid, tid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "create comment successfully", gin.H{"comment": cm})
}

// PATCH /project/:id/ticket/:ticketId/comment/:commentId
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, tid, err := commentPath(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	cid, err := utils.ParseIDParam(c, "commentId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var input comment.UpdateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "content is required")
		return
	}

	cm, err := h.svc.UpdateComment(c, actor, pid, tid, cid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "comment updated successfully", gin.H{"comment": cm})
}

// DELETE /project/:id/ticket/:ticketId/comment/:commentId
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	pid, tid, err := commentPath(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	cid, err := utils.ParseIDParam(c, "commentId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.DeleteComment(c, actor, pid, tid, cid); err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "delete comment successfully", nil)
}
