package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GET /audit/logs?limit=50&offset=0
func (h *AuditHandler) ListLogs(c *gin.Context) {
	actor, err := utils.ActorFromContext(c)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.ListLogs(actor, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "audit logs fetched successfully", gin.H{"logs": logs})
}
