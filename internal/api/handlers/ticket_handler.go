package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// POST /project/:id/ticket
func (h *TicketHandler) CreateTicket(c *gin.Context) {
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

	var input ticket.CreateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "all fields are required")
		return
	}

	t, err := h.svc.CreateTicket(c, actor, pid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, "create ticket successfully", gin.H{"ticket": t})
}

// GET /project/:id/ticket/:ticketId
func (h *TicketHandler) GetTicket(c *gin.Context) {
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
	tid, err := utils.ParseIDParam(c, "ticketId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.svc.GetTicket(actor, pid, tid)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "get ticket successfully", gin.H{"ticket": detail})
}

// PATCH /project/:id/ticket/:ticketId
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
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
	tid, err := utils.ParseIDParam(c, "ticketId")
	if err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	var input ticket.UpdateTicketInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.svc.UpdateTicket(c, actor, pid, tid, input)
	if err != nil {
		writeError(c, err)
		return
	}
	response.OK(c, "update ticket successfully", gin.H{"ticket": t})
}
