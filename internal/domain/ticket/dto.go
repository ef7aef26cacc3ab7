package ticket

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

type CreateTicketInput struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Type        Type     `json:"type" binding:"required"`
	Priority    Priority `json:"priority" binding:"required"`
	TicketImg   *string  `json:"ticketImg,omitempty"`
}

// UpdateTicketInput is a sparse patch: nil means the field was absent
// from the request body and must be left untouched. Which fields are
// honoured depends on who the actor is relative to the ticket.
type UpdateTicketInput struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Type        *Type     `json:"type,omitempty"`
	Priority    *Priority `json:"priority,omitempty"`
	TicketImg   *string   `json:"ticketImg,omitempty"`
	Status      *Status   `json:"status,omitempty"`
	AssignedTo  *uint     `json:"assignedTo,omitempty"`
}

// Detail is a ticket with reporter, assignee and comment authors
// expanded for the single-ticket endpoint.
type Detail struct {
	Ticket
	Reporter *user.User           `json:"reporter,omitempty"`
	Assignee *user.User           `json:"assignee,omitempty"`
	Comments []comment.WithAuthor `json:"comments"`
}
