package project

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

type CreateProjectInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type ChangeStatusInput struct {
	Status Status `json:"status" binding:"required"`
}

// Detail is a project with its owner/member/ticket sets expanded.
// Admin accounts are filtered out of the owner and member expansions;
// they hold ownership everywhere and listing them adds no information.
type Detail struct {
	Project
	Owner   []user.User     `json:"owner"`
	Members []user.User     `json:"members"`
	Tickets []ticket.Ticket `json:"tickets"`
}
