package handlers

import (
	"github.com/hsinyu-lin/trackdesk/internal/application"
)

type Handlers struct {
	Auth    *AuthHandler
	User    *UserHandler
	Project *ProjectHandler
	Ticket  *TicketHandler
	Comment *CommentHandler
	Audit   *AuditHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(svc.User),
		User:    NewUserHandler(svc.User),
		Project: NewProjectHandler(svc.Project),
		Ticket:  NewTicketHandler(svc.Ticket),
		Comment: NewCommentHandler(svc.Comment),
		Audit:   NewAuditHandler(svc.Audit),
	}
}
