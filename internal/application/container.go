package application

import (
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/storage"
)

type Services struct {
	User    *UserService
	Project *ProjectService
	Ticket  *TicketService
	Comment *CommentService
	Audit   *AuditService
}

func New(repos *repository.Repos, images storage.ImageStore) *Services {
	return &Services{
		User:    NewUserService(repos, images),
		Project: NewProjectService(repos),
		Ticket:  NewTicketService(repos, images),
		Comment: NewCommentService(repos, images),
		Audit:   NewAuditService(repos),
	}
}
