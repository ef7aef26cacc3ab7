package application

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/audit"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
)

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos}
}

// ListLogs is an admin-only view over recent audit rows.
func (s *AuditService) ListLogs(actor user.User, limit, offset int) ([]audit.Log, error) {
	if actor.Role != user.RoleAdmin {
		return nil, forbidden("you don't have permission to access this route")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Repos.Audit.ListRecent(limit, offset)
}
