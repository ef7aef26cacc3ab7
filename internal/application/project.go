package application

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/access"
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

// CreateProject creates the project and seeds its owner set with every
// current admin plus the creator, in one transaction. Seeding writes
// ledger rows, so each seeded user's project set picks up the new
// project in the same write.
func (s *ProjectService) CreateProject(c *gin.Context, actor user.User, input project.CreateProjectInput) (*project.Detail, error) {
	decision := access.Evaluate(actorOf(actor), access.ActionCreateProject, access.Facts{})
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	p := project.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      project.StatusOngoing,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Project.Create(&p); err != nil {
			return err
		}

		admins, err := tx.User.ListAdmins()
		if err != nil {
			return err
		}
		// The ledger's composite key dedupes an admin creator.
		owners := append(admins, actor)
		for _, owner := range owners {
			m := project.Member{
				ProjectID: p.PID,
				UserID:    owner.UID,
				Role:      project.MemberRoleOwner,
			}
			if err := tx.Membership.Add(&m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "project", fmt.Sprintf("p_id=%d", p.PID), nil, p, s.Repos.Audit)

	return s.detail(p)
}

// ListProjects returns every project the actor participates in.
func (s *ProjectService) ListProjects(actor user.User) ([]project.Project, error) {
	return s.Repos.Membership.ListProjectsByUser(actor.UID)
}

// GetProject returns the expanded project for a participant.
func (s *ProjectService) GetProject(actor user.User, pid uint) (*project.Detail, error) {
	p, err := s.Repos.Project.GetByID(pid)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	facts, err := projectFacts(s.Repos, actor.UID, pid)
	if err != nil {
		return nil, err
	}
	decision := access.Evaluate(actorOf(actor), access.ActionReadProject, facts)
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	return s.detail(p)
}

// ChangeStatus is gated on the organization-wide role alone.
func (s *ProjectService) ChangeStatus(c *gin.Context, actor user.User, pid uint, status project.Status) (*project.Project, error) {
	decision := access.Evaluate(actorOf(actor), access.ActionChangeProjectStatus, access.Facts{})
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	p, err := s.Repos.Project.GetByID(pid)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	before := p

	p.Status = status
	if err := s.Repos.Project.Save(&p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "change_status", "project", fmt.Sprintf("p_id=%d", p.PID), before, p, s.Repos.Audit)

	return &p, nil
}

// AddMember grants a user participation access. Adding an existing
// member is a no-op, not an error.
func (s *ProjectService) AddMember(c *gin.Context, actor user.User, pid, uid uint) (*project.Detail, error) {
	decision := access.Evaluate(actorOf(actor), access.ActionAddMember, access.Facts{})
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	target, err := s.Repos.User.GetByID(uid)
	if err != nil {
		return nil, ErrUserNotFound
	}
	p, err := s.Repos.Project.GetByID(pid)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	m := project.Member{
		ProjectID: p.PID,
		UserID:    target.UID,
		Role:      project.MemberRoleMember,
	}
	if err := s.Repos.Membership.Add(&m); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "add_member", "project", fmt.Sprintf("p_id=%d u_id=%d", p.PID, target.UID), nil, m, s.Repos.Audit)

	return s.detail(p)
}

// RemoveMember revokes membership. Removing someone who is not
// currently a member is an invalid operation, so a second identical
// call fails.
func (s *ProjectService) RemoveMember(c *gin.Context, actor user.User, pid, uid uint) (*project.Detail, error) {
	decision := access.Evaluate(actorOf(actor), access.ActionRemoveMember, access.Facts{})
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	target, err := s.Repos.User.GetByID(uid)
	if err != nil {
		return nil, ErrUserNotFound
	}
	p, err := s.Repos.Project.GetByID(pid)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	removed, err := s.Repos.Membership.Remove(p.PID, target.UID, project.MemberRoleMember)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, ErrNotAMember
	}

	utils.LogAuditWithConsole(c, "remove_member", "project", fmt.Sprintf("p_id=%d u_id=%d", p.PID, target.UID), nil, nil, s.Repos.Audit)

	return s.detail(p)
}

// detail expands the owner/member/ticket sets. Admin users are
// filtered out of the owner and member listings.
func (s *ProjectService) detail(p project.Project) (*project.Detail, error) {
	owners, err := s.Repos.Membership.ListUsers(p.PID, project.MemberRoleOwner)
	if err != nil {
		return nil, err
	}
	members, err := s.Repos.Membership.ListUsers(p.PID, project.MemberRoleMember)
	if err != nil {
		return nil, err
	}
	tickets, err := s.Repos.Ticket.ListByProject(p.PID)
	if err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []ticket.Ticket{}
	}

	return &project.Detail{
		Project: p,
		Owner:   dropAdmins(owners),
		Members: dropAdmins(members),
		Tickets: tickets,
	}, nil
}

func dropAdmins(users []user.User) []user.User {
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.Role == user.RoleAdmin {
			continue
		}
		out = append(out, u)
	}
	return out
}
