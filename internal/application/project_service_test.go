package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

func TestCreateProject(t *testing.T) {
	moderator := user.User{UID: 5, Username: "mod", Role: user.RoleModerator}

	t.Run("seeds owners with admins plus creator", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		admin := user.User{UID: 9, Username: "root", Role: user.RoleAdmin}

		m.Project.EXPECT().Create(gomock.Any()).Do(func(p *project.Project) {
			p.PID = 1
		}).Return(nil)
		m.User.EXPECT().ListAdmins().Return([]user.User{admin}, nil)

		var seeded []project.Member
		m.Membership.EXPECT().Add(gomock.Any()).Do(func(mb *project.Member) {
			seeded = append(seeded, *mb)
		}).Return(nil).Times(2)

		m.Membership.EXPECT().ListUsers(uint(1), project.MemberRoleOwner).Return([]user.User{admin, moderator}, nil)
		m.Membership.EXPECT().ListUsers(uint(1), project.MemberRoleMember).Return(nil, nil)
		m.Ticket.EXPECT().ListByProject(uint(1)).Return(nil, nil)

		detail, err := svc.CreateProject(c, moderator, project.CreateProjectInput{Name: "helpdesk", Description: "internal"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.Project.Status != project.StatusOngoing {
			t.Fatalf("expected new project ongoing, got %s", detail.Project.Status)
		}

		for _, mb := range seeded {
			if mb.Role != project.MemberRoleOwner {
				t.Fatalf("expected owner seed rows, got %s", mb.Role)
			}
		}
		if seeded[0].UserID != 9 || seeded[1].UserID != 5 {
			t.Fatalf("expected admin then creator seeded, got %+v", seeded)
		}

		// Admin accounts stay out of the expanded owner listing.
		if len(detail.Owner) != 1 || detail.Owner[0].UID != 5 {
			t.Fatalf("expected only the creator in owners, got %+v", detail.Owner)
		}
		if detail.Tickets == nil || len(detail.Tickets) != 0 {
			t.Fatalf("expected empty ticket slice, got %v", detail.Tickets)
		}
	})

	t.Run("denied for a plain user", func(t *testing.T) {
		repos, _, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		_, err := svc.CreateProject(c, user.User{UID: 2, Role: user.RoleUser}, project.CreateProjectInput{Name: "x"})
		if !application.IsForbidden(err) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}

func TestGetProject(t *testing.T) {
	t.Run("missing project reported before access", func(t *testing.T) {
		repos, m, _ := setupMocks(t)
		svc := application.NewProjectService(repos)

		m.Project.EXPECT().GetByID(uint(7)).Return(project.Project{}, gorm.ErrRecordNotFound)

		_, err := svc.GetProject(user.User{UID: 2, Role: user.RoleUser}, 7)
		if err != application.ErrProjectNotFound {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("outsider denied even as admin", func(t *testing.T) {
		repos, m, _ := setupMocks(t)
		svc := application.NewProjectService(repos)

		m.Project.EXPECT().GetByID(uint(7)).Return(project.Project{PID: 7}, nil)
		m.Membership.EXPECT().HasRole(uint(9), uint(7), project.MemberRoleOwner).Return(false, nil)
		m.Membership.EXPECT().HasRole(uint(9), uint(7), project.MemberRoleMember).Return(false, nil)

		_, err := svc.GetProject(user.User{UID: 9, Role: user.RoleAdmin}, 7)
		if !application.IsForbidden(err) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}

func TestChangeStatus(t *testing.T) {
	moderator := user.User{UID: 5, Role: user.RoleModerator}

	t.Run("rejects unknown status", func(t *testing.T) {
		repos, _, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		_, err := svc.ChangeStatus(c, moderator, 1, project.Status("archived"))
		if err != application.ErrInvalidStatus {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("updates the status", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		m.Project.EXPECT().GetByID(uint(1)).Return(project.Project{PID: 1, Status: project.StatusOngoing}, nil)
		m.Project.EXPECT().Save(gomock.Any()).Return(nil)

		p, err := svc.ChangeStatus(c, moderator, 1, project.StatusCompleted)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != project.StatusCompleted {
			t.Fatalf("expected completed, got %s", p.Status)
		}
	})
}

func TestMembershipChanges(t *testing.T) {
	moderator := user.User{UID: 5, Role: user.RoleModerator}
	target := user.User{UID: 3, Username: "dev", Role: user.RoleUser}
	proj := project.Project{PID: 1, Name: "helpdesk"}

	t.Run("add member is idempotent", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		m.User.EXPECT().GetByID(uint(3)).Return(target, nil)
		m.Project.EXPECT().GetByID(uint(1)).Return(proj, nil)
		m.Membership.EXPECT().Add(&project.Member{ProjectID: 1, UserID: 3, Role: project.MemberRoleMember}).Return(nil)

		m.Membership.EXPECT().ListUsers(uint(1), project.MemberRoleOwner).Return([]user.User{moderator}, nil)
		m.Membership.EXPECT().ListUsers(uint(1), project.MemberRoleMember).Return([]user.User{target}, nil)
		m.Ticket.EXPECT().ListByProject(uint(1)).Return([]ticket.Ticket{}, nil)

		detail, err := svc.AddMember(c, moderator, 1, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detail.Members) != 1 || detail.Members[0].UID != 3 {
			t.Fatalf("expected member 3 in detail, got %+v", detail.Members)
		}
	})

	t.Run("add unknown user is a 404", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		m.User.EXPECT().GetByID(uint(8)).Return(user.User{}, gorm.ErrRecordNotFound)

		_, err := svc.AddMember(c, moderator, 1, 8)
		if err != application.ErrUserNotFound {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("remove non-member fails", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		m.User.EXPECT().GetByID(uint(3)).Return(target, nil)
		m.Project.EXPECT().GetByID(uint(1)).Return(proj, nil)
		m.Membership.EXPECT().Remove(uint(1), uint(3), project.MemberRoleMember).Return(false, nil)

		_, err := svc.RemoveMember(c, moderator, 1, 3)
		if err != application.ErrNotAMember {
			t.Fatalf("expected ErrNotAMember, got %v", err)
		}
	})

	t.Run("denied for a plain user", func(t *testing.T) {
		repos, _, c := setupMocks(t)
		svc := application.NewProjectService(repos)

		if _, err := svc.AddMember(c, user.User{UID: 3, Role: user.RoleUser}, 1, 4); !application.IsForbidden(err) {
			t.Fatalf("expected forbidden, got %v", err)
		}
		if _, err := svc.RemoveMember(c, user.User{UID: 3, Role: user.RoleUser}, 1, 4); !application.IsForbidden(err) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})
}
