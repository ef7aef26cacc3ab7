package repository_test

import (
	"testing"

	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/internal/testutils"
)

// The ledger tests need a real postgres for the ON CONFLICT clause and
// the composite key. Run with -short to skip, or set TEST_DB_DSN to
// reuse an existing database.
func TestMembershipLedger(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	gdb, cleanup := testutils.SetupPostgresForIntegration()
	t.Cleanup(cleanup)

	repos := repository.NewRepositories(gdb)

	alice := user.User{Username: "alice", FirstName: "A", LastName: "L", Email: "alice@example.com", Password: "x", Role: user.RoleModerator}
	bob := user.User{Username: "bob", FirstName: "B", LastName: "L", Email: "bob@example.com", Password: "x", Role: user.RoleUser}
	if err := repos.User.Create(&alice); err != nil {
		t.Fatal(err)
	}
	if err := repos.User.Create(&bob); err != nil {
		t.Fatal(err)
	}

	p := project.Project{Name: "helpdesk", Description: "internal"}
	if err := repos.Project.Create(&p); err != nil {
		t.Fatal(err)
	}

	t.Run("add is idempotent", func(t *testing.T) {
		m := project.Member{ProjectID: p.PID, UserID: bob.UID, Role: project.MemberRoleMember}
		if err := repos.Membership.Add(&m); err != nil {
			t.Fatal(err)
		}
		again := project.Member{ProjectID: p.PID, UserID: bob.UID, Role: project.MemberRoleMember}
		if err := repos.Membership.Add(&again); err != nil {
			t.Fatalf("second add must be a no-op, got %v", err)
		}

		members, err := repos.Membership.ListUsers(p.PID, project.MemberRoleMember)
		if err != nil {
			t.Fatal(err)
		}
		if len(members) != 1 {
			t.Fatalf("expected one member row, got %d", len(members))
		}
	})

	t.Run("both sides read the same row", func(t *testing.T) {
		ok, err := repos.Membership.IsParticipant(bob.UID, p.PID)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatal("bob must be a participant after add")
		}

		projects, err := repos.Membership.ListProjectsByUser(bob.UID)
		if err != nil {
			t.Fatal(err)
		}
		if len(projects) != 1 || projects[0].PID != p.PID {
			t.Fatalf("expected bob's project set to contain p_id=%d, got %+v", p.PID, projects)
		}
	})

	t.Run("owner and member are distinct roles", func(t *testing.T) {
		m := project.Member{ProjectID: p.PID, UserID: alice.UID, Role: project.MemberRoleOwner}
		if err := repos.Membership.Add(&m); err != nil {
			t.Fatal(err)
		}

		isOwner, err := repos.Membership.HasRole(alice.UID, p.PID, project.MemberRoleOwner)
		if err != nil {
			t.Fatal(err)
		}
		if !isOwner {
			t.Fatal("alice must hold the owner role")
		}
		isMember, err := repos.Membership.HasRole(alice.UID, p.PID, project.MemberRoleMember)
		if err != nil {
			t.Fatal(err)
		}
		if isMember {
			t.Fatal("owner row must not satisfy the member role")
		}
	})

	t.Run("remove reports whether a row existed", func(t *testing.T) {
		removed, err := repos.Membership.Remove(p.PID, bob.UID, project.MemberRoleMember)
		if err != nil {
			t.Fatal(err)
		}
		if !removed {
			t.Fatal("expected a row to be removed")
		}

		removed, err = repos.Membership.Remove(p.PID, bob.UID, project.MemberRoleMember)
		if err != nil {
			t.Fatal(err)
		}
		if removed {
			t.Fatal("second remove must find nothing")
		}

		ok, err := repos.Membership.IsParticipant(bob.UID, p.PID)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Fatal("bob must be gone from the ledger")
		}
	})
}
