package access_test

import (
	"testing"

	"github.com/hsinyu-lin/trackdesk/internal/access"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

func TestEvaluateRoleGatedActions(t *testing.T) {
	roleGated := []access.Action{
		access.ActionCreateProject,
		access.ActionChangeProjectStatus,
		access.ActionAddMember,
		access.ActionRemoveMember,
	}

	for _, action := range roleGated {
		t.Run(string(action), func(t *testing.T) {
			// A plain user is denied regardless of project ownership.
			d := access.Evaluate(access.Actor{ID: 1, Role: user.RoleUser}, action, access.Facts{IsOwner: true})
			if d.Allowed {
				t.Fatalf("expected deny for role user on %s", action)
			}
			if d.Reason == "" {
				t.Fatal("expected a deny reason")
			}

			// Moderators and admins are allowed even without owning the project.
			for _, role := range []user.Role{user.RoleModerator, user.RoleAdmin} {
				d := access.Evaluate(access.Actor{ID: 1, Role: role}, action, access.Facts{})
				if !d.Allowed {
					t.Fatalf("expected allow for role %s on %s, got %q", role, action, d.Reason)
				}
			}
		})
	}
}

func TestEvaluateParticipationGatedActions(t *testing.T) {
	participation := []access.Action{
		access.ActionReadProject,
		access.ActionReadTicket,
		access.ActionCreateTicket,
		access.ActionUpdateTicket,
		access.ActionCreateComment,
	}

	for _, action := range participation {
		t.Run(string(action), func(t *testing.T) {
			// An admin outside the project is still denied.
			d := access.Evaluate(access.Actor{ID: 1, Role: user.RoleAdmin}, action, access.Facts{})
			if d.Allowed {
				t.Fatalf("expected deny for non-participant on %s", action)
			}

			// Either ledger role grants access.
			if d := access.Evaluate(access.Actor{ID: 1, Role: user.RoleUser}, action, access.Facts{IsOwner: true}); !d.Allowed {
				t.Fatalf("expected allow for owner on %s, got %q", action, d.Reason)
			}
			if d := access.Evaluate(access.Actor{ID: 1, Role: user.RoleUser}, action, access.Facts{IsMember: true}); !d.Allowed {
				t.Fatalf("expected allow for member on %s, got %q", action, d.Reason)
			}
		})
	}
}

func TestEvaluateCommentMutationRequiresAuthorship(t *testing.T) {
	for _, action := range []access.Action{access.ActionUpdateComment, access.ActionDeleteComment} {
		t.Run(string(action), func(t *testing.T) {
			// No role override for comment ownership, admins included.
			d := access.Evaluate(access.Actor{ID: 1, Role: user.RoleAdmin}, action, access.Facts{IsOwner: true})
			if d.Allowed {
				t.Fatalf("expected deny for non-author on %s", action)
			}

			d = access.Evaluate(access.Actor{ID: 1, Role: user.RoleUser}, action, access.Facts{CommentAuthor: true})
			if !d.Allowed {
				t.Fatalf("expected allow for author on %s, got %q", action, d.Reason)
			}
		})
	}
}

func TestEvaluateUnknownAction(t *testing.T) {
	d := access.Evaluate(access.Actor{ID: 1, Role: user.RoleAdmin}, access.Action("drop_tables"), access.Facts{IsOwner: true, CommentAuthor: true})
	if d.Allowed {
		t.Fatal("expected deny for unknown action")
	}
}

func TestFactsParticipant(t *testing.T) {
	if (access.Facts{}).Participant() {
		t.Fatal("empty facts must not be a participant")
	}
	if !(access.Facts{IsOwner: true}).Participant() {
		t.Fatal("owner is a participant")
	}
	if !(access.Facts{IsMember: true}).Participant() {
		t.Fatal("member is a participant")
	}
}
