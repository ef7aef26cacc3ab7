// Package access is the pure authorization core. It owns no storage:
// callers gather the facts about the actor's relation to the resource
// chain (project -> ticket -> comment) and Evaluate answers from a
// fixed decision table. Services translate a deny into the matching
// domain error; the table itself never touches HTTP or the database.
package access

import (
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

type Action string

const (
	ActionCreateProject       Action = "create_project"
	ActionChangeProjectStatus Action = "change_project_status"
	ActionAddMember           Action = "add_member"
	ActionRemoveMember        Action = "remove_member"
	ActionReadProject         Action = "read_project"
	ActionReadTicket          Action = "read_ticket"
	ActionCreateTicket        Action = "create_ticket"
	ActionUpdateTicket        Action = "update_ticket"
	ActionCreateComment       Action = "create_comment"
	ActionUpdateComment       Action = "update_comment"
	ActionDeleteComment       Action = "delete_comment"
)

// Actor is the authenticated user performing the request.
type Actor struct {
	ID   uint
	Role user.Role
}

// Facts describe the actor's relation to the target resource chain.
// Only the facts relevant to the requested action need to be filled in.
type Facts struct {
	IsOwner       bool // actor holds an owner row in the project ledger
	IsMember      bool // actor holds a member row in the project ledger
	IsReporter    bool // actor reported the target ticket
	IsAssignee    bool // actor is the target ticket's current assignee
	CommentAuthor bool // actor wrote the target comment
}

// Participant reports whether the actor belongs to the project at all.
func (f Facts) Participant() bool {
	return f.IsOwner || f.IsMember
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Evaluate applies the cascading authorization rules, in order of
// precedence:
//
//  1. project creation, status change and membership changes are gated
//     on the organization-wide role alone (moderator or admin); holding
//     ownership in the specific project is not required
//  2. reads and ticket/comment creation require participation (owner or
//     member) in the project
//  3. comment mutation requires authorship; there is no role override,
//     not even for admins
//
// Ticket field-level update policy is not decided here: Evaluate only
// answers whether the actor may enter the ticket workflow at all.
func Evaluate(actor Actor, action Action, facts Facts) Decision {
	switch action {
	case ActionCreateProject:
		if !actor.Role.Elevated() {
			return deny("you don't have permission to create a project")
		}
		return allow()

	case ActionChangeProjectStatus:
		if !actor.Role.Elevated() {
			return deny("you don't have permission to change the status of a project")
		}
		return allow()

	case ActionAddMember:
		if !actor.Role.Elevated() {
			return deny("you don't have permission to add a member")
		}
		return allow()

	case ActionRemoveMember:
		if !actor.Role.Elevated() {
			return deny("you don't have permission to remove a member")
		}
		return allow()

	case ActionReadProject, ActionReadTicket:
		if !facts.Participant() {
			return deny("you don't have permission to access this project")
		}
		return allow()

	case ActionCreateTicket:
		if !facts.Participant() {
			return deny("you don't have permission to raise a ticket in this project")
		}
		return allow()

	case ActionUpdateTicket:
		if !facts.Participant() {
			return deny("you don't have permission to update this ticket")
		}
		return allow()

	case ActionCreateComment:
		if !facts.Participant() {
			return deny("you don't have permission to comment in this project")
		}
		return allow()

	case ActionUpdateComment:
		if !facts.CommentAuthor {
			return deny("you're not allowed to update this comment")
		}
		return allow()

	case ActionDeleteComment:
		if !facts.CommentAuthor {
			return deny("you're not allowed to delete this comment")
		}
		return allow()
	}

	return deny("unknown action")
}
