package application

import (
	"github.com/hsinyu-lin/trackdesk/internal/access"
	"github.com/hsinyu-lin/trackdesk/internal/domain/project"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
)

func actorOf(u user.User) access.Actor {
	return access.Actor{ID: u.UID, Role: u.Role}
}

// projectFacts reads the actor's standing in a project from the
// membership ledger.
func projectFacts(repos *repository.Repos, uid, pid uint) (access.Facts, error) {
	var facts access.Facts

	isOwner, err := repos.Membership.HasRole(uid, pid, project.MemberRoleOwner)
	if err != nil {
		return facts, err
	}
	isMember, err := repos.Membership.HasRole(uid, pid, project.MemberRoleMember)
	if err != nil {
		return facts, err
	}

	facts.IsOwner = isOwner
	facts.IsMember = isMember
	return facts, nil
}

// ticketFacts extends project facts with the actor's relation to a
// specific ticket.
func ticketFacts(repos *repository.Repos, uid uint, t ticket.Ticket) (access.Facts, error) {
	facts, err := projectFacts(repos, uid, t.ProjectID)
	if err != nil {
		return facts, err
	}
	facts.IsReporter = t.ReportedBy == uid
	facts.IsAssignee = t.AssignedTo != nil && *t.AssignedTo == uid
	return facts, nil
}
