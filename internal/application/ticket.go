package application

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/access"
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/storage"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

const ticketImgFolder = "ticket-img"

type TicketService struct {
	Repos  *repository.Repos
	Images storage.ImageStore
}

func NewTicketService(repos *repository.Repos, images storage.ImageStore) *TicketService {
	return &TicketService{Repos: repos, Images: images}
}

// CreateTicket raises a ticket in a project the actor participates in.
// The image, when supplied, is uploaded after the row exists and the
// URL recorded only once the upload is confirmed.
func (s *TicketService) CreateTicket(c *gin.Context, actor user.User, pid uint, input ticket.CreateTicketInput) (*ticket.Ticket, error) {
	if _, err := s.Repos.Project.GetByID(pid); err != nil {
		return nil, ErrProjectNotFound
	}

	facts, err := projectFacts(s.Repos, actor.UID, pid)
	if err != nil {
		return nil, err
	}
	decision := access.Evaluate(actorOf(actor), access.ActionCreateTicket, facts)
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	if !input.Type.Valid() {
		return nil, ErrInvalidType
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	t := ticket.Ticket{
		ProjectID:   pid,
		Title:       input.Title,
		Description: input.Description,
		Type:        input.Type,
		Priority:    input.Priority,
		Status:      ticket.StatusOpen,
		ReportedBy:  actor.UID,
	}
	if err := s.Repos.Ticket.Create(&t); err != nil {
		return nil, err
	}

	if input.TicketImg != nil {
		url, err := s.uploadImage(c.Request.Context(), *input.TicketImg)
		if err != nil {
			return nil, err
		}
		t.TicketImg = url
		if err := s.Repos.Ticket.Save(&t); err != nil {
			return nil, err
		}
	}

	utils.LogAuditWithConsole(c, "create", "ticket", fmt.Sprintf("t_id=%d", t.TID), nil, t, s.Repos.Audit)

	return &t, nil
}

// GetTicket returns the ticket with reporter, assignee and comment
// authors expanded, for any project participant. Admin users are left
// out of the reporter/assignee expansion. Participation is checked
// before the ticket is resolved, so a non-participant sees the same
// denial whether or not the ticket exists.
func (s *TicketService) GetTicket(actor user.User, pid, tid uint) (*ticket.Detail, error) {
	facts, err := projectFacts(s.Repos, actor.UID, pid)
	if err != nil {
		return nil, err
	}
	decision := access.Evaluate(actorOf(actor), access.ActionReadTicket, facts)
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	t, err := s.Repos.Ticket.GetInProject(pid, tid)
	if err != nil {
		return nil, ErrTicketNotFound
	}

	detail := &ticket.Detail{Ticket: t}
	detail.Reporter = s.expandUser(t.ReportedBy)
	if t.AssignedTo != nil {
		detail.Assignee = s.expandUser(*t.AssignedTo)
	}

	comments, err := s.Repos.Comment.ListByTicket(t.TID)
	if err != nil {
		return nil, err
	}
	detail.Comments = make([]comment.WithAuthor, 0, len(comments))
	for _, cm := range comments {
		detail.Comments = append(detail.Comments, comment.WithAuthor{
			Comment: cm,
			Author:  s.expandAnyUser(cm.CommentBy),
		})
	}

	return detail, nil
}

// UpdateTicket applies the three-tier field policy. The tiers are
// checked in fixed priority order against the actor's identity:
//
//  1. the reporter patches any updatable field; absent fields stay put
//  2. the current assignee changes status and nothing else
//  3. any other participant may only claim the ticket by supplying
//     assignedTo
//
// Status transitions are not constrained: a closed ticket can be
// reopened by anyone the tier dispatch lets write status.
func (s *TicketService) UpdateTicket(c *gin.Context, actor user.User, pid, tid uint, input ticket.UpdateTicketInput) (*ticket.Ticket, error) {
	t, err := s.Repos.Ticket.GetInProject(pid, tid)
	if err != nil {
		return nil, ErrTicketNotFound
	}

	facts, err := ticketFacts(s.Repos, actor.UID, t)
	if err != nil {
		return nil, err
	}
	decision := access.Evaluate(actorOf(actor), access.ActionUpdateTicket, facts)
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}
	before := t

	switch {
	case facts.IsReporter:
		if err := s.applyReporterPatch(c.Request.Context(), &t, input); err != nil {
			return nil, err
		}

	case facts.IsAssignee:
		if input.Status == nil {
			return nil, ErrStatusRequired
		}
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		t.Status = *input.Status

	default:
		if input.AssignedTo == nil {
			return nil, ErrSelfAssignRequired
		}
		t.AssignedTo = input.AssignedTo
	}

	if err := s.Repos.Ticket.Save(&t); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "ticket", fmt.Sprintf("t_id=%d", t.TID), before, t, s.Repos.Audit)

	return &t, nil
}

// applyReporterPatch is sparse: only fields present in the body are
// touched. Replacing the image destroys the old blob first and records
// the new URL only after the upload is confirmed.
func (s *TicketService) applyReporterPatch(ctx context.Context, t *ticket.Ticket, input ticket.UpdateTicketInput) error {
	if input.Title != nil {
		t.Title = *input.Title
	}
	if input.Description != nil {
		t.Description = *input.Description
	}
	if input.Type != nil {
		if !input.Type.Valid() {
			return ErrInvalidType
		}
		t.Type = *input.Type
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return ErrInvalidPriority
		}
		t.Priority = *input.Priority
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return ErrInvalidStatus
		}
		t.Status = *input.Status
	}
	if input.AssignedTo != nil {
		t.AssignedTo = input.AssignedTo
	}
	if input.TicketImg != nil {
		data, contentType, err := storage.DecodeImage(*input.TicketImg)
		if err != nil {
			return ErrInvalidImage
		}
		if t.TicketImg != "" {
			if err := s.Images.Destroy(ctx, ticketImgFolder, storage.PublicID(t.TicketImg)); err != nil {
				return err
			}
		}
		url, err := s.Images.Upload(ctx, ticketImgFolder, data, contentType)
		if err != nil {
			return err
		}
		t.TicketImg = url
	}
	return nil
}

func (s *TicketService) uploadImage(ctx context.Context, payload string) (string, error) {
	data, contentType, err := storage.DecodeImage(payload)
	if err != nil {
		return "", ErrInvalidImage
	}
	return s.Images.Upload(ctx, ticketImgFolder, data, contentType)
}

// expandUser resolves a user reference, hiding admins the way the
// project detail expansion does.
func (s *TicketService) expandUser(uid uint) *user.User {
	u, err := s.Repos.User.GetByID(uid)
	if err != nil || u.Role == user.RoleAdmin {
		return nil
	}
	return &u
}

// expandAnyUser resolves a user reference without the admin filter;
// comment authorship is always shown.
func (s *TicketService) expandAnyUser(uid uint) *user.User {
	u, err := s.Repos.User.GetByID(uid)
	if err != nil {
		return nil
	}
	return &u
}
