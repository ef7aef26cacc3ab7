package application

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/access"
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
	"github.com/hsinyu-lin/trackdesk/internal/repository"
	"github.com/hsinyu-lin/trackdesk/pkg/storage"
	"github.com/hsinyu-lin/trackdesk/pkg/utils"
)

const commentImgFolder = "comment-img"

type CommentService struct {
	Repos  *repository.Repos
	Images storage.ImageStore
}

func NewCommentService(repos *repository.Repos, images storage.ImageStore) *CommentService {
	return &CommentService{Repos: repos, Images: images}
}

// CreateComment attaches a comment to a ticket the actor can see.
// Append order is chronological and never reordered.
func (s *CommentService) CreateComment(c *gin.Context, actor user.User, pid, tid uint, input comment.CreateCommentInput) (*comment.Comment, error) {
	t, err := s.Repos.Ticket.GetInProject(pid, tid)
	if err != nil {
		return nil, ErrTicketNotFound
	}

	facts, err := projectFacts(s.Repos, actor.UID, pid)
	if err != nil {
		return nil, err
	}
	decision := access.Evaluate(actorOf(actor), access.ActionCreateComment, facts)
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	cm := comment.Comment{
		TicketID:  t.TID,
		Content:   input.Content,
		CommentBy: actor.UID,
	}
	if err := s.Repos.Comment.Create(&cm); err != nil {
		return nil, err
	}

	if input.CommentImg != nil {
		data, contentType, err := storage.DecodeImage(*input.CommentImg)
		if err != nil {
			return nil, ErrInvalidImage
		}
		url, err := s.Images.Upload(c.Request.Context(), commentImgFolder, data, contentType)
		if err != nil {
			return nil, err
		}
		cm.CommentImg = url
		if err := s.Repos.Comment.Save(&cm); err != nil {
			return nil, err
		}
	}

	utils.LogAuditWithConsole(c, "create", "comment", fmt.Sprintf("c_id=%d", cm.CID), nil, cm, s.Repos.Audit)

	return &cm, nil
}

// UpdateComment mutates a comment resolved through the full
// project -> ticket -> comment path with authorship required; a
// non-author, or a comment id from another ticket, is a plain miss.
// There is no role override, admins included.
func (s *CommentService) UpdateComment(c *gin.Context, actor user.User, pid, tid, cid uint, input comment.UpdateCommentInput) (*comment.Comment, error) {
	t, err := s.Repos.Ticket.GetInProject(pid, tid)
	if err != nil {
		return nil, ErrTicketNotFound
	}

	cm, err := s.Repos.Comment.GetOwnedInTicket(t.TID, cid, actor.UID)
	if err != nil {
		return nil, ErrCommentNotOwned
	}
	before := cm

	decision := access.Evaluate(actorOf(actor), access.ActionUpdateComment, access.Facts{CommentAuthor: cm.CommentBy == actor.UID})
	if !decision.Allowed {
		return nil, forbidden(decision.Reason)
	}

	cm.Content = input.Content

	if input.CommentImg != nil {
		data, contentType, err := storage.DecodeImage(*input.CommentImg)
		if err != nil {
			return nil, ErrInvalidImage
		}
		if cm.CommentImg != "" {
			if err := s.Images.Destroy(c.Request.Context(), commentImgFolder, storage.PublicID(cm.CommentImg)); err != nil {
				return nil, err
			}
		}
		url, err := s.Images.Upload(c.Request.Context(), commentImgFolder, data, contentType)
		if err != nil {
			return nil, err
		}
		cm.CommentImg = url
	}

	if err := s.Repos.Comment.Save(&cm); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "comment", fmt.Sprintf("c_id=%d", cm.CID), before, cm, s.Repos.Audit)

	return &cm, nil
}

// DeleteComment removes the author's comment. The row carries its
// ticket linkage, so one delete takes the comment out of the ticket's
// sequence and out of storage together; nothing can be orphaned.
func (s *CommentService) DeleteComment(c *gin.Context, actor user.User, pid, tid, cid uint) error {
	t, err := s.Repos.Ticket.GetInProject(pid, tid)
	if err != nil {
		return ErrTicketNotFound
	}

	cm, err := s.Repos.Comment.GetOwnedInTicket(t.TID, cid, actor.UID)
	if err != nil {
		return ErrCommentNotFound
	}

	removed, err := s.Repos.Comment.DeleteOwned(t.TID, cid, actor.UID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrCommentNotFound
	}

	if cm.CommentImg != "" {
		if err := s.Images.Destroy(c.Request.Context(), commentImgFolder, storage.PublicID(cm.CommentImg)); err != nil {
			log.Printf("[comment] destroy image for c_id=%d failed: %v", cm.CID, err)
		}
	}

	utils.LogAuditWithConsole(c, "delete", "comment", fmt.Sprintf("c_id=%d", cm.CID), cm, nil, s.Repos.Audit)

	return nil
}
