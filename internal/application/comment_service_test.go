package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"gorm.io/gorm"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/internal/domain/comment"
	"github.com/hsinyu-lin/trackdesk/internal/domain/ticket"
	"github.com/hsinyu-lin/trackdesk/internal/domain/user"
)

func TestCreateComment(t *testing.T) {
	actor := user.User{UID: 3, Role: user.RoleUser}

	t.Run("missing ticket is a 404", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewCommentService(repos, &fakeImageStore{})

		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

		_, err := svc.CreateComment(c, actor, 1, 10, comment.CreateCommentInput{Content: "hi"})
		if err != application.ErrTicketNotFound {
			t.Fatalf("expected ErrTicketNotFound, got %v", err)
		}
	})

	t.Run("non-participant denied", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewCommentService(repos, &fakeImageStore{})

		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		expectParticipant(m, 3, 1, false, false)

		_, err := svc.CreateComment(c, actor, 1, 10, comment.CreateCommentInput{Content: "hi"})
		if !application.IsForbidden(err) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("appends with authorship recorded", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewCommentService(repos, &fakeImageStore{})

		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		expectParticipant(m, 3, 1, false, true)
		m.Comment.EXPECT().Create(gomock.Any()).Do(func(cm *comment.Comment) {
			cm.CID = 20
		}).Return(nil)

		cm, err := svc.CreateComment(c, actor, 1, 10, comment.CreateCommentInput{Content: "looking into it"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cm.CommentBy != 3 || cm.TicketID != 10 {
			t.Fatalf("unexpected comment linkage: %+v", cm)
		}
	})
}

func TestUpdateComment(t *testing.T) {
	actor := user.User{UID: 3, Role: user.RoleUser}

	t.Run("non-author is a plain miss", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewCommentService(repos, &fakeImageStore{})

		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		m.Comment.EXPECT().GetOwnedInTicket(uint(10), uint(20), uint(3)).Return(comment.Comment{}, gorm.ErrRecordNotFound)

		_, err := svc.UpdateComment(c, actor, 1, 10, 20, comment.UpdateCommentInput{Content: "edit"})
		if err != application.ErrCommentNotOwned {
			t.Fatalf("expected ErrCommentNotOwned, got %v", err)
		}
	})

	t.Run("author replaces the content", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewCommentService(repos, &fakeImageStore{})

		existing := comment.Comment{CID: 20, TicketID: 10, Content: "old", CommentBy: 3}
		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		m.Comment.EXPECT().GetOwnedInTicket(uint(10), uint(20), uint(3)).Return(existing, nil)
		m.Comment.EXPECT().Save(gomock.Any()).Return(nil)

		cm, err := svc.UpdateComment(c, actor, 1, 10, 20, comment.UpdateCommentInput{Content: "new"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cm.Content != "new" {
			t.Fatalf("expected replaced content, got %q", cm.Content)
		}
	})
}

func TestDeleteComment(t *testing.T) {
	actor := user.User{UID: 3, Role: user.RoleUser}

	t.Run("non-author cannot delete", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		svc := application.NewCommentService(repos, &fakeImageStore{})

		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		m.Comment.EXPECT().GetOwnedInTicket(uint(10), uint(20), uint(3)).Return(comment.Comment{}, gorm.ErrRecordNotFound)

		err := svc.DeleteComment(c, actor, 1, 10, 20)
		if err != application.ErrCommentNotFound {
			t.Fatalf("expected ErrCommentNotFound, got %v", err)
		}
	})

	t.Run("author delete removes row and blob", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		images := &fakeImageStore{}
		svc := application.NewCommentService(repos, images)

		existing := comment.Comment{
			CID:        20,
			TicketID:   10,
			Content:    "with image",
			CommentImg: "http://minio.local/trackdesk/comment-img/abc123",
			CommentBy:  3,
		}
		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		m.Comment.EXPECT().GetOwnedInTicket(uint(10), uint(20), uint(3)).Return(existing, nil)
		m.Comment.EXPECT().DeleteOwned(uint(10), uint(20), uint(3)).Return(true, nil)

		if err := svc.DeleteComment(c, actor, 1, 10, 20); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(images.destroys) != 1 || images.destroys[0] != "comment-img/abc123" {
			t.Fatalf("expected blob destroyed, got %v", images.destroys)
		}
	})

	t.Run("blank image skips the blob store", func(t *testing.T) {
		repos, m, c := setupMocks(t)
		images := &fakeImageStore{}
		svc := application.NewCommentService(repos, images)

		existing := comment.Comment{CID: 20, TicketID: 10, Content: "plain", CommentBy: 3}
		m.Ticket.EXPECT().GetInProject(uint(1), uint(10)).Return(ticket.Ticket{TID: 10, ProjectID: 1}, nil)
		m.Comment.EXPECT().GetOwnedInTicket(uint(10), uint(20), uint(3)).Return(existing, nil)
		m.Comment.EXPECT().DeleteOwned(uint(10), uint(20), uint(3)).Return(true, nil)

		if err := svc.DeleteComment(c, actor, 1, 10, 20); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(images.destroys) != 0 {
			t.Fatalf("expected no blob traffic, got %v", images.destroys)
		}
	})
}
