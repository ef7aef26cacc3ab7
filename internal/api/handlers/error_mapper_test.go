package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/hsinyu-lin/trackdesk/internal/application"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{application.ErrInvalidEmail, http.StatusBadRequest},
		{application.ErrWeakPassword, http.StatusBadRequest},
		{application.ErrInvalidStatus, http.StatusBadRequest},
		{application.ErrStatusRequired, http.StatusBadRequest},
		{application.ErrSelfAssignRequired, http.StatusBadRequest},
		{application.ErrNotAMember, http.StatusBadRequest},
		{application.ErrProjectNotFound, http.StatusNotFound},
		{application.ErrTicketNotFound, http.StatusNotFound},
		{application.ErrCommentNotFound, http.StatusNotFound},
		{application.ErrCommentNotOwned, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Errorf("statusFor(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestStatusForForbidden(t *testing.T) {
	// Every authorization denial comes out as 403, regardless of which
	// rule produced it.
	err := &application.ForbiddenError{Reason: "you don't have permission to create a project"}
	if got := statusFor(err); got != http.StatusForbidden {
		t.Fatalf("statusFor(forbidden) = %d, want 403", got)
	}
}
