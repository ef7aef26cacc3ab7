package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsinyu-lin/trackdesk/internal/application"
	"github.com/hsinyu-lin/trackdesk/pkg/response"
)

// writeError translates a domain error into the fixed envelope.
// Invalid input and invalid operations map to 400, authorization
// denials to 403, misses to 404; anything else is treated as an
// internal fault and surfaced generically.
func writeError(c *gin.Context, err error) {
	response.Error(c, statusFor(err), err.Error())
}

func statusFor(err error) int {
	if application.IsForbidden(err) {
		return http.StatusForbidden
	}

	switch {
	// invalid input
	case errors.Is(err, application.ErrAllFieldsRequired),
		errors.Is(err, application.ErrInvalidEmail),
		errors.Is(err, application.ErrWeakPassword),
		errors.Is(err, application.ErrPasswordMismatch),
		errors.Is(err, application.ErrEmailExists),
		errors.Is(err, application.ErrUsernameExists),
		errors.Is(err, application.ErrInvalidCredentials),
		errors.Is(err, application.ErrIncorrectPassword),
		errors.Is(err, application.ErrInvalidRole),
		errors.Is(err, application.ErrInvalidStatus),
		errors.Is(err, application.ErrInvalidType),
		errors.Is(err, application.ErrInvalidPriority),
		errors.Is(err, application.ErrStatusRequired),
		errors.Is(err, application.ErrSelfAssignRequired),
		errors.Is(err, application.ErrInvalidImage):
		return http.StatusBadRequest

	// not found
	case errors.Is(err, application.ErrUserNotFound),
		errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrTicketNotFound),
		errors.Is(err, application.ErrCommentNotFound),
		errors.Is(err, application.ErrCommentNotOwned):
		return http.StatusNotFound

	// invalid operation
	case errors.Is(err, application.ErrNotAMember):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
