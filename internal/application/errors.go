package application

import "errors"

// Domain errors are raised at the point of detection and travel
// unmodified to the boundary, where the error mapper buckets them into
// the four taxonomy kinds: invalid input, forbidden, not found and
// invalid operation. Anything unrecognized falls through as a 500.
var (
	// invalid input
	ErrAllFieldsRequired  = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("please enter a valid email")
	ErrWeakPassword       = errors.New("please enter a strong password")
	ErrPasswordMismatch   = errors.New("password does not match")
	ErrEmailExists        = errors.New("email already exists")
	ErrUsernameExists     = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrIncorrectPassword  = errors.New("password is incorrect")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidType        = errors.New("invalid ticket type")
	ErrInvalidPriority    = errors.New("invalid ticket priority")
	ErrStatusRequired     = errors.New("status is required")
	ErrSelfAssignRequired = errors.New("you need to assign this ticket to yourself before updating the status")
	ErrInvalidImage       = errors.New("invalid image payload")

	// not found
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTicketNotFound  = errors.New("ticket not found")
	ErrCommentNotFound = errors.New("comment not found")
	// A non-author resolving someone else's comment is reported as a
	// miss, not a forbidden, so comment ids cannot be probed.
	ErrCommentNotOwned = errors.New("you're not allowed to update this comment")

	// invalid operation
	ErrNotAMember = errors.New("user is not a member of this project")
)

// ForbiddenError carries the access evaluator's deny reason.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return e.Reason
}

func forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}

// IsForbidden reports whether err is an authorization denial.
func IsForbidden(err error) bool {
	var fe *ForbiddenError
	return errors.As(err, &fe)
}
