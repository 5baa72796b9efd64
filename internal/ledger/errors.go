package ledger

import "errors"

// ErrNotAuthenticated is returned when an operation requiring a user
// identity is attempted without one. Callers should redirect to auth.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrHabitNotFound is returned when a habit does not exist or is not
// owned by the requesting user.
var ErrHabitNotFound = errors.New("habit not found")

// ValidationError reports a client-detectable input violation. It is
// raised before any database call is attempted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
