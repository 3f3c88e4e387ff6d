package app

import "errors"

// Validation errors. The operation is aborted and state is unchanged.
var (
	ErrNotSignedIn    = errors.New("not signed in")
	ErrEmptyText      = errors.New("todo text is empty")
	ErrTextTooLong    = errors.New("todo text exceeds 100 characters")
	ErrInvalidDueDate = errors.New("invalid due date")
	ErrInvalidDueTime = errors.New("invalid due time")
	ErrNothingToClear = errors.New("nothing to clear")
	ErrEmptyMessage   = errors.New("message is empty")

	ErrMissingFields      = errors.New("all fields are required")
	ErrUsernameLength     = errors.New("username must be 2-20 characters")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrExternalAuth       = errors.New("external sign-in failed")
)
