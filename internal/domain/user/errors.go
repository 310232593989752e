package user

import "errors"

// Store-level sentinels. The persistence adapter maps driver errors to these;
// usecases map them to the API error catalog.
var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when an insert or update violates the
	// unique email index. This is what closes the check-then-write race on
	// registration.
	ErrDuplicateEmail = errors.New("email already in use")
)
