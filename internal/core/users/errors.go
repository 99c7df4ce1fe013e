package users

import "errors"

var (
	// ErrUserNotFound indicates a user lookup found no matching record
	ErrUserNotFound = errors.New("user not found")

	// ErrNotAuthorized indicates the actor may not administer users
	ErrNotAuthorized = errors.New("only moderators and admins can administer users")

	// ErrAlreadyBlocked indicates the user is already in the blocked state
	ErrAlreadyBlocked = errors.New("user is already blocked")

	// ErrNotBlocked indicates the user is not currently blocked
	ErrNotBlocked = errors.New("user is not blocked")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsConflict checks if an error is an illegal state-transition error
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyBlocked) || errors.Is(err, ErrNotBlocked)
}
