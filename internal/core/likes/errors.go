package likes

import "errors"

var (
	// ErrAlreadyLiked indicates the user already likes this content
	ErrAlreadyLiked = errors.New("user has already liked this content")

	// ErrNotLiked indicates the user does not currently like this content
	ErrNotLiked = errors.New("user has not liked this content")
)

// IsDuplicate checks if an error is the duplicate-like invariant violation
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrAlreadyLiked)
}

// IsNotFound checks if an error is the missing-like error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotLiked)
}
