package tags

import "errors"

var (
	// ErrTagNotFound indicates the requested tag doesn't exist
	ErrTagNotFound = errors.New("tag not found")

	// ErrTagExists indicates another tag already holds this name
	// (comparison is case-insensitive)
	ErrTagExists = errors.New("tag with this name already exists")

	// ErrNotAuthorized indicates the actor may not manage tags
	ErrNotAuthorized = errors.New("only admins can manage tags")

	// ErrInvalidName indicates the name is outside the 2-50 character bounds
	ErrInvalidName = errors.New("tag name must be between 2 and 50 characters")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTagNotFound)
}

// IsDuplicate checks if an error is the name-collision error
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrTagExists)
}
