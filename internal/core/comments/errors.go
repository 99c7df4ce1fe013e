package comments

import "errors"

var (
	// ErrCommentNotFound indicates the comment doesn't exist or is soft-deleted
	ErrCommentNotFound = errors.New("comment not found")

	// ErrEditNotAllowed carries the fixed edit-authorization message.
	// Comment edits are owner-only; moderators may delete but never edit.
	ErrEditNotAllowed = errors.New("only the owner can edit this comment")

	// ErrDeleteNotAllowed carries the fixed delete-authorization message
	ErrDeleteNotAllowed = errors.New("only the owner, a moderator or an admin can delete this comment")

	// ErrUserBlocked indicates a blocked user attempted to comment
	ErrUserBlocked = errors.New("blocked users cannot comment")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrCommentNotFound)
}

// IsAuthorization checks if an error is a permission failure
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrEditNotAllowed) ||
		errors.Is(err, ErrDeleteNotAllowed) ||
		errors.Is(err, ErrUserBlocked)
}
