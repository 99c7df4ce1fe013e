package posts

import "errors"

var (
	// ErrPostNotFound indicates the post doesn't exist or is filtered out
	// of the requester's visibility
	ErrPostNotFound = errors.New("post not found")

	// ErrEditNotAllowed carries the fixed edit-authorization message.
	// Only the owner may edit; there is no moderator bypass for edits.
	ErrEditNotAllowed = errors.New("only the owner can edit this post")

	// ErrDeleteNotAllowed carries the fixed delete-authorization message
	ErrDeleteNotAllowed = errors.New("only the owner, a moderator or an admin can delete this post")

	// ErrRestoreNotAllowed carries the fixed restore-authorization message.
	// Moderators may delete others' posts but not restore them.
	ErrRestoreNotAllowed = errors.New("only the owner or an admin can restore this post")

	// ErrViewOthersPosts indicates a non-moderator asked for another
	// user's post listing
	ErrViewOthersPosts = errors.New("you are not allowed to view other users' posts")

	// ErrUserBlocked indicates a blocked user attempted to create content
	ErrUserBlocked = errors.New("blocked users cannot create posts")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound)
}

// IsAuthorization checks if an error is a permission failure
func IsAuthorization(err error) bool {
	return errors.Is(err, ErrEditNotAllowed) ||
		errors.Is(err, ErrDeleteNotAllowed) ||
		errors.Is(err, ErrRestoreNotAllowed) ||
		errors.Is(err, ErrViewOthersPosts) ||
		errors.Is(err, ErrUserBlocked)
}
