// Package likes implements the toggle-state registry between a user and a
// piece of content. Posts and comments each run their own Registry instance
// over their own membership store; the invariant is the same for both:
// at most one like per (user, content) pair, enforced loudly.
package likes

import "context"

// Store defines the membership table a registry runs over.
// The durable store enforces the (user, content) uniqueness constraint;
// a violation surfaced during a concurrent race must be returned as
// ErrAlreadyLiked so the registry treats it like the ordinary duplicate.
type Store interface {
	// Add inserts the membership row
	Add(ctx context.Context, contentID, userID int) error

	// Remove deletes the membership row
	Remove(ctx context.Context, contentID, userID int) error

	// Exists checks whether the user currently likes the content
	Exists(ctx context.Context, contentID, userID int) (bool, error)

	// Count returns the size of the content's liker set
	Count(ctx context.Context, contentID int) (int, error)

	// LikerIDs returns the user IDs currently liking the content
	LikerIDs(ctx context.Context, contentID int) ([]int, error)
}

// Registry enforces the at-most-one-like invariant over a Store
type Registry struct {
	store Store
}

// NewRegistry creates a like registry over the given membership store
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Like records that the user likes the content.
// Repeating a successful Like fails with ErrAlreadyLiked rather than
// silently succeeding; the liker set is left unchanged.
func (r *Registry) Like(ctx context.Context, contentID, userID int) error {
	liked, err := r.store.Exists(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}
	return r.store.Add(ctx, contentID, userID)
}

// Unlike removes the user's like.
// Unliking content the user never liked fails with ErrNotLiked.
func (r *Registry) Unlike(ctx context.Context, contentID, userID int) error {
	liked, err := r.store.Exists(ctx, contentID, userID)
	if err != nil {
		return err
	}
	if !liked {
		return ErrNotLiked
	}
	return r.store.Remove(ctx, contentID, userID)
}

// Count returns how many users like the content
func (r *Registry) Count(ctx context.Context, contentID int) (int, error) {
	return r.store.Count(ctx, contentID)
}

// LikedBy returns the IDs of users liking the content
func (r *Registry) LikedBy(ctx context.Context, contentID int) ([]int, error) {
	return r.store.LikerIDs(ctx, contentID)
}
