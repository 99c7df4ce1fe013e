// Package views counts post views, deduplicated per user per calendar day:
// a user refreshing a post all day adds one view, but comes back tomorrow
// and adds another. Day boundaries use the server's local date.
package views

import (
	"context"
	"time"
)

// Repository defines the view-record fact store. Records are written once
// and never mutated or deleted. The store holds a uniqueness constraint on
// (post, user, day); a violation surfaced by a concurrent register is not an
// error, it just means the day's view is already counted.
type Repository interface {
	// ExistsForDate checks whether a view record exists for the given day
	ExistsForDate(ctx context.Context, postID, userID int, day time.Time) (bool, error)

	// Register inserts the (post, user, today) record.
	// Must swallow the store's duplicate-record violation: a racing
	// register already counted this day.
	Register(ctx context.Context, postID, userID int) error

	// TotalViews returns the aggregate record count for the post,
	// across all users and days
	TotalViews(ctx context.Context, postID int) (int64, error)
}

// Tracker implements once-per-user-per-day view counting
type Tracker struct {
	repo Repository
	now  func() time.Time
}

// NewTracker creates a view tracker over the given record store
func NewTracker(repo Repository) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// RegisterView records a view for today unless one already exists for this
// (post, user) pair. A repeat on the same calendar date is a no-op.
func (t *Tracker) RegisterView(ctx context.Context, postID, userID int) error {
	today := t.now()

	exists, err := t.repo.ExistsForDate(ctx, postID, userID, today)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return t.repo.Register(ctx, postID, userID)
}

// TotalViews returns the cumulative view count for a post
func (t *Tracker) TotalViews(ctx context.Context, postID int) (int64, error) {
	return t.repo.TotalViews(ctx, postID)
}
