package comments

import "context"

// Repository defines the data access interface for comments.
// Also satisfies posts.CommentCounter through CountForPost.
type Repository interface {
	// Create inserts a new comment and fills its ID and timestamps
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a non-deleted comment; ErrCommentNotFound otherwise
	GetByID(ctx context.Context, id int) (*Comment, error)

	// ListByPost returns a post's non-deleted comments, oldest first
	ListByPost(ctx context.Context, postID int) ([]*Comment, error)

	// Update persists content changes and the soft-delete pair
	Update(ctx context.Context, comment *Comment) error

	// CountForPost returns the number of non-deleted comments on a post
	CountForPost(ctx context.Context, postID int) (int, error)

	// Count returns the number of non-deleted comments forum-wide
	Count(ctx context.Context) (int, error)
}

// Service defines the business logic interface for the comment lifecycle
type Service interface {
	// Create attaches a comment to a post; fails with the post's
	// not-found error when the post is absent or deleted
	Create(ctx context.Context, req CreateCommentRequest, postID, userID int) (*Comment, error)

	// GetByID retrieves a visible comment
	GetByID(ctx context.Context, id int) (*Comment, error)

	// ListByPost lists a post's visible comments
	ListByPost(ctx context.Context, postID int) ([]*Comment, error)

	// Update edits a comment's content; owner only
	Update(ctx context.Context, id int, req UpdateCommentRequest, requesterID int) (*Comment, error)

	// Delete soft-deletes a comment; owner, moderator or admin
	Delete(ctx context.Context, id, requesterID int) error

	// Like/Unlike/GetLikes delegate to the comment like registry
	Like(ctx context.Context, commentID, userID int) error
	Unlike(ctx context.Context, commentID, userID int) error
	GetLikes(ctx context.Context, commentID int) (int, error)

	// Count returns the number of visible comments forum-wide
	Count(ctx context.Context) (int, error)
}
