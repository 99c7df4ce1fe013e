package posts

import (
	"context"

	"Lattice/internal/core/folders"
	"Lattice/internal/core/pagination"
	"Lattice/internal/core/tags"
)

// Repository defines the data access interface for posts
type Repository interface {
	// Create inserts a new post and fills its ID and timestamps
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a non-deleted post; ErrPostNotFound otherwise
	GetByID(ctx context.Context, id int) (*Post, error)

	// GetDeletedByID retrieves a post among the soft-deleted rows;
	// ErrPostNotFound when the post is absent or still active
	GetDeletedByID(ctx context.Context, id int) (*Post, error)

	// Update persists title/content changes and the soft-delete pair
	Update(ctx context.Context, post *Post) error

	// ListInFolder returns the non-deleted candidate sequence for a
	// listing: scoped to folderID (nil means global), filtered by the
	// optional search string over title+content and the optional tag,
	// sorted by the whitelisted field and direction. Filtering happens
	// here, before pagination.
	ListInFolder(ctx context.Context, folderID *int, search string, tagID int, sort pagination.SortField, dir pagination.Direction) ([]*Post, error)

	// ListByAuthor returns a user's non-deleted posts, newest first
	ListByAuthor(ctx context.Context, authorID int) ([]*Post, error)

	// TrendingByViews returns the most viewed non-deleted posts over the
	// last `days` days, at most `limit` of them
	TrendingByViews(ctx context.Context, limit, days int) ([]*Post, error)

	// Count returns the number of non-deleted posts
	Count(ctx context.Context) (int, error)

	// SetTags replaces a post's tag associations
	SetTags(ctx context.Context, postID int, tagIDs []int) error

	// ListTags returns a post's tags, name-sorted
	ListTags(ctx context.Context, postID int) ([]*tags.Tag, error)
}

// CommentCounter is the slice of the comment store the post stats
// projection needs. Satisfied by comments.Repository; kept local so the
// comments package can depend on this one without a cycle.
type CommentCounter interface {
	CountForPost(ctx context.Context, postID int) (int, error)
}

// Service defines the business logic interface for the post lifecycle
type Service interface {
	// Create persists a new active post for the author
	Create(ctx context.Context, req CreatePostRequest, authorID int) (*Post, error)

	// GetByID retrieves a visible (non-deleted) post
	GetByID(ctx context.Context, id int) (*Post, error)

	// GetByIDIncludeDeleted retrieves a post regardless of soft-delete
	// state, but a deleted post is only revealed to its owner or an admin;
	// anyone else gets the original not-found failure
	GetByIDIncludeDeleted(ctx context.Context, id, requesterID int) (*Post, error)

	// Update applies title/content changes; owner only
	Update(ctx context.Context, id int, req UpdatePostRequest, requesterID int) (*Post, error)

	// Delete soft-deletes a post; owner, moderator or admin
	Delete(ctx context.Context, id, requesterID int) error

	// Restore brings a soft-deleted post back; owner or admin
	Restore(ctx context.Context, id, requesterID int) (*Post, error)

	// ListInFolder builds the paginated, filtered, sorted listing for a
	// folder; a nil folder lists globally
	ListInFolder(ctx context.Context, folder *folders.Folder, page int, search, orderBy, direction string, tagID int) (*PostPage, error)

	// ListByAuthor lists a user's posts; requester must be the user
	// or a moderator
	ListByAuthor(ctx context.Context, authorID, requesterID int) ([]*Post, error)

	// Like/Unlike/GetLikes/GetLikers delegate to the post like registry
	Like(ctx context.Context, postID, userID int) error
	Unlike(ctx context.Context, postID, userID int) error
	GetLikes(ctx context.Context, postID int) (int, error)
	GetLikers(ctx context.Context, postID int) ([]int, error)

	// RegisterView/GetViews delegate to the view tracker
	RegisterView(ctx context.Context, postID, userID int) error
	GetViews(ctx context.Context, postID int) (int64, error)

	// Trending returns the top posts by views over the last week
	Trending(ctx context.Context) ([]*Post, error)

	// Count returns the number of non-deleted posts
	Count(ctx context.Context) (int, error)

	// BuildStats assembles the read-only presentation summary of a post
	BuildStats(ctx context.Context, post *Post) (*PostStats, error)
}
