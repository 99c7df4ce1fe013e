package posts

import (
	"time"

	"Lattice/internal/core/pagination"
)

// PostsPageSize is the fixed page size for post listings
const PostsPageSize = 5

// Trending feed shape: the five most viewed posts of the last week
const (
	trendingLimit = 5
	trendingDays  = 7
)

// Post is a forum post. Author and folder are identifier-keyed relations
// resolved through repositories, never embedded pointers; both are immutable
// after creation. IsDeleted is true iff DeletedAt is set.
type Post struct {
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	Title     string     `json:"title" db:"title"`
	Content   string     `json:"content" db:"content"`
	ID        int        `json:"id" db:"id"`
	AuthorID  int        `json:"authorId" db:"author_id"`
	FolderID  int        `json:"folderId" db:"folder_id"`
	IsDeleted bool       `json:"isDeleted" db:"is_deleted"`
}

// CreatePostRequest is the validated input for creating a post
type CreatePostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	FolderID int    `json:"folderId"`
	TagIDs   []int  `json:"tagIds,omitempty"`
}

// UpdatePostRequest is the validated input for editing a post's
// title and content; author and folder never change
type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostPage is a paginated post listing plus the filter state it was built
// from, so the view can render filter-preserving page links
type PostPage struct {
	Items       []*Post `json:"items"`
	SearchQuery string  `json:"searchQuery,omitempty"`
	Page        int     `json:"page"`
	Size        int     `json:"size"`
	TotalItems  int     `json:"totalItems"`
	TotalPages  int     `json:"totalPages"`
	FromItem    int     `json:"fromItem"`
	ToItem      int     `json:"toItem"`
	TagID       int     `json:"tagId,omitempty"`
}

// NewPostPage lifts an engine window into the listing response shape
func NewPostPage(window pagination.Page[*Post], search string, tagID int) *PostPage {
	return &PostPage{
		Items:       window.Items,
		SearchQuery: search,
		Page:        window.Page,
		Size:        window.Size,
		TotalItems:  window.TotalItems,
		TotalPages:  window.TotalPages,
		FromItem:    window.FromItem,
		ToItem:      window.ToItem,
		TagID:       tagID,
	}
}

// PostStats is the read-only presentation summary of a post and its
// collaborators. Building it mutates nothing.
type PostStats struct {
	Creator         string   `json:"creator"`
	CreatorID       int      `json:"creatorId"`
	CommentsCount   int      `json:"commentsCount"`
	Views           int64    `json:"views"`
	LikedBy         []int    `json:"likedBy"`
	Tags            []string `json:"tags"`
	FolderName      string   `json:"folderName"`
	CreatedAtString string   `json:"createdAtString"`
	UpdatedAtString string   `json:"updatedAtString"`
	DeletedAtString string   `json:"deletedAtString,omitempty"`
}
