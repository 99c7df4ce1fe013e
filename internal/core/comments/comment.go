package comments

import "time"

// Comment is attached to exactly one post. Owner and post are identifier
// relations; the soft-delete pair follows the same invariant as posts:
// IsDeleted is true iff DeletedAt is set.
type Comment struct {
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	Content   string     `json:"content" db:"content"`
	ID        int        `json:"id" db:"id"`
	PostID    int        `json:"postId" db:"post_id"`
	AuthorID  int        `json:"authorId" db:"author_id"`
	IsDeleted bool       `json:"isDeleted" db:"is_deleted"`
}

// CreateCommentRequest is the validated input for creating a comment
type CreateCommentRequest struct {
	Content string `json:"content"`
}

// UpdateCommentRequest is the validated input for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content"`
}
