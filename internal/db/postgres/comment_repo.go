package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Lattice/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

const commentColumns = `
	c.id, c.content, c.post_id, c.author_id,
	c.is_deleted, c.created_at, c.updated_at, c.deleted_at`

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (content, post_id, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		comment.Content, comment.PostID, comment.AuthorID,
		comment.CreatedAt, comment.UpdatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("failed to insert comment: %w", err)
	}
	return nil
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id int) (*comments.Comment, error) {
	query := `SELECT` + commentColumns + ` FROM comments c WHERE c.id = $1 AND c.is_deleted = FALSE`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.Content, &comment.PostID, &comment.AuthorID,
		&comment.IsDeleted, &comment.CreatedAt, &comment.UpdatedAt, &comment.DeletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return &comment, nil
}

func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int) ([]*comments.Comment, error) {
	query := `
		SELECT` + commentColumns + `
		FROM comments c
		WHERE c.post_id = $1 AND c.is_deleted = FALSE
		ORDER BY c.created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", postID, err)
	}
	defer rows.Close()

	var result []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		if err := rows.Scan(
			&comment.ID, &comment.Content, &comment.PostID, &comment.AuthorID,
			&comment.IsDeleted, &comment.CreatedAt, &comment.UpdatedAt, &comment.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}
	return result, rows.Err()
}

func (r *postgresCommentRepo) Update(ctx context.Context, comment *comments.Comment) error {
	query := `
		UPDATE comments
		SET content = $2, is_deleted = $3, updated_at = $4, deleted_at = $5
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.Content, comment.IsDeleted,
		comment.UpdatedAt, comment.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment %d: %w", comment.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return comments.ErrCommentNotFound
	}
	return nil
}

func (r *postgresCommentRepo) CountForPost(ctx context.Context, postID int) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE post_id = $1 AND is_deleted = FALSE`,
		postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments for post %d: %w", postID, err)
	}
	return count, nil
}

func (r *postgresCommentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE is_deleted = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}
