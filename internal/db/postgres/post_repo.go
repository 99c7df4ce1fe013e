package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Lattice/internal/core/pagination"
	"Lattice/internal/core/posts"
	"Lattice/internal/core/tags"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

const postColumns = `
	p.id, p.title, p.content, p.author_id, p.folder_id,
	p.is_deleted, p.created_at, p.updated_at, p.deleted_at`

func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (title, content, author_id, folder_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Content, post.AuthorID, post.FolderID,
		post.CreatedAt, post.UpdatedAt,
	).Scan(&post.ID)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	return nil
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id int) (*posts.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts p WHERE p.id = $1 AND p.is_deleted = FALSE`
	return r.scanOne(ctx, query, id)
}

// GetDeletedByID looks the post up among soft-deleted rows only;
// an active post is as absent as a missing one here
func (r *postgresPostRepo) GetDeletedByID(ctx context.Context, id int) (*posts.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts p WHERE p.id = $1 AND p.is_deleted = TRUE`
	return r.scanOne(ctx, query, id)
}

func (r *postgresPostRepo) scanOne(ctx context.Context, query string, id int) (*posts.Post, error) {
	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.FolderID,
		&post.IsDeleted, &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return &post, nil
}

func (r *postgresPostRepo) Update(ctx context.Context, post *posts.Post) error {
	query := `
		UPDATE posts
		SET title = $2, content = $3, is_deleted = $4,
		    updated_at = $5, deleted_at = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		post.ID, post.Title, post.Content, post.IsDeleted,
		post.UpdatedAt, post.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update post %d: %w", post.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

// ListInFolder builds the candidate sequence for a listing. Filters (folder
// scope, text search over title+content, tag membership) are applied in SQL
// before the service paginates; the sort expression comes from the fixed
// whitelist, never from raw request input.
func (r *postgresPostRepo) ListInFolder(ctx context.Context, folderID *int, search string, tagID int, sort pagination.SortField, dir pagination.Direction) ([]*posts.Post, error) {
	query := `
		SELECT` + postColumns + `
		FROM posts p
		WHERE p.is_deleted = FALSE
		  AND ($1::int IS NULL OR p.folder_id = $1)
		  AND ($2 = '' OR p.title ILIKE '%' || $2 || '%' OR p.content ILIKE '%' || $2 || '%')
		  AND ($3 = 0 OR EXISTS (
		      SELECT 1 FROM post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = $3))
		ORDER BY ` + orderClause(sort, dir)

	rows, err := r.db.QueryContext(ctx, query, folderID, search, tagID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postgresPostRepo) ListByAuthor(ctx context.Context, authorID int) ([]*posts.Post, error) {
	query := `
		SELECT` + postColumns + `
		FROM posts p
		WHERE p.author_id = $1 AND p.is_deleted = FALSE
		ORDER BY p.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author %d: %w", authorID, err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postgresPostRepo) TrendingByViews(ctx context.Context, limit, days int) ([]*posts.Post, error) {
	query := `
		SELECT` + postColumns + `
		FROM posts p
		JOIN post_views v ON v.post_id = p.id
		WHERE p.is_deleted = FALSE
		  AND v.viewed_on >= CURRENT_DATE - $2::int
		GROUP BY p.id
		ORDER BY COUNT(*) DESC, p.id
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit, days)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *postgresPostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE is_deleted = FALSE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

func (r *postgresPostRepo) SetTags(ctx context.Context, postID int, tagIDs []int) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to clear post %d tags: %w", postID, err)
	}
	for _, tagID := range tagIDs {
		if _, err := r.db.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			postID, tagID); err != nil {
			return fmt.Errorf("failed to tag post %d with %d: %w", postID, tagID, err)
		}
	}
	return nil
}

func (r *postgresPostRepo) ListTags(ctx context.Context, postID int) ([]*tags.Tag, error) {
	query := `
		SELECT t.id, t.name
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name
	`
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list post %d tags: %w", postID, err)
	}
	defer rows.Close()

	var result []*tags.Tag
	for rows.Next() {
		var tag tags.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		result = append(result, &tag)
	}
	return result, rows.Err()
}

// orderClause maps a whitelisted sort field to its SQL expression.
// The default arm mirrors the engine's lenient fallback.
func orderClause(sort pagination.SortField, dir pagination.Direction) string {
	var column string
	switch sort {
	case pagination.SortByID:
		column = "p.id"
	case pagination.SortByUpdatedAt:
		column = "p.updated_at"
	case pagination.SortByTitle:
		column = "LOWER(p.title)"
	case pagination.SortByCommentCount:
		column = "(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id AND c.is_deleted = FALSE)"
	default:
		column = "p.created_at"
	}

	if dir == pagination.Ascending {
		return column + " ASC, p.id ASC"
	}
	return column + " DESC, p.id DESC"
}

func scanPosts(rows *sql.Rows) ([]*posts.Post, error) {
	var result []*posts.Post
	for rows.Next() {
		var post posts.Post
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Content, &post.AuthorID, &post.FolderID,
			&post.IsDeleted, &post.CreatedAt, &post.UpdatedAt, &post.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &post)
	}
	return result, rows.Err()
}
