package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Lattice/internal/core/likes"
)

// postgresLikeStore backs one likes.Registry. The same shape serves both
// post and comment likes; only the table and content column differ.
type postgresLikeStore struct {
	db            *sql.DB
	table         string
	contentColumn string
	uniqueIndex   string
}

// NewPostLikeStore creates a like store over the post_likes table
func NewPostLikeStore(db *sql.DB) likes.Store {
	return &postgresLikeStore{
		db:            db,
		table:         "post_likes",
		contentColumn: "post_id",
		uniqueIndex:   "post_likes_pkey",
	}
}

// NewCommentLikeStore creates a like store over the comment_likes table
func NewCommentLikeStore(db *sql.DB) likes.Store {
	return &postgresLikeStore{
		db:            db,
		table:         "comment_likes",
		contentColumn: "comment_id",
		uniqueIndex:   "comment_likes_pkey",
	}
}

func (s *postgresLikeStore) Add(ctx context.Context, contentID, userID int) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s, user_id) VALUES ($1, $2)`,
		s.table, s.contentColumn)
	if _, err := s.db.ExecContext(ctx, query, contentID, userID); err != nil {
		// Two concurrent likes can both pass the registry's existence
		// check; the primary key settles it.
		if isUniqueViolation(err, s.uniqueIndex) {
			return likes.ErrAlreadyLiked
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *postgresLikeStore) Remove(ctx context.Context, contentID, userID int) error {
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE %s = $1 AND user_id = $2`,
		s.table, s.contentColumn)
	result, err := s.db.ExecContext(ctx, query, contentID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return likes.ErrNotLiked
	}
	return nil
}

func (s *postgresLikeStore) Exists(ctx context.Context, contentID, userID int) (bool, error) {
	query := fmt.Sprintf(
		`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND user_id = $2)`,
		s.table, s.contentColumn)
	var exists bool
	if err := s.db.QueryRowContext(ctx, query, contentID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

func (s *postgresLikeStore) Count(ctx context.Context, contentID int) (int, error) {
	query := fmt.Sprintf(
		`SELECT COUNT(*) FROM %s WHERE %s = $1`,
		s.table, s.contentColumn)
	var count int
	if err := s.db.QueryRowContext(ctx, query, contentID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

func (s *postgresLikeStore) LikerIDs(ctx context.Context, contentID int) ([]int, error) {
	query := fmt.Sprintf(
		`SELECT user_id FROM %s WHERE %s = $1 ORDER BY user_id`,
		s.table, s.contentColumn)
	rows, err := s.db.QueryContext(ctx, query, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list likers: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan liker: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
