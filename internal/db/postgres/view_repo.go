package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"Lattice/internal/core/views"
)

type postgresViewRepo struct {
	db *sql.DB
}

// NewViewRepository creates a new PostgreSQL view repository
func NewViewRepository(db *sql.DB) views.Repository {
	return &postgresViewRepo{db: db}
}

func (r *postgresViewRepo) ExistsForDate(ctx context.Context, postID, userID int, day time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM post_views
			WHERE post_id = $1 AND user_id = $2 AND viewed_on = $3::date)`,
		postID, userID, day).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check view: %w", err)
	}
	return exists, nil
}

// Register records today's view. ON CONFLICT absorbs the race where two
// requests from the same user land on the same day.
func (r *postgresViewRepo) Register(ctx context.Context, postID, userID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO post_views (post_id, user_id, viewed_on)
		 VALUES ($1, $2, CURRENT_DATE)
		 ON CONFLICT (post_id, user_id, viewed_on) DO NOTHING`,
		postID, userID)
	if err != nil {
		return fmt.Errorf("failed to register view: %w", err)
	}
	return nil
}

func (r *postgresViewRepo) TotalViews(ctx context.Context, postID int) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM post_views WHERE post_id = $1`,
		postID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count views for post %d: %w", postID, err)
	}
	return count, nil
}
