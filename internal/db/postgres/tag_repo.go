package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Lattice/internal/core/tags"
)

type postgresTagRepo struct {
	db *sql.DB
}

// NewTagRepository creates a new PostgreSQL tag repository
func NewTagRepository(db *sql.DB) tags.Repository {
	return &postgresTagRepo{db: db}
}

func (r *postgresTagRepo) Create(ctx context.Context, tag *tags.Tag) error {
	query := `INSERT INTO tags (name) VALUES ($1) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, tag.Name).Scan(&tag.ID)
	if err != nil {
		if isUniqueViolation(err, "tags_name_lower_idx") {
			return tags.ErrTagExists
		}
		return fmt.Errorf("failed to insert tag: %w", err)
	}
	return nil
}

func (r *postgresTagRepo) GetByID(ctx context.Context, id int) (*tags.Tag, error) {
	var tag tags.Tag
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM tags WHERE id = $1`, id).Scan(&tag.ID, &tag.Name)
	if err == sql.ErrNoRows {
		return nil, tags.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %d: %w", id, err)
	}
	return &tag, nil
}

// GetByName matches case-insensitively; names are stored normalized
// but the lookup does not rely on that.
func (r *postgresTagRepo) GetByName(ctx context.Context, name string) (*tags.Tag, error) {
	var tag tags.Tag
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM tags WHERE LOWER(name) = LOWER($1)`, name).Scan(&tag.ID, &tag.Name)
	if err == sql.ErrNoRows {
		return nil, tags.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag %q: %w", name, err)
	}
	return &tag, nil
}

func (r *postgresTagRepo) List(ctx context.Context) ([]*tags.Tag, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM tags ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
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

func (r *postgresTagRepo) Update(ctx context.Context, tag *tags.Tag) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tags SET name = $2 WHERE id = $1`, tag.ID, tag.Name)
	if err != nil {
		if isUniqueViolation(err, "tags_name_lower_idx") {
			return tags.ErrTagExists
		}
		return fmt.Errorf("failed to update tag %d: %w", tag.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return tags.ErrTagNotFound
	}
	return nil
}

func (r *postgresTagRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag %d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return tags.ErrTagNotFound
	}
	return nil
}
