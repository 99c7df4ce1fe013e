package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Lattice/internal/core/folders"
)

type postgresFolderRepo struct {
	db *sql.DB
}

// NewFolderRepository creates a new PostgreSQL folder repository
func NewFolderRepository(db *sql.DB) folders.Repository {
	return &postgresFolderRepo{db: db}
}

func (r *postgresFolderRepo) GetByID(ctx context.Context, id int) (*folders.Folder, error) {
	var folder folders.Folder
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, parent_id FROM folders WHERE id = $1`,
		id).Scan(&folder.ID, &folder.Name, &folder.Slug, &folder.ParentID)
	if err == sql.ErrNoRows {
		return nil, folders.ErrFolderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get folder %d: %w", id, err)
	}
	return &folder, nil
}

// GetBySlug resolves one step of a path: slug within parent. The root
// folder is the row with a NULL parent.
func (r *postgresFolderRepo) GetBySlug(ctx context.Context, parentID *int, slug string) (*folders.Folder, error) {
	var folder folders.Folder
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, parent_id
		 FROM folders
		 WHERE slug = $2 AND ($1::int IS NULL AND parent_id IS NULL OR parent_id = $1)`,
		parentID, slug).Scan(&folder.ID, &folder.Name, &folder.Slug, &folder.ParentID)
	if err == sql.ErrNoRows {
		return nil, folders.ErrFolderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get folder %q: %w", slug, err)
	}
	return &folder, nil
}

func (r *postgresFolderRepo) Children(ctx context.Context, parentID int) ([]*folders.Folder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, slug, parent_id FROM folders WHERE parent_id = $1 ORDER BY LOWER(name)`,
		parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children of folder %d: %w", parentID, err)
	}
	defer rows.Close()

	var result []*folders.Folder
	for rows.Next() {
		var folder folders.Folder
		if err := rows.Scan(&folder.ID, &folder.Name, &folder.Slug, &folder.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan folder: %w", err)
		}
		result = append(result, &folder)
	}
	return result, rows.Err()
}
