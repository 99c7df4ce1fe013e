package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Lattice/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

const userColumns = `
	id, username, email, role, is_blocked, is_deleted,
	created_at, updated_at, deleted_at`

func (r *postgresUserRepo) GetByID(ctx context.Context, id int) (*users.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	var user users.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Username, &user.Email, &user.Role,
		&user.IsBlocked, &user.IsDeleted,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err == sql.ErrNoRows {
		return nil, users.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

func (r *postgresUserRepo) ExistsByID(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user %d: %w", id, err)
	}
	return exists, nil
}

func (r *postgresUserRepo) List(ctx context.Context) ([]*users.User, error) {
	query := `SELECT` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var result []*users.User
	for rows.Next() {
		var user users.User
		if err := rows.Scan(
			&user.ID, &user.Username, &user.Email, &user.Role,
			&user.IsBlocked, &user.IsDeleted,
			&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		result = append(result, &user)
	}
	return result, rows.Err()
}

func (r *postgresUserRepo) Update(ctx context.Context, user *users.User) error {
	query := `
		UPDATE users
		SET role = $2, is_blocked = $3, is_deleted = $4,
		    updated_at = $5, deleted_at = $6
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		user.ID, user.Role, user.IsBlocked, user.IsDeleted,
		user.UpdatedAt, user.DeletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return users.ErrUserNotFound
	}
	return nil
}
