package users

import (
	"time"

	"Lattice/internal/core/authz"
)

// User represents a forum account. Credentials and sessions live outside the
// core; this record only carries what authorization and display need.
type User struct {
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`
	Username  string     `json:"username" db:"username"`
	Email     string     `json:"email" db:"email"`
	Role      authz.Role `json:"role" db:"role"`
	ID        int        `json:"id" db:"id"`
	IsBlocked bool       `json:"isBlocked" db:"is_blocked"`
	IsDeleted bool       `json:"isDeleted" db:"is_deleted"`
}

// Principal converts the stored record into the plain actor value the
// authorization policy evaluates
func (u *User) Principal() authz.Principal {
	return authz.Principal{
		ID:      u.ID,
		Role:    u.Role,
		Blocked: u.IsBlocked,
		Deleted: u.IsDeleted,
	}
}
