package users

import "context"

// Repository defines the data access interface for users.
// Doubles as the identity lookup every authorization check goes through.
type Repository interface {
	// GetByID retrieves a user by ID
	// Returns ErrUserNotFound if no user exists with that ID
	GetByID(ctx context.Context, id int) (*User, error)

	// ExistsByID checks whether a user exists without loading it
	ExistsByID(ctx context.Context, id int) (bool, error)

	// List retrieves all users, newest first
	List(ctx context.Context) ([]*User, error)

	// Update persists mutable fields (role, blocked/deleted flags)
	Update(ctx context.Context, user *User) error
}

// Service defines the business logic interface for user administration.
// Registration, credentials and sessions are owned by the transport layer.
type Service interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int) (*User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*User, error)

	// Block marks a user as blocked; moderator-or-above only.
	// Returns ErrAlreadyBlocked when the user is already blocked.
	Block(ctx context.Context, userID, actorID int) (*User, error)

	// Unblock clears the blocked flag; moderator-or-above only.
	// Returns ErrNotBlocked when the user is not blocked.
	Unblock(ctx context.Context, userID, actorID int) (*User, error)

	// Promote raises a regular user to moderator; admin only
	Promote(ctx context.Context, userID, actorID int) (*User, error)
}
