package tags

import "context"

// Repository defines the data access interface for tags
type Repository interface {
	// Create inserts a tag with its already-normalized name.
	// Maps the store's unique violation on the name to ErrTagExists.
	Create(ctx context.Context, tag *Tag) error

	// GetByID retrieves a tag; ErrTagNotFound when absent
	GetByID(ctx context.Context, id int) (*Tag, error)

	// GetByName retrieves a tag by normalized name; ErrTagNotFound when absent
	GetByName(ctx context.Context, name string) (*Tag, error)

	// List retrieves all tags, name-sorted
	List(ctx context.Context) ([]*Tag, error)

	// Update persists a rename; maps unique violations to ErrTagExists
	Update(ctx context.Context, tag *Tag) error

	// Delete removes the tag and its post associations.
	// ErrTagNotFound when the tag doesn't exist.
	Delete(ctx context.Context, id int) error
}

// Service defines the business logic interface for the tag catalog.
// All mutations are admin-only.
type Service interface {
	// Create adds a tag; the name is normalized before the uniqueness check
	Create(ctx context.Context, name string, actorID int) (*Tag, error)

	// Update renames a tag, excluding the tag itself from the duplicate scan
	Update(ctx context.Context, tagID int, newName string, actorID int) (*Tag, error)

	// Delete hard-deletes a tag
	Delete(ctx context.Context, tagID, actorID int) error

	// GetByID retrieves a tag
	GetByID(ctx context.Context, id int) (*Tag, error)

	// List retrieves all tags
	List(ctx context.Context) ([]*Tag, error)
}
