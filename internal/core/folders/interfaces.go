package folders

import "context"

// Repository defines the data access interface for the folder tree
type Repository interface {
	// GetByID retrieves a folder; ErrFolderNotFound when absent
	GetByID(ctx context.Context, id int) (*Folder, error)

	// GetBySlug retrieves the child of parentID with the given slug.
	// parentID nil addresses the root level. ErrFolderNotFound when absent.
	GetBySlug(ctx context.Context, parentID *int, slug string) (*Folder, error)

	// Children retrieves the folders whose parent is parentID,
	// sorted case-insensitively by name
	Children(ctx context.Context, parentID int) ([]*Folder, error)
}

// Service exposes the read-only folder hierarchy the post lifecycle and the
// browse surface consume
type Service interface {
	// ResolvePath walks a root-to-leaf slug path to its folder.
	// An empty path resolves to the root folder.
	ResolvePath(ctx context.Context, slugs []string) (*Folder, error)

	// GetByID retrieves a folder for post creation scoping
	GetByID(ctx context.Context, id int) (*Folder, error)

	// Children lists a folder's child folders, name-sorted
	Children(ctx context.Context, folder *Folder) ([]*Folder, error)

	// Siblings lists the other folders sharing this folder's parent.
	// The root has no siblings.
	Siblings(ctx context.Context, folder *Folder) ([]*Folder, error)
}
