package folders

// RootSlug is the slug of the tree root; an empty browse path resolves to it
const RootSlug = "root"

// Folder is a node in the forum's folder tree. The parent reference is an
// identifier, not a pointer: the tree is walked through the repository.
type Folder struct {
	ParentID *int   `json:"parentId,omitempty" db:"parent_id"`
	Name     string `json:"name" db:"name"`
	Slug     string `json:"slug" db:"slug"`
	ID       int    `json:"id" db:"id"`
}

// IsRoot reports whether the folder is the top of the tree
func (f *Folder) IsRoot() bool {
	return f.ParentID == nil
}
