package tags

import "strings"

const (
	// MinNameLength and MaxNameLength bound a tag name after normalization
	MinNameLength = 2
	MaxNameLength = 50
)

// Tag is a label in the forum's flat, case-insensitively unique namespace.
// Names are stored normalized; unlike posts and comments a tag has no
// soft-delete state, deletion removes the row.
type Tag struct {
	Name string `json:"name" db:"name"`
	ID   int    `json:"id" db:"id"`
}

// Normalize canonicalizes a tag name for storage and uniqueness comparison
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
