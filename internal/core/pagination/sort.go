package pagination

import "strings"

// SortField is a logical post-listing sort key from a fixed whitelist
type SortField string

const (
	SortByID           SortField = "id"
	SortByCreatedAt    SortField = "created_at"
	SortByUpdatedAt    SortField = "updated_at"
	SortByCommentCount SortField = "comments"
	SortByTitle        SortField = "title"
)

// Direction is an ascending or descending sort order
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Defaults applied when the requested sort input is unrecognized.
// Invalid sort input degrades gracefully instead of failing; only
// authorization and lookup failures are strict.
const (
	DefaultSortField = SortByCreatedAt
	DefaultDirection = Descending
)

// ParseSortField maps a request parameter to a whitelisted sort field,
// falling back to created_at for anything it does not recognize.
// "date" is accepted as an alias because the web views send it.
func ParseSortField(raw string) SortField {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "id":
		return SortByID
	case "date", "created", "created_at", "createdat":
		return SortByCreatedAt
	case "updated", "updated_at", "updatedat":
		return SortByUpdatedAt
	case "comments", "comments_count", "commentscount":
		return SortByCommentCount
	case "title":
		return SortByTitle
	default:
		return DefaultSortField
	}
}

// ParseDirection maps a request parameter to a sort direction,
// falling back to descending for anything unrecognized.
func ParseDirection(raw string) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "asc":
		return Ascending
	case "desc":
		return Descending
	default:
		return DefaultDirection
	}
}
