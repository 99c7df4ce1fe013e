// Package pagination implements the slicing, sorting and clamping rules used
// by every listing in the forum: posts in a folder, sibling/child folders and
// comment lists all go through the same window math.
package pagination

// Page is the sliced window of a listing plus its metadata.
// FromItem/ToItem are 1-based and inclusive; both are 0 for an empty result.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	FromItem   int `json:"fromItem"`
	ToItem     int `json:"toItem"`
}

// Paginate slices an already filtered and sorted sequence into the requested
// window. The requested page is 1-based; zero or negative pages clamp to the
// first page and pages beyond the last clamp to the last page, so the caller
// always gets a valid window rather than an error.
func Paginate[T any](items []T, requestedPage, pageSize int) Page[T] {
	total := len(items)

	totalPages := 1
	if total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	page := Clamp(requestedPage, totalPages)

	from := (page - 1) * pageSize
	to := from + pageSize
	if to > total {
		to = total
	}

	result := Page[T]{
		Items:      items[from:to],
		Page:       page,
		Size:       pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
	if to > from {
		result.FromItem = from + 1
		result.ToItem = to
	}
	return result
}

// Clamp bounds a 1-based requested page into [1, totalPages]
func Clamp(requestedPage, totalPages int) int {
	if requestedPage < 1 {
		return 1
	}
	if requestedPage > totalPages {
		return totalPages
	}
	return requestedPage
}
