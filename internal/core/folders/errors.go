package folders

import "errors"

// ErrFolderNotFound indicates a path segment or folder ID resolved to nothing
var ErrFolderNotFound = errors.New("folder not found")

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrFolderNotFound)
}
