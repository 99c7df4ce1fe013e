package post

import (
	"encoding/json"
	"log"
	"net/http"

	"Lattice/internal/core/folders"
	"Lattice/internal/core/likes"
	"Lattice/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// logEncodeError logs a response-encoding failure; headers are already
// sent at that point so there is nothing to return to the client
func logEncodeError(err error) {
	log.Printf("Failed to encode response: %v", err)
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrUserBlocked:
		writeError(w, http.StatusForbidden, "Blocked",
			"Blocked users cannot create content")

	case err == folders.ErrFolderNotFound:
		writeError(w, http.StatusNotFound, "FolderNotFound", "Folder not found")

	case err == likes.ErrAlreadyLiked:
		writeError(w, http.StatusConflict, "AlreadyLiked",
			"You have already liked this post")

	case err == likes.ErrNotLiked:
		writeError(w, http.StatusNotFound, "NotLiked",
			"You have not liked this post")

	case posts.IsAuthorization(err):
		writeError(w, http.StatusForbidden, "NotAuthorized", err.Error())

	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Post not found")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
