package comment

import (
	"encoding/json"
	"log"
	"net/http"

	"Lattice/internal/core/comments"
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

func logEncodeError(err error) {
	log.Printf("Failed to encode response: %v", err)
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == comments.ErrUserBlocked:
		writeError(w, http.StatusForbidden, "Blocked",
			"Blocked users cannot create content")

	// Commenting on an absent post surfaces the post's failure
	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case err == likes.ErrAlreadyLiked:
		writeError(w, http.StatusConflict, "AlreadyLiked",
			"You have already liked this comment")

	case err == likes.ErrNotLiked:
		writeError(w, http.StatusNotFound, "NotLiked",
			"You have not liked this comment")

	case comments.IsAuthorization(err):
		writeError(w, http.StatusForbidden, "NotAuthorized", err.Error())

	case comments.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Comment not found")

	default:
		log.Printf("Unexpected error in comment handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
