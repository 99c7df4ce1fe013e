package user

import (
	"encoding/json"
	"log"
	"net/http"

	"Lattice/internal/core/users"
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
	case err == users.ErrNotAuthorized:
		writeError(w, http.StatusForbidden, "NotAuthorized", err.Error())

	case users.IsConflict(err):
		writeError(w, http.StatusConflict, "Conflict", err.Error())

	case users.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "User not found")

	default:
		log.Printf("Unexpected error in user handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
