package folder

import (
	"encoding/json"
	"log"
	"net/http"

	"Lattice/internal/core/folders"
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
	case folders.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", "Folder not found")

	default:
		log.Printf("Unexpected error in folder handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
