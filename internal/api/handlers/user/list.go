package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/core/users"
)

// ListHandler handles user reads
type ListHandler struct {
	service users.Service
}

// NewListHandler creates a new user listing handler
func NewListHandler(service users.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/users
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}

// HandleGet handles GET /api/users/{userID}
func (h *ListHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	result, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}
