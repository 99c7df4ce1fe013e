package tag

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/core/tags"
)

// ListHandler handles public tag reads
type ListHandler struct {
	service tags.Service
}

// NewListHandler creates a new tag listing handler
func NewListHandler(service tags.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/tags
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

// HandleGet handles GET /api/tags/{tagID}
func (h *ListHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tagID, err := strconv.Atoi(chi.URLParam(r, "tagID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid tag id")
		return
	}

	result, err := h.service.GetByID(r.Context(), tagID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}
