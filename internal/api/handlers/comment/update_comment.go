package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/comments"
)

// UpdateCommentHandler handles comment edit requests
type UpdateCommentHandler struct {
	service comments.Service
}

// NewUpdateCommentHandler creates a new comment update handler
func NewUpdateCommentHandler(service comments.Service) *UpdateCommentHandler {
	return &UpdateCommentHandler{service: service}
}

// HandleUpdate handles PUT /api/comments/{commentID}
// Owner only; moderators delete, they don't edit
func (h *UpdateCommentHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid comment id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.UpdateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "content is required")
		return
	}

	updated, err := h.service.Update(r.Context(), commentID, req, principal.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		logEncodeError(err)
	}
}
