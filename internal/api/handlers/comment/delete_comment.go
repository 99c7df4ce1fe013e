package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/comments"
)

// DeleteCommentHandler handles comment soft-deletion
type DeleteCommentHandler struct {
	service comments.Service
}

// NewDeleteCommentHandler creates a new comment deletion handler
func NewDeleteCommentHandler(service comments.Service) *DeleteCommentHandler {
	return &DeleteCommentHandler{service: service}
}

// HandleDelete handles DELETE /api/comments/{commentID}
// Authors delete their own comments; moderators and admins delete any
func (h *DeleteCommentHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid comment id")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), commentID, principal.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
