package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/core/comments"
)

// GetCommentsHandler handles comment listing for a post
type GetCommentsHandler struct {
	service comments.Service
}

// NewGetCommentsHandler creates a new comment listing handler
func NewGetCommentsHandler(service comments.Service) *GetCommentsHandler {
	return &GetCommentsHandler{service: service}
}

// HandleGetComments handles GET /api/posts/{postID}/comments
// Comments come back oldest first, the thread reading order
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	result, err := h.service.ListByPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}
