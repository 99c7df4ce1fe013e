package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/comments"
)

// LikeCommentHandler handles comment like toggling and like reads
type LikeCommentHandler struct {
	service comments.Service
}

// NewLikeCommentHandler creates a new comment like handler
func NewLikeCommentHandler(service comments.Service) *LikeCommentHandler {
	return &LikeCommentHandler{service: service}
}

// HandleLike handles POST /api/comments/{commentID}/likes
func (h *LikeCommentHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Like(r.Context(), commentID, principal.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnlike handles DELETE /api/comments/{commentID}/likes
func (h *LikeCommentHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Unlike(r.Context(), commentID, principal.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetLikes handles GET /api/comments/{commentID}/likes
func (h *LikeCommentHandler) HandleGetLikes(w http.ResponseWriter, r *http.Request) {
	commentID, err := strconv.Atoi(chi.URLParam(r, "commentID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid comment id")
		return
	}

	count, err := h.service.GetLikes(r.Context(), commentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int{"likes": count}); err != nil {
		logEncodeError(err)
	}
}
