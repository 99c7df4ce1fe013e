package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/authz"
	"Lattice/internal/core/posts"
)

// LikeHandler handles post like toggling and like reads
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

type likesResponse struct {
	Likes  int   `json:"likes"`
	Likers []int `json:"likers"`
}

// HandleLike handles POST /api/posts/{postID}/likes
// Liking twice is a conflict, not a no-op
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	postID, principal, ok := likeParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Like(r.Context(), postID, principal.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUnlike handles DELETE /api/posts/{postID}/likes
func (h *LikeHandler) HandleUnlike(w http.ResponseWriter, r *http.Request) {
	postID, principal, ok := likeParams(w, r)
	if !ok {
		return
	}

	if err := h.service.Unlike(r.Context(), postID, principal.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleGetLikes handles GET /api/posts/{postID}/likes
func (h *LikeHandler) HandleGetLikes(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	count, err := h.service.GetLikes(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	likers, err := h.service.GetLikers(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(likesResponse{Likes: count, Likers: likers}); err != nil {
		logEncodeError(err)
	}
}

func likeParams(w http.ResponseWriter, r *http.Request) (int, authz.Principal, bool) {
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return 0, authz.Principal{}, false
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return 0, authz.Principal{}, false
	}

	return postID, principal, true
}
