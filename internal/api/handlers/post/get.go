package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/posts"
)

// GetHandler handles single-post reads
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

type postDetailResponse struct {
	Post  *posts.Post      `json:"post"`
	Stats *posts.PostStats `json:"stats"`
}

// HandleGet handles GET /api/posts/{postID}
// Authenticated owners and admins can read their soft-deleted posts;
// everyone else sees active posts only. An authenticated read also
// registers a view for the day.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	principal, authed := middleware.GetPrincipal(r)

	var result *posts.Post
	if authed {
		result, err = h.service.GetByIDIncludeDeleted(r.Context(), postID, principal.ID)
	} else {
		result, err = h.service.GetByID(r.Context(), postID)
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if authed && !result.IsDeleted {
		// A failed view registration shouldn't break the read
		if err := h.service.RegisterView(r.Context(), postID, principal.ID); err != nil {
			log.Printf("Failed to register view for post %d: %v", postID, err)
		}
	}

	stats, err := h.service.BuildStats(r.Context(), result)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(postDetailResponse{Post: result, Stats: stats}); err != nil {
		logEncodeError(err)
	}
}
