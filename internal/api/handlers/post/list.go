package post

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/posts"
)

// ListHandler handles post listings: global pages, per-author lists
// and the trending selection
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts
// Query parameters: page, search, orderBy, direction, tagId.
// Unknown sort fields and directions fall back to newest-first rather
// than failing the request.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	tagID, _ := strconv.Atoi(q.Get("tagId"))

	result, err := h.service.ListInFolder(r.Context(), nil, page,
		q.Get("search"), q.Get("orderBy"), q.Get("direction"), tagID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}

// HandleListByAuthor handles GET /api/users/{userID}/posts
// Users see their own posts; moderators see anyone's
func (h *ListHandler) HandleListByAuthor(w http.ResponseWriter, r *http.Request) {
	authorID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	result, err := h.service.ListByAuthor(r.Context(), authorID, principal.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}

// HandleTrending handles GET /api/posts/trending
func (h *ListHandler) HandleTrending(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Trending(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logEncodeError(err)
	}
}
