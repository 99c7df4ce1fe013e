package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/comments"
)

// CreateCommentHandler handles comment creation requests
type CreateCommentHandler struct {
	service comments.Service
}

// NewCreateCommentHandler creates a new comment creation handler
func NewCreateCommentHandler(service comments.Service) *CreateCommentHandler {
	return &CreateCommentHandler{service: service}
}

// HandleCreate handles POST /api/posts/{postID}/comments
func (h *CreateCommentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "postID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid post id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var req comments.CreateCommentRequest
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

	created, err := h.service.Create(r.Context(), req, postID, principal.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		logEncodeError(err)
	}
}
