package user

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/users"
)

// AdminHandler handles the moderation surface: block, unblock, promote
type AdminHandler struct {
	service users.Service
}

// NewAdminHandler creates a new user administration handler
func NewAdminHandler(service users.Service) *AdminHandler {
	return &AdminHandler{service: service}
}

// HandleBlock handles POST /api/users/{userID}/block
// Moderators and admins only; blocking twice is a conflict
func (h *AdminHandler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Block)
}

// HandleUnblock handles DELETE /api/users/{userID}/block
func (h *AdminHandler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Unblock)
}

// HandlePromote handles POST /api/users/{userID}/promote
// Admin only; raises a regular user to moderator
func (h *AdminHandler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Promote)
}

type transitionFunc = func(ctx context.Context, userID, actorID int) (*users.User, error)

func (h *AdminHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid user id")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	updated, err := fn(r.Context(), userID, principal.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		logEncodeError(err)
	}
}
