package tag

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/middleware"
	"Lattice/internal/core/tags"
)

// ManageHandler handles the admin-only tag catalog mutations
type ManageHandler struct {
	service tags.Service
}

// NewManageHandler creates a new tag management handler
func NewManageHandler(service tags.Service) *ManageHandler {
	return &ManageHandler{service: service}
}

type tagRequest struct {
	Name string `json:"name"`
}

// HandleCreate handles POST /api/tags
func (h *ManageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	created, err := h.service.Create(r.Context(), req.Name, principal.ID)
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

// HandleUpdate handles PUT /api/tags/{tagID}
func (h *ManageHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	tagID, err := strconv.Atoi(chi.URLParam(r, "tagID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid tag id")
		return
	}

	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	updated, err := h.service.Update(r.Context(), tagID, req.Name, principal.ID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(updated); err != nil {
		logEncodeError(err)
	}
}

// HandleDelete handles DELETE /api/tags/{tagID}
func (h *ManageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	tagID, err := strconv.Atoi(chi.URLParam(r, "tagID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid tag id")
		return
	}

	principal, ok := middleware.GetPrincipal(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), tagID, principal.ID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
