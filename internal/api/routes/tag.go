package routes

import (
	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/handlers/tag"
	"Lattice/internal/api/middleware"
	"Lattice/internal/core/tags"
)

// RegisterTagRoutes registers the tag catalog endpoints on the router.
// Reads are public; mutations are admin-only (enforced in the service).
func RegisterTagRoutes(r chi.Router, service tags.Service, auth *middleware.SessionAuth) {
	manageHandler := tag.NewManageHandler(service)
	listHandler := tag.NewListHandler(service)

	r.Get("/api/tags", listHandler.HandleList)
	r.Get("/api/tags/{tagID}", listHandler.HandleGet)

	r.With(auth.RequireAuth).Post("/api/tags", manageHandler.HandleCreate)
	r.With(auth.RequireAuth).Put("/api/tags/{tagID}", manageHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/api/tags/{tagID}", manageHandler.HandleDelete)
}
