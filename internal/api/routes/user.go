package routes

import (
	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/handlers/user"
	"Lattice/internal/api/middleware"
	"Lattice/internal/core/users"
)

// RegisterUserRoutes registers the user administration endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.Service, auth *middleware.SessionAuth) {
	adminHandler := user.NewAdminHandler(service)
	listHandler := user.NewListHandler(service)

	r.Get("/api/users/{userID}", listHandler.HandleGet)

	r.With(auth.RequireAuth).Get("/api/users", listHandler.HandleList)
	r.With(auth.RequireAuth).Post("/api/users/{userID}/block", adminHandler.HandleBlock)
	r.With(auth.RequireAuth).Delete("/api/users/{userID}/block", adminHandler.HandleUnblock)
	r.With(auth.RequireAuth).Post("/api/users/{userID}/promote", adminHandler.HandlePromote)
}
