package routes

import (
	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/handlers/post"
	"Lattice/internal/api/middleware"
	"Lattice/internal/core/posts"
)

// RegisterPostRoutes registers the post lifecycle endpoints on the router
func RegisterPostRoutes(r chi.Router, service posts.Service, auth *middleware.SessionAuth) {
	createHandler := post.NewCreateHandler(service)
	getHandler := post.NewGetHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	listHandler := post.NewListHandler(service)
	likeHandler := post.NewLikeHandler(service)

	// Public reads; an authenticated session widens visibility to the
	// requester's own deleted posts and registers views
	r.With(auth.OptionalAuth).Get("/api/posts", listHandler.HandleList)
	r.With(auth.OptionalAuth).Get("/api/posts/trending", listHandler.HandleTrending)
	r.With(auth.OptionalAuth).Get("/api/posts/{postID}", getHandler.HandleGet)
	r.Get("/api/posts/{postID}/likes", likeHandler.HandleGetLikes)

	// Mutations require a session
	r.With(auth.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Put("/api/posts/{postID}", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/api/posts/{postID}", deleteHandler.HandleDelete)
	r.With(auth.RequireAuth).Post("/api/posts/{postID}/restore", deleteHandler.HandleRestore)
	r.With(auth.RequireAuth).Post("/api/posts/{postID}/likes", likeHandler.HandleLike)
	r.With(auth.RequireAuth).Delete("/api/posts/{postID}/likes", likeHandler.HandleUnlike)

	// A user's own post list; moderators can read anyone's
	r.With(auth.RequireAuth).Get("/api/users/{userID}/posts", listHandler.HandleListByAuthor)
}
