package routes

import (
	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/handlers/comment"
	"Lattice/internal/api/middleware"
	"Lattice/internal/core/comments"
)

// RegisterCommentRoutes registers the comment lifecycle endpoints on the router
func RegisterCommentRoutes(r chi.Router, service comments.Service, auth *middleware.SessionAuth) {
	createHandler := comment.NewCreateCommentHandler(service)
	getHandler := comment.NewGetCommentsHandler(service)
	updateHandler := comment.NewUpdateCommentHandler(service)
	deleteHandler := comment.NewDeleteCommentHandler(service)
	likeHandler := comment.NewLikeCommentHandler(service)

	r.Get("/api/posts/{postID}/comments", getHandler.HandleGetComments)
	r.Get("/api/comments/{commentID}/likes", likeHandler.HandleGetLikes)

	r.With(auth.RequireAuth).Post("/api/posts/{postID}/comments", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Put("/api/comments/{commentID}", updateHandler.HandleUpdate)
	r.With(auth.RequireAuth).Delete("/api/comments/{commentID}", deleteHandler.HandleDelete)
	r.With(auth.RequireAuth).Post("/api/comments/{commentID}/likes", likeHandler.HandleLike)
	r.With(auth.RequireAuth).Delete("/api/comments/{commentID}/likes", likeHandler.HandleUnlike)
}
