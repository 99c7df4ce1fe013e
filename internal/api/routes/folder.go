package routes

import (
	"github.com/go-chi/chi/v5"

	"Lattice/internal/api/handlers/folder"
	"Lattice/internal/core/folders"
	"Lattice/internal/core/posts"
)

// RegisterFolderRoutes registers the folder browse endpoint on the router.
// The wildcard carries the slug path; /api/folders/ alone is the root.
func RegisterFolderRoutes(r chi.Router, folderService folders.Service, postService posts.Service) {
	browseHandler := folder.NewBrowseHandler(folderService, postService)

	r.Get("/api/folders", browseHandler.HandleBrowse)
	r.Get("/api/folders/*", browseHandler.HandleBrowse)
}
