package folder

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"Lattice/internal/core/folders"
	"Lattice/internal/core/pagination"
	"Lattice/internal/core/posts"
)

// FolderListSize is the page size for sibling and child folder listings
const FolderListSize = 5

// BrowseHandler resolves a slash-separated slug path to a folder and
// renders its children, siblings and post page
type BrowseHandler struct {
	folders folders.Service
	posts   posts.Service
}

// NewBrowseHandler creates a new folder browse handler
func NewBrowseHandler(folderService folders.Service, postService posts.Service) *BrowseHandler {
	return &BrowseHandler{folders: folderService, posts: postService}
}

type browseResponse struct {
	Folder   *folders.Folder                  `json:"folder"`
	Children pagination.Page[*folders.Folder] `json:"children"`
	Siblings pagination.Page[*folders.Folder] `json:"siblings"`
	Posts    *posts.PostPage                  `json:"posts"`
}

// HandleBrowse handles GET /api/folders/*
// The wildcard is the root-to-leaf slug path; an empty path is the root.
// Query parameters: page (posts), childPage, siblingPage, plus the post
// listing filters (search, orderBy, direction, tagId).
func (h *BrowseHandler) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(chi.URLParam(r, "*"), "/")

	var slugs []string
	if path != "" {
		slugs = strings.Split(path, "/")
	}

	current, err := h.folders.ResolvePath(r.Context(), slugs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	children, err := h.folders.Children(r.Context(), current)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	siblings, err := h.folders.Siblings(r.Context(), current)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	childPage, _ := strconv.Atoi(q.Get("childPage"))
	siblingPage, _ := strconv.Atoi(q.Get("siblingPage"))
	tagID, _ := strconv.Atoi(q.Get("tagId"))

	postPage, err := h.posts.ListInFolder(r.Context(), current, page,
		q.Get("search"), q.Get("orderBy"), q.Get("direction"), tagID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := browseResponse{
		Folder:   current,
		Children: pagination.Paginate(children, childPage, FolderListSize),
		Siblings: pagination.Paginate(siblings, siblingPage, FolderListSize),
		Posts:    postPage,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logEncodeError(err)
	}
}
