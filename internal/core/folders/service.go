package folders

import "context"

type folderService struct {
	repo Repository
}

// NewFolderService creates a new folder hierarchy service
func NewFolderService(repo Repository) Service {
	return &folderService{repo: repo}
}

// ResolvePath walks the slug path root-to-leaf. Every segment is resolved
// against its parent, so /root/movies/oscars only matches the oscars folder
// nested exactly there. Any missing segment fails the whole path.
func (s *folderService) ResolvePath(ctx context.Context, slugs []string) (*Folder, error) {
	if len(slugs) == 0 {
		slugs = []string{RootSlug}
	}

	var current *Folder
	for _, slug := range slugs {
		var parentID *int
		if current != nil {
			parentID = &current.ID
		}
		next, err := s.repo.GetBySlug(ctx, parentID, slug)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func (s *folderService) GetByID(ctx context.Context, id int) (*Folder, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *folderService) Children(ctx context.Context, folder *Folder) ([]*Folder, error) {
	return s.repo.Children(ctx, folder.ID)
}

// Siblings lists the folders sharing this folder's parent, excluding the
// folder itself. The root folder has no parent and therefore no siblings.
func (s *folderService) Siblings(ctx context.Context, folder *Folder) ([]*Folder, error) {
	if folder.ParentID == nil {
		return nil, nil
	}

	all, err := s.repo.Children(ctx, *folder.ParentID)
	if err != nil {
		return nil, err
	}

	siblings := make([]*Folder, 0, len(all))
	for _, f := range all {
		if f.ID != folder.ID {
			siblings = append(siblings, f)
		}
	}
	return siblings, nil
}
