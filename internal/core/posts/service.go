package posts

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Lattice/internal/core/authz"
	"Lattice/internal/core/folders"
	"Lattice/internal/core/likes"
	"Lattice/internal/core/pagination"
	"Lattice/internal/core/users"
	"Lattice/internal/core/views"
)

type postService struct {
	repo       Repository
	userRepo   users.Repository
	folderRepo folders.Repository
	likes      *likes.Registry
	tracker    *views.Tracker
	comments   CommentCounter
	logger     *slog.Logger
}

// NewPostService creates a new post lifecycle service.
// comments may be nil in minimal setups; BuildStats then reports zero comments.
func NewPostService(
	repo Repository,
	userRepo users.Repository,
	folderRepo folders.Repository,
	likeRegistry *likes.Registry,
	tracker *views.Tracker,
	comments CommentCounter,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:       repo,
		userRepo:   userRepo,
		folderRepo: folderRepo,
		likes:      likeRegistry,
		tracker:    tracker,
		comments:   comments,
		logger:     logger,
	}
}

func (s *postService) Create(ctx context.Context, req CreatePostRequest, authorID int) (*Post, error) {
	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author.IsBlocked {
		return nil, ErrUserBlocked
	}

	folder, err := s.folderRepo.GetByID(ctx, req.FolderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	post := &Post{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  author.ID,
		FolderID:  folder.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	if len(req.TagIDs) > 0 {
		if err := s.repo.SetTags(ctx, post.ID, req.TagIDs); err != nil {
			return nil, fmt.Errorf("failed to tag post %d: %w", post.ID, err)
		}
	}

	s.logger.Info("post created", "postID", post.ID, "authorID", authorID, "folderID", folder.ID)
	return post, nil
}

func (s *postService) GetByID(ctx context.Context, id int) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// GetByIDIncludeDeleted looks the post up ignoring soft-delete state. When
// the visible lookup misses, the deleted row is fetched and revealed only to
// its owner or an admin; everyone else gets the original not-found error so
// deleted posts stay indistinguishable from absent ones.
func (s *postService) GetByIDIncludeDeleted(ctx context.Context, id, requesterID int) (*Post, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return post, nil
	}
	if !IsNotFound(err) {
		return nil, err
	}
	notFound := err

	deleted, delErr := s.repo.GetDeletedByID(ctx, id)
	if delErr != nil {
		return nil, notFound
	}
	if !authz.CanViewDeleted(requester.Principal(), deleted.AuthorID) {
		return nil, notFound
	}
	return deleted, nil
}

func (s *postService) Update(ctx context.Context, id int, req UpdatePostRequest, requesterID int) (*Post, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanEdit(requester.Principal(), post.AuthorID) {
		return nil, ErrEditNotAllowed
	}

	post.Title = req.Title
	post.Content = req.Content
	post.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id, requesterID int) error {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanDeleteContent(requester.Principal(), post.AuthorID) {
		return ErrDeleteNotAllowed
	}

	now := time.Now()
	post.IsDeleted = true
	post.DeletedAt = &now
	if err := s.repo.Update(ctx, post); err != nil {
		return fmt.Errorf("failed to soft-delete post %d: %w", id, err)
	}

	s.logger.Info("post soft-deleted", "postID", id, "requesterID", requesterID)
	return nil
}

func (s *postService) Restore(ctx context.Context, id, requesterID int) (*Post, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.GetDeletedByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanRestoreContent(requester.Principal(), post.AuthorID) {
		return nil, ErrRestoreNotAllowed
	}

	post.IsDeleted = false
	post.DeletedAt = nil
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to restore post %d: %w", id, err)
	}

	s.logger.Info("post restored", "postID", id, "requesterID", requesterID)
	return post, nil
}

func (s *postService) ListInFolder(ctx context.Context, folder *folders.Folder, page int, search, orderBy, direction string, tagID int) (*PostPage, error) {
	// unrecognized sort input falls back to created_at/desc instead of
	// failing; see pagination.ParseSortField
	sort := pagination.ParseSortField(orderBy)
	dir := pagination.ParseDirection(direction)

	var folderID *int
	if folder != nil {
		folderID = &folder.ID
	}

	candidates, err := s.repo.ListInFolder(ctx, folderID, search, tagID, sort, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return NewPostPage(pagination.Paginate(candidates, page, PostsPageSize), search, tagID), nil
}

func (s *postService) ListByAuthor(ctx context.Context, authorID, requesterID int) ([]*Post, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.ID != authorID && !authz.CanModerate(requester.Principal()) {
		return nil, ErrViewOthersPosts
	}
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *postService) Like(ctx context.Context, postID, userID int) error {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.likes.Like(ctx, postID, userID)
}

func (s *postService) Unlike(ctx context.Context, postID, userID int) error {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.likes.Unlike(ctx, postID, userID)
}

func (s *postService) GetLikes(ctx context.Context, postID int) (int, error) {
	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return 0, err
	}
	return s.likes.Count(ctx, postID)
}

func (s *postService) GetLikers(ctx context.Context, postID int) ([]int, error) {
	return s.likes.LikedBy(ctx, postID)
}

func (s *postService) RegisterView(ctx context.Context, postID, userID int) error {
	return s.tracker.RegisterView(ctx, postID, userID)
}

func (s *postService) GetViews(ctx context.Context, postID int) (int64, error) {
	return s.tracker.TotalViews(ctx, postID)
}

func (s *postService) Trending(ctx context.Context) ([]*Post, error) {
	return s.repo.TrendingByViews(ctx, trendingLimit, trendingDays)
}

func (s *postService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
