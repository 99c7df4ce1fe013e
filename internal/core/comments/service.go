package comments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Lattice/internal/core/authz"
	"Lattice/internal/core/likes"
	"Lattice/internal/core/posts"
	"Lattice/internal/core/users"
)

type commentService struct {
	repo     Repository
	postRepo posts.Repository
	userRepo users.Repository
	likes    *likes.Registry
	logger   *slog.Logger
}

// NewCommentService creates a new comment lifecycle service
func NewCommentService(
	repo Repository,
	postRepo posts.Repository,
	userRepo users.Repository,
	likeRegistry *likes.Registry,
	logger *slog.Logger,
) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:     repo,
		postRepo: postRepo,
		userRepo: userRepo,
		likes:    likeRegistry,
		logger:   logger,
	}
}

func (s *commentService) Create(ctx context.Context, req CreateCommentRequest, postID, userID int) (*Comment, error) {
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if author.IsBlocked {
		return nil, ErrUserBlocked
	}

	// commenting on an absent or deleted post surfaces the post's own
	// not-found failure
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	now := time.Now()
	comment := &Comment{
		Content:   req.Content,
		PostID:    postID,
		AuthorID:  author.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("comment created", "commentID", comment.ID, "postID", postID, "authorID", userID)
	return comment, nil
}

func (s *commentService) GetByID(ctx context.Context, id int) (*Comment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *commentService) ListByPost(ctx context.Context, postID int) ([]*Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

func (s *commentService) Update(ctx context.Context, id int, req UpdateCommentRequest, requesterID int) (*Comment, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !authz.CanEdit(requester.Principal(), comment.AuthorID) {
		return nil, ErrEditNotAllowed
	}

	comment.Content = req.Content
	comment.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment %d: %w", id, err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, id, requesterID int) error {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return err
	}

	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !authz.CanDeleteContent(requester.Principal(), comment.AuthorID) {
		return ErrDeleteNotAllowed
	}

	now := time.Now()
	comment.IsDeleted = true
	comment.DeletedAt = &now
	if err := s.repo.Update(ctx, comment); err != nil {
		return fmt.Errorf("failed to soft-delete comment %d: %w", id, err)
	}

	s.logger.Info("comment soft-deleted", "commentID", id, "requesterID", requesterID)
	return nil
}

func (s *commentService) Like(ctx context.Context, commentID, userID int) error {
	if _, err := s.repo.GetByID(ctx, commentID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.likes.Like(ctx, commentID, userID)
}

func (s *commentService) Unlike(ctx context.Context, commentID, userID int) error {
	if _, err := s.repo.GetByID(ctx, commentID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.likes.Unlike(ctx, commentID, userID)
}

func (s *commentService) GetLikes(ctx context.Context, commentID int) (int, error) {
	if _, err := s.repo.GetByID(ctx, commentID); err != nil {
		return 0, err
	}
	return s.likes.Count(ctx, commentID)
}

func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}
