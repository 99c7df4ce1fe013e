package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"Lattice/internal/core/authz"
)

type userService struct {
	repo   Repository
	logger *slog.Logger
}

// NewUserService creates a new user administration service
func NewUserService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{repo: repo, logger: logger}
}

func (s *userService) GetByID(ctx context.Context, id int) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Block marks a user as blocked so they can no longer create content.
// The actor must be a moderator or admin; blocking twice is a conflict,
// not a silent no-op.
func (s *userService) Block(ctx context.Context, userID, actorID int) (*User, error) {
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanModerate(actor.Principal()) {
		return nil, ErrNotAuthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBlocked {
		return nil, ErrAlreadyBlocked
	}

	user.IsBlocked = true
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to block user %d: %w", userID, err)
	}

	s.logger.Info("user blocked", "userID", userID, "actorID", actorID)
	return user, nil
}

func (s *userService) Unblock(ctx context.Context, userID, actorID int) (*User, error) {
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanModerate(actor.Principal()) {
		return nil, ErrNotAuthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsBlocked {
		return nil, ErrNotBlocked
	}

	user.IsBlocked = false
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to unblock user %d: %w", userID, err)
	}

	s.logger.Info("user unblocked", "userID", userID, "actorID", actorID)
	return user, nil
}

// Promote raises a user to moderator. Admin only; promoting an existing
// moderator or admin leaves the role untouched.
func (s *userService) Promote(ctx context.Context, userID, actorID int) (*User, error) {
	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.Principal().IsAdmin() {
		return nil, ErrNotAuthorized
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Role != authz.RoleUser {
		return user, nil
	}

	user.Role = authz.RoleModerator
	user.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to promote user %d: %w", userID, err)
	}

	s.logger.Info("user promoted to moderator", "userID", userID, "actorID", actorID)
	return user, nil
}
