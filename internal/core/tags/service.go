package tags

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"Lattice/internal/core/authz"
	"Lattice/internal/core/users"
)

type tagService struct {
	repo     Repository
	userRepo users.Repository
	logger   *slog.Logger
}

// NewTagService creates a new tag catalog service
func NewTagService(repo Repository, userRepo users.Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &tagService{repo: repo, userRepo: userRepo, logger: logger}
}

func (s *tagService) Create(ctx context.Context, name string, actorID int) (*Tag, error) {
	if err := s.requireTagAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	normalized := Normalize(name)
	if err := validateName(normalized); err != nil {
		return nil, err
	}

	// pre-check keeps the common duplicate case off the constraint path;
	// the repo still maps a racing insert's unique violation to ErrTagExists
	if _, err := s.repo.GetByName(ctx, normalized); err == nil {
		return nil, ErrTagExists
	} else if !IsNotFound(err) {
		return nil, err
	}

	tag := &Tag{Name: normalized}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}

	s.logger.Info("tag created", "tag", normalized, "actorID", actorID)
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, tagID int, newName string, actorID int) (*Tag, error) {
	if err := s.requireTagAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	tag, err := s.repo.GetByID(ctx, tagID)
	if err != nil {
		return nil, err
	}

	normalized := Normalize(newName)
	if err := validateName(normalized); err != nil {
		return nil, err
	}

	// the tag being renamed is excluded from the duplicate check
	if existing, err := s.repo.GetByName(ctx, normalized); err == nil {
		if existing.ID != tagID {
			return nil, ErrTagExists
		}
	} else if !IsNotFound(err) {
		return nil, err
	}

	tag.Name = normalized
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}

	s.logger.Info("tag renamed", "tagID", tagID, "name", normalized, "actorID", actorID)
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, tagID, actorID int) error {
	if err := s.requireTagAdmin(ctx, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tagID); err != nil {
		return err
	}

	s.logger.Info("tag deleted", "tagID", tagID, "actorID", actorID)
	return nil
}

func (s *tagService) GetByID(ctx context.Context, id int) (*Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]*Tag, error) {
	return s.repo.List(ctx)
}

func (s *tagService) requireTagAdmin(ctx context.Context, actorID int) error {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("failed to resolve actor %d: %w", actorID, err)
	}
	if !authz.CanManageTags(actor.Principal()) {
		return ErrNotAuthorized
	}
	return nil
}

func validateName(normalized string) error {
	length := utf8.RuneCountInString(normalized)
	if length < MinNameLength || length > MaxNameLength {
		return ErrInvalidName
	}
	return nil
}
