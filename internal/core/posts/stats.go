package posts

import (
	"context"
	"fmt"

	"Lattice/internal/core/timeago"
)

// BuildStats assembles the presentation summary for a post: creator, comment
// count, cumulative views, likers, tag names, folder name and humanized
// timestamps. Pure projection over the post and its collaborators.
func (s *postService) BuildStats(ctx context.Context, post *Post) (*PostStats, error) {
	creator, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post %d creator: %w", post.ID, err)
	}

	folder, err := s.folderRepo.GetByID(ctx, post.FolderID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve post %d folder: %w", post.ID, err)
	}

	viewCount, err := s.tracker.TotalViews(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count post %d views: %w", post.ID, err)
	}

	likers, err := s.likes.LikedBy(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post %d likers: %w", post.ID, err)
	}

	postTags, err := s.repo.ListTags(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post %d tags: %w", post.ID, err)
	}
	tagNames := make([]string, len(postTags))
	for i, tag := range postTags {
		tagNames[i] = tag.Name
	}

	commentCount := 0
	if s.comments != nil {
		commentCount, err = s.comments.CountForPost(ctx, post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count post %d comments: %w", post.ID, err)
		}
	}

	stats := &PostStats{
		Creator:         creator.Username,
		CreatorID:       creator.ID,
		CommentsCount:   commentCount,
		Views:           viewCount,
		LikedBy:         likers,
		Tags:            tagNames,
		FolderName:      folder.Name,
		CreatedAtString: timeago.FormatNow(post.CreatedAt),
		UpdatedAtString: timeago.FormatNow(post.UpdatedAt),
	}
	if post.DeletedAt != nil {
		stats.DeletedAtString = timeago.FormatNow(*post.DeletedAt)
	}
	return stats, nil
}
