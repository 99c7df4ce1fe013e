package comments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Lattice/internal/core/authz"
	"Lattice/internal/core/likes"
	"Lattice/internal/core/pagination"
	"Lattice/internal/core/posts"
	"Lattice/internal/core/tags"
	"Lattice/internal/core/users"
)

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) GetByID(ctx context.Context, id int) (*Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Comment), args.Error(1)
}

func (m *mockCommentRepository) ListByPost(ctx context.Context, postID int) ([]*Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Comment), args.Error(1)
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) CountForPost(ctx context.Context, postID int) (int, error) {
	args := m.Called(ctx, postID)
	return args.Int(0), args.Error(1)
}

func (m *mockCommentRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostRepository) GetDeletedByID(ctx context.Context, id int) (*posts.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.Post), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *posts.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) ListInFolder(ctx context.Context, folderID *int, search string, tagID int, sort pagination.SortField, dir pagination.Direction) ([]*posts.Post, error) {
	args := m.Called(ctx, folderID, search, tagID, sort, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *mockPostRepository) ListByAuthor(ctx context.Context, authorID int) ([]*posts.Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *mockPostRepository) TrendingByViews(ctx context.Context, limit, days int) ([]*posts.Post, error) {
	args := m.Called(ctx, limit, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.Post), args.Error(1)
}

func (m *mockPostRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockPostRepository) SetTags(ctx context.Context, postID int, tagIDs []int) error {
	args := m.Called(ctx, postID, tagIDs)
	return args.Error(0)
}

func (m *mockPostRepository) ListTags(ctx context.Context, postID int) ([]*tags.Tag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*tags.Tag), args.Error(1)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int) (*users.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *mockUserRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*users.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *mockUserRepository) Update(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// memoryLikeStore backs the comment like registry in tests
type memoryLikeStore struct {
	members map[int]map[int]bool
}

func newMemoryLikeStore() *memoryLikeStore {
	return &memoryLikeStore{members: make(map[int]map[int]bool)}
}

func (s *memoryLikeStore) Add(_ context.Context, contentID, userID int) error {
	if s.members[contentID] == nil {
		s.members[contentID] = make(map[int]bool)
	}
	s.members[contentID][userID] = true
	return nil
}

func (s *memoryLikeStore) Remove(_ context.Context, contentID, userID int) error {
	delete(s.members[contentID], userID)
	return nil
}

func (s *memoryLikeStore) Exists(_ context.Context, contentID, userID int) (bool, error) {
	return s.members[contentID][userID], nil
}

func (s *memoryLikeStore) Count(_ context.Context, contentID int) (int, error) {
	return len(s.members[contentID]), nil
}

func (s *memoryLikeStore) LikerIDs(_ context.Context, contentID int) ([]int, error) {
	ids := make([]int, 0, len(s.members[contentID]))
	for id := range s.members[contentID] {
		ids = append(ids, id)
	}
	return ids, nil
}

type fixture struct {
	repo  *mockCommentRepository
	posts *mockPostRepository
	users *mockUserRepository
	svc   Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:  new(mockCommentRepository),
		posts: new(mockPostRepository),
		users: new(mockUserRepository),
	}
	f.svc = NewCommentService(f.repo, f.posts, f.users, likes.NewRegistry(newMemoryLikeStore()), nil)
	return f
}

func user(id int, role authz.Role) *users.User {
	return &users.User{ID: id, Username: "testuser", Role: role}
}

func comment(id, authorID, postID int) *Comment {
	now := time.Now().Add(-time.Hour)
	return &Comment{
		ID:        id,
		Content:   "Original content",
		AuthorID:  authorID,
		PostID:    postID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreate_AttachesToPost(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.posts.On("GetByID", mock.Anything, 1).Return(&posts.Post{ID: 1}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*comments.Comment")).Return(nil)

	result, err := f.svc.Create(context.Background(), CreateCommentRequest{Content: "Test comment"}, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, "Test comment", result.Content)
	assert.Equal(t, 10, result.AuthorID)
	assert.Equal(t, 1, result.PostID)
	assert.False(t, result.IsDeleted)
}

func TestCreate_MissingPostFails(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.posts.On("GetByID", mock.Anything, 1).Return(nil, posts.ErrPostNotFound)

	_, err := f.svc.Create(context.Background(), CreateCommentRequest{Content: "Test comment"}, 1, 10)

	assert.ErrorIs(t, err, posts.ErrPostNotFound)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_BlockedUserRejected(t *testing.T) {
	f := newFixture()

	blocked := user(10, authz.RoleUser)
	blocked.IsBlocked = true
	f.users.On("GetByID", mock.Anything, 10).Return(blocked, nil)

	_, err := f.svc.Create(context.Background(), CreateCommentRequest{Content: "hi"}, 1, 10)

	assert.ErrorIs(t, err, ErrUserBlocked)
}

func TestUpdate_OwnerEdits(t *testing.T) {
	f := newFixture()

	existing := comment(1, 10, 1)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(existing, nil)
	f.repo.On("Update", mock.Anything, existing).Return(nil)

	result, err := f.svc.Update(context.Background(), 1, UpdateCommentRequest{Content: "Updated content"}, 10)

	require.NoError(t, err)
	assert.Equal(t, "Updated content", result.Content)
	assert.True(t, result.UpdatedAt.After(result.CreatedAt))
}

func TestUpdate_NonOwnerForbidden(t *testing.T) {
	f := newFixture()

	existing := comment(1, 10, 1)
	f.users.On("GetByID", mock.Anything, 20).Return(user(20, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(existing, nil)

	_, err := f.svc.Update(context.Background(), 1, UpdateCommentRequest{Content: "Updated content"}, 20)

	assert.ErrorIs(t, err, ErrEditNotAllowed)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ModeratorHasNoEditBypass(t *testing.T) {
	f := newFixture()

	existing := comment(1, 10, 1)
	f.users.On("GetByID", mock.Anything, 30).Return(user(30, authz.RoleModerator), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(existing, nil)

	// only delete has a moderator bypass, not edit
	_, err := f.svc.Update(context.Background(), 1, UpdateCommentRequest{Content: "x"}, 30)

	assert.ErrorIs(t, err, ErrEditNotAllowed)
}

func TestDelete_OwnerSoftDeletes(t *testing.T) {
	f := newFixture()

	existing := comment(1, 10, 1)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(existing, nil)
	f.repo.On("Update", mock.Anything, existing).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 1, 10))

	assert.True(t, existing.IsDeleted)
	assert.NotNil(t, existing.DeletedAt)
}

func TestDelete_ModeratorDeletesOthersComment(t *testing.T) {
	f := newFixture()

	existing := comment(1, 10, 1)
	f.users.On("GetByID", mock.Anything, 30).Return(user(30, authz.RoleModerator), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(existing, nil)
	f.repo.On("Update", mock.Anything, existing).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 1, 30))
	assert.True(t, existing.IsDeleted)
}

func TestDelete_StrangerForbidden(t *testing.T) {
	f := newFixture()

	existing := comment(1, 10, 1)
	f.users.On("GetByID", mock.Anything, 20).Return(user(20, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(existing, nil)

	err := f.svc.Delete(context.Background(), 1, 20)

	assert.ErrorIs(t, err, ErrDeleteNotAllowed)
	assert.False(t, existing.IsDeleted)
}

func TestLike_StrictToggle(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", mock.Anything, 1).Return(comment(1, 10, 1), nil)
	f.users.On("GetByID", mock.Anything, 20).Return(user(20, authz.RoleUser), nil)

	require.NoError(t, f.svc.Like(ctx, 1, 20))
	assert.ErrorIs(t, f.svc.Like(ctx, 1, 20), likes.ErrAlreadyLiked)

	count, err := f.svc.GetLikes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, f.svc.Unlike(ctx, 1, 20))
	assert.ErrorIs(t, f.svc.Unlike(ctx, 1, 20), likes.ErrNotLiked)
}

func TestListByPost_ExcludesDeleted(t *testing.T) {
	f := newFixture()

	visible := comment(1, 10, 1)
	f.repo.On("ListByPost", mock.Anything, 1).Return([]*Comment{visible}, nil)

	result, err := f.svc.ListByPost(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []*Comment{visible}, result)
}
