package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Lattice/internal/core/authz"
	"Lattice/internal/core/folders"
	"Lattice/internal/core/likes"
	"Lattice/internal/core/pagination"
	"Lattice/internal/core/tags"
	"Lattice/internal/core/users"
	"Lattice/internal/core/views"
)

// Mock repositories for testing

type mockPostRepository struct {
	mock.Mock
}

func (m *mockPostRepository) Create(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) GetByID(ctx context.Context, id int) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockPostRepository) GetDeletedByID(ctx context.Context, id int) (*Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Post), args.Error(1)
}

func (m *mockPostRepository) Update(ctx context.Context, post *Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *mockPostRepository) ListInFolder(ctx context.Context, folderID *int, search string, tagID int, sort pagination.SortField, dir pagination.Direction) ([]*Post, error) {
	args := m.Called(ctx, folderID, search, tagID, sort, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *mockPostRepository) ListByAuthor(ctx context.Context, authorID int) ([]*Post, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
}

func (m *mockPostRepository) TrendingByViews(ctx context.Context, limit, days int) ([]*Post, error) {
	args := m.Called(ctx, limit, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Post), args.Error(1)
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

type mockFolderRepository struct {
	mock.Mock
}

func (m *mockFolderRepository) GetByID(ctx context.Context, id int) (*folders.Folder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folders.Folder), args.Error(1)
}

func (m *mockFolderRepository) GetBySlug(ctx context.Context, parentID *int, slug string) (*folders.Folder, error) {
	args := m.Called(ctx, parentID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folders.Folder), args.Error(1)
}

func (m *mockFolderRepository) Children(ctx context.Context, parentID int) ([]*folders.Folder, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*folders.Folder), args.Error(1)
}

type mockViewRepository struct {
	mock.Mock
}

func (m *mockViewRepository) ExistsForDate(ctx context.Context, postID, userID int, day time.Time) (bool, error) {
	args := m.Called(ctx, postID, userID, day)
	return args.Bool(0), args.Error(1)
}

func (m *mockViewRepository) Register(ctx context.Context, postID, userID int) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *mockViewRepository) TotalViews(ctx context.Context, postID int) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// memoryLikeStore backs the like registry in service tests
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
	repo    *mockPostRepository
	users   *mockUserRepository
	folders *mockFolderRepository
	views   *mockViewRepository
	likes   *memoryLikeStore
	svc     Service
}

func newFixture() *fixture {
	f := &fixture{
		repo:    new(mockPostRepository),
		users:   new(mockUserRepository),
		folders: new(mockFolderRepository),
		views:   new(mockViewRepository),
		likes:   newMemoryLikeStore(),
	}
	f.svc = NewPostService(
		f.repo, f.users, f.folders,
		likes.NewRegistry(f.likes),
		views.NewTracker(f.views),
		nil, nil,
	)
	return f
}

func user(id int, role authz.Role) *users.User {
	return &users.User{ID: id, Username: "john", Role: role}
}

func activePost(id, authorID int) *Post {
	now := time.Now().Add(-time.Hour)
	return &Post{
		ID:        id,
		Title:     "Old",
		Content:   "Old content",
		AuthorID:  authorID,
		FolderID:  5,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ---------- create ----------

func TestCreate_ResolvesFolderAndAuthor(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.folders.On("GetByID", mock.Anything, 5).Return(&folders.Folder{ID: 5, Name: "Movies"}, nil)
	f.repo.On("Create", mock.Anything, mock.AnythingOfType("*posts.Post")).Return(nil)

	post, err := f.svc.Create(context.Background(), CreatePostRequest{
		Title: "Title", Content: "Content", FolderID: 5,
	}, 10)

	require.NoError(t, err)
	assert.Equal(t, 10, post.AuthorID)
	assert.Equal(t, 5, post.FolderID)
	assert.False(t, post.IsDeleted)
	f.repo.AssertCalled(t, "Create", mock.Anything, post)
}

func TestCreate_BlockedUserRejected(t *testing.T) {
	f := newFixture()

	blocked := user(10, authz.RoleUser)
	blocked.IsBlocked = true
	f.users.On("GetByID", mock.Anything, 10).Return(blocked, nil)

	_, err := f.svc.Create(context.Background(), CreatePostRequest{FolderID: 5}, 10)

	assert.ErrorIs(t, err, ErrUserBlocked)
	f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// ---------- visibility ----------

func TestGetByIDIncludeDeleted_VisiblePostShortCircuits(t *testing.T) {
	f := newFixture()

	post := activePost(1, 20)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)

	result, err := f.svc.GetByIDIncludeDeleted(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, post, result)
	f.repo.AssertNotCalled(t, "GetDeletedByID", mock.Anything, mock.Anything)
}

func TestGetByIDIncludeDeleted_OwnerSeesDeleted(t *testing.T) {
	f := newFixture()

	deleted := activePost(1, 10)
	deleted.IsDeleted = true
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(nil, ErrPostNotFound)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(deleted, nil)

	result, err := f.svc.GetByIDIncludeDeleted(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, deleted, result)
}

func TestGetByIDIncludeDeleted_AdminSeesDeleted(t *testing.T) {
	f := newFixture()

	deleted := activePost(1, 20)
	deleted.IsDeleted = true
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleAdmin), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(nil, ErrPostNotFound)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(deleted, nil)

	result, err := f.svc.GetByIDIncludeDeleted(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Equal(t, deleted, result)
}

func TestGetByIDIncludeDeleted_StrangerGetsNotFound(t *testing.T) {
	f := newFixture()

	deleted := activePost(1, 99)
	deleted.IsDeleted = true
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(nil, ErrPostNotFound)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(deleted, nil)

	_, err := f.svc.GetByIDIncludeDeleted(context.Background(), 1, 10)

	// the deleted post must be indistinguishable from an absent one
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestGetByIDIncludeDeleted_ModeratorGetsNotFound(t *testing.T) {
	f := newFixture()

	deleted := activePost(1, 99)
	deleted.IsDeleted = true
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleModerator), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(nil, ErrPostNotFound)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(deleted, nil)

	_, err := f.svc.GetByIDIncludeDeleted(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

// ---------- update ----------

func TestUpdate_NonOwnerForbiddenAndUnchanged(t *testing.T) {
	f := newFixture()

	post := activePost(1, 20)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)

	_, err := f.svc.Update(context.Background(), 1, UpdatePostRequest{Title: "New", Content: "New content"}, 10)

	assert.ErrorIs(t, err, ErrEditNotAllowed)
	assert.True(t, IsAuthorization(err))
	assert.Equal(t, "Old", post.Title)
	assert.Equal(t, "Old content", post.Content)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdate_ModeratorHasNoEditBypass(t *testing.T) {
	f := newFixture()

	post := activePost(1, 20)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleModerator), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)

	_, err := f.svc.Update(context.Background(), 1, UpdatePostRequest{Title: "New"}, 10)

	assert.ErrorIs(t, err, ErrEditNotAllowed)
}

func TestUpdate_OwnerEditsAndStampsUpdatedAt(t *testing.T) {
	f := newFixture()

	post := activePost(1, 10)
	before := post.UpdatedAt
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)
	f.repo.On("Update", mock.Anything, post).Return(nil)

	result, err := f.svc.Update(context.Background(), 1, UpdatePostRequest{Title: "New", Content: "New content"}, 10)

	require.NoError(t, err)
	assert.Equal(t, "New", result.Title)
	assert.Equal(t, "New content", result.Content)
	assert.True(t, result.UpdatedAt.After(before))
}

// ---------- soft delete / restore ----------

func TestDelete_StrangerForbidden(t *testing.T) {
	f := newFixture()

	post := activePost(1, 20)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)

	err := f.svc.Delete(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrDeleteNotAllowed)
	assert.False(t, post.IsDeleted)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDelete_OwnerSoftDeletes(t *testing.T) {
	f := newFixture()

	post := activePost(1, 10)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)
	f.repo.On("Update", mock.Anything, post).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 1, 10))

	assert.True(t, post.IsDeleted)
	require.NotNil(t, post.DeletedAt)
}

func TestDelete_ModeratorDeletesOthersPost(t *testing.T) {
	f := newFixture()

	post := activePost(1, 20)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleModerator), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)
	f.repo.On("Update", mock.Anything, post).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 1, 10))
	assert.True(t, post.IsDeleted)
}

func TestRestore_NotFoundWhenAbsentOrActive(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(nil, ErrPostNotFound)

	_, err := f.svc.Restore(context.Background(), 1, 10)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestRestore_ModeratorCannotRestoreOthersPost(t *testing.T) {
	f := newFixture()

	deleted := activePost(1, 20)
	deleted.IsDeleted = true
	now := time.Now()
	deleted.DeletedAt = &now

	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleModerator), nil)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(deleted, nil)

	_, err := f.svc.Restore(context.Background(), 1, 10)

	// moderators may delete others' content but restore is owner/admin only
	assert.ErrorIs(t, err, ErrRestoreNotAllowed)
	assert.True(t, deleted.IsDeleted)
	f.repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSoftDeleteRestore_RoundTrip(t *testing.T) {
	f := newFixture()

	post := activePost(1, 10)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)
	f.repo.On("GetDeletedByID", mock.Anything, 1).Return(post, nil)
	f.repo.On("Update", mock.Anything, post).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 1, 10))
	require.True(t, post.IsDeleted)
	require.NotNil(t, post.DeletedAt)

	restored, err := f.svc.Restore(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.False(t, restored.IsDeleted)
	assert.Nil(t, restored.DeletedAt)
	assert.Equal(t, "Old", restored.Title)
}

// ---------- likes ----------

func TestLike_DuplicateFailsLoudly(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	post := activePost(1, 20)
	f.repo.On("GetByID", mock.Anything, 1).Return(post, nil)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)

	require.NoError(t, f.svc.Like(ctx, 1, 10))

	err := f.svc.Like(ctx, 1, 10)
	assert.ErrorIs(t, err, likes.ErrAlreadyLiked)

	count, err := f.svc.GetLikes(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUnlike_WithoutLikeFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	f.repo.On("GetByID", mock.Anything, 1).Return(activePost(1, 20), nil)
	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)

	err := f.svc.Unlike(ctx, 1, 10)
	assert.ErrorIs(t, err, likes.ErrNotLiked)
}

// ---------- listing ----------

func TestListInFolder_InvalidSortFallsBack(t *testing.T) {
	f := newFixture()

	folder := &folders.Folder{ID: 5, Name: "Movies"}
	f.repo.On("ListInFolder", mock.Anything, &folder.ID, "", 0,
		pagination.SortByCreatedAt, pagination.Descending).
		Return([]*Post{activePost(1, 10), activePost(2, 10)}, nil)

	page, err := f.svc.ListInFolder(context.Background(), folder, 1, "", "blah", "up", 0)

	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	f.repo.AssertCalled(t, "ListInFolder", mock.Anything, &folder.ID, "", 0,
		pagination.SortByCreatedAt, pagination.Descending)
}

func TestListInFolder_TwelvePostsPageThree(t *testing.T) {
	f := newFixture()

	candidates := make([]*Post, 12)
	for i := range candidates {
		candidates[i] = activePost(i+1, 10)
	}
	folder := &folders.Folder{ID: 5, Name: "Movies"}
	f.repo.On("ListInFolder", mock.Anything, &folder.ID, "", 0,
		pagination.SortByCreatedAt, pagination.Descending).
		Return(candidates, nil)

	page, err := f.svc.ListInFolder(context.Background(), folder, 3, "", "date", "desc", 0)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 11, page.FromItem)
	assert.Equal(t, 12, page.ToItem)
	require.Len(t, page.Items, 2)
	assert.Equal(t, 11, page.Items[0].ID)
	assert.Equal(t, 12, page.Items[1].ID)
}

func TestListInFolder_NegativePageClampsToFirst(t *testing.T) {
	f := newFixture()

	folder := &folders.Folder{ID: 5}
	f.repo.On("ListInFolder", mock.Anything, &folder.ID, "", 0,
		pagination.SortByCreatedAt, pagination.Descending).
		Return([]*Post{activePost(1, 10)}, nil)

	page, err := f.svc.ListInFolder(context.Background(), folder, -3, "", "CREATED_AT", "desc", 0)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestListByAuthor_SelfAndModeratorOnly(t *testing.T) {
	f := newFixture()

	f.users.On("GetByID", mock.Anything, 10).Return(user(10, authz.RoleUser), nil)
	f.users.On("GetByID", mock.Anything, 30).Return(user(30, authz.RoleModerator), nil)
	f.repo.On("ListByAuthor", mock.Anything, 20).Return([]*Post{activePost(1, 20)}, nil)

	_, err := f.svc.ListByAuthor(context.Background(), 20, 10)
	assert.ErrorIs(t, err, ErrViewOthersPosts)

	result, err := f.svc.ListByAuthor(context.Background(), 20, 30)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

// ---------- views, trending, count ----------

func TestRegisterView_Delegates(t *testing.T) {
	f := newFixture()

	f.views.On("ExistsForDate", mock.Anything, 1, 10, mock.Anything).Return(false, nil)
	f.views.On("Register", mock.Anything, 1, 10).Return(nil)

	require.NoError(t, f.svc.RegisterView(context.Background(), 1, 10))
	f.views.AssertCalled(t, "Register", mock.Anything, 1, 10)
}

func TestGetViews_Delegates(t *testing.T) {
	f := newFixture()

	f.views.On("TotalViews", mock.Anything, 1).Return(int64(123), nil)

	total, err := f.svc.GetViews(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(123), total)
}

func TestTrending_TopFiveOverLastWeek(t *testing.T) {
	f := newFixture()

	expected := []*Post{activePost(1, 10), activePost(2, 10)}
	f.repo.On("TrendingByViews", mock.Anything, 5, 7).Return(expected, nil)

	result, err := f.svc.Trending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestCount_Delegates(t *testing.T) {
	f := newFixture()

	f.repo.On("Count", mock.Anything).Return(42, nil)

	count, err := f.svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}
