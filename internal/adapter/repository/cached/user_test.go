package cached

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"taskflow/internal/adapter/cache"
	domain "taskflow/internal/domain/user"
)

type MockDBRepository struct {
	mock.Mock
}

func (m *MockDBRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDBRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDBRepository) UpdateFields(ctx context.Context, id int64, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func setupCachedRepo(t *testing.T) (*UserRepository, *MockDBRepository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := zaptest.NewLogger(t)
	dbRepo := new(MockDBRepository)
	userCache := cache.NewRedisUserCache(client, 5*time.Minute, log)

	repo := NewUserRepository(dbRepo, userCache, log).(*UserRepository)
	return repo, dbRepo, mr
}

func TestCachedRepo_GetByID_PopulatesCache(t *testing.T) {
	repo, dbRepo, mr := setupCachedRepo(t)
	ctx := context.Background()

	u := &domain.User{ID: 7, Name: "Ana", Email: "ana@x.com"}
	dbRepo.On("GetByID", mock.Anything, int64(7)).Return(u, nil).Once()

	got, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.True(t, mr.Exists("user:7"))

	// Second read is served from the cache; the single .Once() expectation
	// above fails the test if the database is hit again.
	got, err = repo.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	dbRepo.AssertExpectations(t)
}

func TestCachedRepo_GetByID_DBError(t *testing.T) {
	repo, dbRepo, _ := setupCachedRepo(t)

	dbRepo.On("GetByID", mock.Anything, int64(404)).Return(nil, domain.ErrNotFound)

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCachedRepo_UpdateFields_Invalidates(t *testing.T) {
	repo, dbRepo, mr := setupCachedRepo(t)
	ctx := context.Background()

	u := &domain.User{ID: 7, Name: "Ana", Email: "ana@x.com"}
	dbRepo.On("GetByID", mock.Anything, int64(7)).Return(u, nil).Once()

	_, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.True(t, mr.Exists("user:7"))

	dbRepo.On("UpdateFields", mock.Anything, int64(7), mock.Anything).Return(nil)
	require.NoError(t, repo.UpdateFields(ctx, 7, map[string]any{"name": "Ana Maria"}))

	assert.False(t, mr.Exists("user:7"))
}

func TestCachedRepo_UpdateFields_ErrorSkipsInvalidation(t *testing.T) {
	repo, dbRepo, _ := setupCachedRepo(t)

	dbRepo.On("UpdateFields", mock.Anything, int64(404), mock.Anything).Return(domain.ErrNotFound)

	err := repo.UpdateFields(context.Background(), 404, map[string]any{"name": "Ghost"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCachedRepo_GetByEmail_BypassesCache(t *testing.T) {
	repo, dbRepo, mr := setupCachedRepo(t)

	u := &domain.User{ID: 7, Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"}
	dbRepo.On("GetByEmail", mock.Anything, "ana@x.com").Return(u, nil).Twice()

	for range 2 {
		got, err := repo.GetByEmail(context.Background(), "ana@x.com")
		require.NoError(t, err)
		// Email lookups carry the hash for login, so they never go
		// through the sanitized cache.
		assert.Equal(t, "hash", got.PasswordHash)
	}
	assert.False(t, mr.Exists("user:7"))

	dbRepo.AssertExpectations(t)
}
