package postgres

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"taskflow/internal/domain/user"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&UserSchema{}, &TaskSchema{}))

	return db
}

func newUserRepo(t *testing.T) *UserRepoPG {
	return NewUserRepoPG(setupTestDB(t), zaptest.NewLogger(t))
}

func TestUserRepoPG_CreateAndGet(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{
		Name:         "Ana",
		Email:        "ana@x.com",
		PasswordHash: "hashed",
	})
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "hashed", got.PasswordHash)
}

func TestUserRepoPG_GetByID_NotFound(t *testing.T) {
	repo := newUserRepo(t)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepoPG_GetByEmail(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	got, err := repo.GetByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana", got.Name)

	// Absent email is (nil, nil), not an error.
	got, err = repo.GetByEmail(ctx, "ghost@x.com")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepoPG_Create_DuplicateEmail(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &user.User{Name: "Impostor", Email: "ana@x.com", PasswordHash: "h2"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestUserRepoPG_UpdateFields_Partial(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	id, err := repo.Create(ctx, &user.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "original-hash"})
	require.NoError(t, err)

	err = repo.UpdateFields(ctx, id, map[string]any{"name": "Ana Maria"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	// Untouched columns keep their stored values.
	assert.Equal(t, "ana@x.com", got.Email)
	assert.Equal(t, "original-hash", got.PasswordHash)
}

func TestUserRepoPG_UpdateFields_NotFound(t *testing.T) {
	repo := newUserRepo(t)

	err := repo.UpdateFields(context.Background(), 999, map[string]any{"name": "Ghost"})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepoPG_UpdateFields_DuplicateEmail(t *testing.T) {
	repo := newUserRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &user.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "h"})
	require.NoError(t, err)
	bobID, err := repo.Create(ctx, &user.User{Name: "Bob", Email: "bob@x.com", PasswordHash: "h"})
	require.NoError(t, err)

	err = repo.UpdateFields(ctx, bobID, map[string]any{"email": "ana@x.com"})
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestUserRepoPG_UpdateFields_Empty(t *testing.T) {
	repo := newUserRepo(t)

	// An empty field set is a no-op, not an error.
	assert.NoError(t, repo.UpdateFields(context.Background(), 999, nil))
}
