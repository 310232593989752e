package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"taskflow/internal/domain/task"
)

func newTaskRepo(t *testing.T) (*TaskRepoPG, *gorm.DB) {
	db := setupTestDB(t)
	return NewTaskRepoPG(db, zaptest.NewLogger(t)), db
}

func TestTaskRepoPG_CreateAndGet(t *testing.T) {
	repo, _ := newTaskRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &task.Task{
		UserID:      1,
		Title:       "Buy groceries",
		Description: "milk, eggs",
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	assert.False(t, created.Done)

	got, err := repo.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Buy groceries", got.Title)
	assert.Equal(t, "milk, eggs", got.Description)
}

func TestTaskRepoPG_OwnershipIsolation(t *testing.T) {
	repo, _ := newTaskRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &task.Task{UserID: 1, Title: "Ana's task"})
	require.NoError(t, err)

	// Another user's id scopes the task out of reach entirely.
	_, err = repo.GetByID(ctx, 2, created.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)

	err = repo.UpdateFields(ctx, 2, created.ID, map[string]any{"done": true})
	assert.ErrorIs(t, err, task.ErrNotFound)

	err = repo.Delete(ctx, 2, created.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)

	got, err := repo.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Done)
}

func TestTaskRepoPG_ListByUser_Ordering(t *testing.T) {
	repo, db := newTaskRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, title := range []string{"oldest", "middle", "newest"} {
		row := TaskSchema{
			UserID:    1,
			Title:     title,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&row).Error)
	}
	require.NoError(t, db.Create(&TaskSchema{UserID: 2, Title: "someone else's"}).Error)

	tasks, err := repo.ListByUser(ctx, 1, "")
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "newest", tasks[0].Title)
	assert.Equal(t, "middle", tasks[1].Title)
	assert.Equal(t, "oldest", tasks[2].Title)
}

func TestTaskRepoPG_ListByUser_Search(t *testing.T) {
	repo, _ := newTaskRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &task.Task{UserID: 1, Title: "buy groceries"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &task.Task{UserID: 1, Title: "walk the dog", Description: "buy a leash first"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &task.Task{UserID: 1, Title: "read a book"})
	require.NoError(t, err)

	// Matches on either title or description.
	tasks, err := repo.ListByUser(ctx, 1, "buy")
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	tasks, err = repo.ListByUser(ctx, 1, "nothing matches this")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskRepoPG_UpdateFields_Partial(t *testing.T) {
	repo, _ := newTaskRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &task.Task{UserID: 1, Title: "Original", Description: "keep me"})
	require.NoError(t, err)

	err = repo.UpdateFields(ctx, 1, created.ID, map[string]any{"done": true})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, 1, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, "Original", got.Title)
	assert.Equal(t, "keep me", got.Description)
}

func TestTaskRepoPG_Delete(t *testing.T) {
	repo, _ := newTaskRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &task.Task{UserID: 1, Title: "Short-lived"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, 1, created.ID))

	_, err = repo.GetByID(ctx, 1, created.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)

	err = repo.Delete(ctx, 1, created.ID)
	assert.ErrorIs(t, err, task.ErrNotFound)
}
