package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskflow/internal/domain/task"
	"taskflow/pkg/security"
)

// TaskRepoPG implements the task Repository interface using PostgreSQL and GORM.
type TaskRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTaskRepoPG creates a new instance of TaskRepoPG.
func NewTaskRepoPG(db *gorm.DB, log *zap.Logger) *TaskRepoPG {
	return &TaskRepoPG{db: db, log: log}
}

// TaskSchema represents the database schema for the tasks table.
type TaskSchema struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	UserID      int64  `gorm:"not null;index"`
	Title       string `gorm:"not null"`
	Description string
	Done        bool `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the TaskSchema model.
func (TaskSchema) TableName() string {
	return "tasks"
}

func (m *TaskSchema) toDomain() *task.Task {
	return &task.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Done:        m.Done,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create inserts a new task and returns it with store-assigned fields set.
func (r *TaskRepoPG) Create(ctx context.Context, t *task.Task) (*task.Task, error) {
	if t == nil {
		return nil, errors.New("task cannot be nil")
	}

	model := TaskSchema{
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Done:        t.Done,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create task in db", zap.Error(err), zap.Int64("user_id", t.UserID))
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	r.log.Info("task created in db", zap.Int64("id", model.ID), zap.Int64("user_id", model.UserID))
	return model.toDomain(), nil
}

// GetByID retrieves a task by id, scoped to its owner. A task belonging to a
// different user is reported as not found.
func (r *TaskRepoPG) GetByID(ctx context.Context, userID, id int64) (*task.Task, error) {
	var model TaskSchema
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("task not found", zap.Int64("id", id), zap.Int64("user_id", userID))
			return nil, task.ErrNotFound
		}
		r.log.Error("failed to get task from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return model.toDomain(), nil
}

// ListByUser retrieves the user's tasks, newest first, optionally filtered by
// a search query over title and description. The query must already have
// passed security.ValidateSearchQuery.
func (r *TaskRepoPG) ListByUser(ctx context.Context, userID int64, query string) ([]task.Task, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if query != "" {
		like := "%" + security.SanitizeSearchString(query) + "%"
		tx = tx.Where("title LIKE ? OR description LIKE ?", like, like)
	}

	var models []TaskSchema
	if err := tx.Order("created_at DESC").Find(&models).Error; err != nil {
		r.log.Error("failed to list tasks from db", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]task.Task, len(models))
	for i, model := range models {
		tasks[i] = *model.toDomain()
	}

	return tasks, nil
}

// UpdateFields applies a partial update to an owned task.
func (r *TaskRepoPG) UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	res := r.db.WithContext(ctx).Model(&TaskSchema{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	if res.Error != nil {
		r.log.Error("failed to update task in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("update matched no task", zap.Int64("id", id), zap.Int64("user_id", userID))
		return task.ErrNotFound
	}

	r.log.Info("task updated in db", zap.Int64("id", id))
	return nil
}

// Delete removes an owned task by id.
func (r *TaskRepoPG) Delete(ctx context.Context, userID, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&TaskSchema{})
	if res.Error != nil {
		r.log.Error("failed to delete task in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("delete matched no task", zap.Int64("id", id), zap.Int64("user_id", userID))
		return task.ErrNotFound
	}

	r.log.Info("task deleted in db", zap.Int64("id", id))
	return nil
}
