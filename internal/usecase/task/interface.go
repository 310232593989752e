package task

import (
	"context"

	domain "taskflow/internal/domain/task"
)

// Usecase defines the interface for task business logic operations. Every
// operation is scoped to the authenticated user.
type Usecase interface {
	CreateTask(ctx context.Context, userID int64, in CreateTaskRequest) (*domain.Task, error)
	ListMyTasks(ctx context.Context, userID int64, query string) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, id int64) (*domain.Task, error)
	UpdateTask(ctx context.Context, userID, id int64, in UpdateTaskRequest) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, id int64) error
}

// Repository defines the interface for task data access operations.
type Repository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListByUser(ctx context.Context, userID int64, query string) ([]domain.Task, error)
	UpdateFields(ctx context.Context, userID, id int64, fields map[string]any) error
	Delete(ctx context.Context, userID, id int64) error
}
