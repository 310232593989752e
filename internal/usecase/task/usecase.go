package task

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	domain "taskflow/internal/domain/task"
	apperrors "taskflow/pkg/errors"
	"taskflow/pkg/security"
)

// Service implements the task business logic.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates the task service.
func New(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateTask creates a task owned by the given user.
func (s *Service) CreateTask(ctx context.Context, userID int64, in CreateTaskRequest) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.ErrMissingTitle
	}

	created, err := s.repo.Create(ctx, &domain.Task{
		UserID:      userID,
		Title:       title,
		Description: in.Description,
	})
	if err != nil {
		s.log.Error("failed to create task", zap.Int64("user_id", userID), zap.Error(err))
		return nil, apperrors.ErrCouldNotCreateTask.WithCause(err)
	}

	s.log.Info("task created", zap.Int64("id", created.ID), zap.Int64("user_id", userID))
	return created, nil
}

// ListMyTasks returns the user's tasks, newest first. A non-empty query is
// validated before it reaches the store and filters on title or description.
func (s *Service) ListMyTasks(ctx context.Context, userID int64, query string) ([]domain.Task, error) {
	clean, err := security.ValidateSearchQuery(query)
	if err != nil {
		s.log.Warn("rejected task search query", zap.Int64("user_id", userID), zap.Error(err))
		return nil, apperrors.ErrInvalidQuery.WithCause(err)
	}

	tasks, err := s.repo.ListByUser(ctx, userID, clean)
	if err != nil {
		s.log.Error("failed to list tasks", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}
	return tasks, nil
}

// GetTask returns an owned task by id.
func (s *Service) GetTask(ctx context.Context, userID, id int64) (*domain.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		s.log.Error("failed to get task", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}

// UpdateTask applies a partial edit to an owned task and returns the updated
// record.
func (s *Service) UpdateTask(ctx context.Context, userID, id int64, in UpdateTaskRequest) (*domain.Task, error) {
	fields := map[string]any{}
	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, apperrors.ErrMissingTitle
		}
		fields["title"] = title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Done != nil {
		fields["done"] = *in.Done
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, userID, id, fields); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apperrors.ErrTaskNotFound
			}
			s.log.Error("failed to update task", zap.Int64("id", id), zap.Error(err))
			return nil, apperrors.ErrCouldNotUpdateTask.WithCause(err)
		}
	}

	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	s.log.Info("task updated", zap.Int64("id", id), zap.Int64("user_id", userID))
	return t, nil
}

// DeleteTask removes an owned task.
func (s *Service) DeleteTask(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperrors.ErrTaskNotFound
		}
		s.log.Error("failed to delete task", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.log.Info("task deleted", zap.Int64("id", id), zap.Int64("user_id", userID))
	return nil
}
