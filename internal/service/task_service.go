package service

import (
	"context"
	"errors"

	"taskboard/internal/domain"
	"taskboard/internal/repository"
)

var (
	// ErrTaskNotFound is returned for operations against an unknown task id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrMissingTitle indicates a create request without a title.
	ErrMissingTitle = errors.New("title is required")
)

// TaskCreate carries the fields of a create request. Pointer fields
// distinguish "absent, apply the default" from an explicitly provided value.
type TaskCreate struct {
	Title       string
	Description *string
	Priority    *string
	Status      *string
}

// TaskPatch carries a partial update; only non-nil fields are applied.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *string
	Status      *string
}

// TaskService coordinates task CRUD backed by the repository.
type TaskService interface {
	Create(ctx context.Context, in TaskCreate) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	tasks repository.TaskRepository
}

func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, in TaskCreate) (*domain.Task, error) {
	if in.Title == "" {
		return nil, ErrMissingTitle
	}

	task := &domain.Task{
		Title:    in.Title,
		Priority: domain.PriorityMedium,
		Status:   domain.StatusTodo,
	}
	if in.Description != nil {
		task.Description = *in.Description
	}
	if in.Priority != nil {
		task.Priority = *in.Priority
	}
	if in.Status != nil {
		task.Status = *in.Status
	}

	if _, err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Update(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTaskNotFound
		}
		return err
	}
	return nil
}
