package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"notehub/internal/model"
	"notehub/internal/repository"
)

// CreateTaskInput is the validated payload for creating a calendar task.
type CreateTaskInput struct {
	Text      string    `validate:"required,max=500"`
	FolderID  string    `validate:"omitempty,uuid4"`
	Start     time.Time `validate:"required"`
	End       time.Time `validate:"required"`
	BackColor string    `validate:"omitempty,max=32"`
}

// UpdateTaskInput replaces a task's text, dates, completion and color.
type UpdateTaskInput struct {
	Text      string    `validate:"required,max=500"`
	Start     time.Time `validate:"required"`
	End       time.Time `validate:"required"`
	IsDone    bool      `validate:"-"`
	BackColor string    `validate:"omitempty,max=32"`
}

// TaskService defines the use cases for calendar tasks.
type TaskService interface {
	Create(ctx context.Context, userID string, in CreateTaskInput) (*model.Task, error)
	ListByUser(ctx context.Context, userID string) ([]model.Task, error)
	ListByFolder(ctx context.Context, userID, folderID string) ([]model.Task, error)
	Update(ctx context.Context, userID, id string, in UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, userID, id string) error
}

type taskService struct {
	tasks repository.TaskRepository
}

// NewTaskService constructs a TaskService.
func NewTaskService(tasks repository.TaskRepository) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, userID string, in CreateTaskInput) (*model.Task, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.End.Before(in.Start) {
		return nil, errors.Join(ErrValidation, errors.New("end must not precede start"))
	}
	now := time.Now().UTC()
	t := &model.Task{
		ID:        uuid.New().String(),
		UserID:    userID,
		FolderID:  in.FolderID,
		Text:      in.Text,
		Start:     in.Start,
		End:       in.End,
		BackColor: in.BackColor,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *taskService) ListByFolder(ctx context.Context, userID, folderID string) ([]model.Task, error) {
	tasks, err := s.tasks.ListByFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}
	out := tasks[:0]
	for _, t := range tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *taskService) Update(ctx context.Context, userID, id string, in UpdateTaskInput) (*model.Task, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.End.Before(in.Start) {
		return nil, errors.Join(ErrValidation, errors.New("end must not precede start"))
	}
	t, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	t.Text = in.Text
	t.Start = in.Start
	t.End = in.End
	t.IsComplete = in.IsDone
	t.BackColor = in.BackColor
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) owned(ctx context.Context, userID, id string) (*model.Task, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrNotOwner
	}
	return t, nil
}
