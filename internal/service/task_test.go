package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notehub/internal/model"
	repoMocks "notehub/internal/repository/mocks"
)

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      CreateTaskInput
		setupMocks func(mRepo *repoMocks.MockTaskRepository)
		wantErr    error
	}{
		{
			name:  "happy path",
			input: CreateTaskInput{Text: "ship it", Start: start, End: start.Add(time.Hour)},
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {
				mRepo.On("Create", ctx, mock.MatchedBy(func(task *model.Task) bool {
					return task.Text == "ship it" && task.UserID == testUserID
				})).Return(&model.Task{ID: "gen-id"}, nil)
			},
		},
		{
			name:       "validation error - empty text",
			input:      CreateTaskInput{Start: start, End: start.Add(time.Hour)},
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:       "end precedes start",
			input:      CreateTaskInput{Text: "x", Start: start, End: start.Add(-time.Hour)},
			setupMocks: func(mRepo *repoMocks.MockTaskRepository) {},
			wantErr:    ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockTaskRepository)
			svc := NewTaskService(mRepo)

			tt.setupMocks(mRepo)

			_, err := svc.Create(ctx, testUserID, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	taskID := "task-1"

	t.Run("happy path marks complete", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaskRepository)
		mRepo.On("FindByID", ctx, taskID).
			Return(&model.Task{ID: taskID, UserID: testUserID}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(task *model.Task) bool {
			return task.IsComplete && task.Text == "done"
		})).Return(&model.Task{ID: taskID}, nil)

		svc := NewTaskService(mRepo)
		_, err := svc.Update(ctx, testUserID, taskID, UpdateTaskInput{
			Text: "done", Start: start, End: start.Add(time.Hour), IsDone: true,
		})
		assert.NoError(t, err)
		mRepo.AssertExpectations(t)
	})

	t.Run("not owner", func(t *testing.T) {
		mRepo := new(repoMocks.MockTaskRepository)
		mRepo.On("FindByID", ctx, taskID).
			Return(&model.Task{ID: taskID, UserID: "other"}, nil)

		svc := NewTaskService(mRepo)
		_, err := svc.Update(ctx, testUserID, taskID, UpdateTaskInput{
			Text: "done", Start: start, End: start.Add(time.Hour),
		})
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}

func TestTaskService_ListByFolder(t *testing.T) {
	ctx := context.Background()

	mRepo := new(repoMocks.MockTaskRepository)
	mRepo.On("ListByFolder", ctx, "folder-1").Return([]model.Task{
		{ID: "t1", UserID: testUserID},
		{ID: "t2", UserID: "other"},
	}, nil)

	svc := NewTaskService(mRepo)
	tasks, err := svc.ListByFolder(ctx, testUserID, "folder-1")
	assert.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)
}
