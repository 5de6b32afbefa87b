package service

import (
	"context"
	"testing"

	"planner/internal/model"
	"planner/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	task, err := env.tasks.AddTask(context.Background(), e.ID, env.alice, TaskInput{
		Title:      " Book venue ",
		AssignedTo: "Sam",
		DueDate:    "2025-05-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Book venue", task.Title)
	assert.Equal(t, model.TaskStatusToDo, task.Status)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2025-05-15", task.DueDate.Format("2006-01-02"))
	assert.Equal(t, e.ID, task.EventID)
}

func TestAddTask_Validation(t *testing.T) {
	env := newTestEnv(t)
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")

	_, err := env.tasks.AddTask(context.Background(), e.ID, env.alice, TaskInput{Title: "   "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)

	_, err = env.tasks.AddTask(context.Background(), e.ID, env.alice, TaskInput{Title: "x", DueDate: "tomorrow"})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "due_date", verr.Field)

	var count int64
	env.db.Model(&model.Task{}).Count(&count)
	assert.Zero(t, count)
}

func TestSetTaskStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")
	task, err := env.tasks.AddTask(ctx, e.ID, env.alice, TaskInput{Title: "Book venue"})
	require.NoError(t, err)

	for _, s := range []model.TaskStatus{model.TaskStatusCompleted, model.TaskStatusToDo, model.TaskStatusInProgress, model.TaskStatusCompleted} {
		got, err := env.tasks.SetTaskStatus(ctx, task.ID, env.alice, string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got.Status)
	}

	var stored model.Task
	require.NoError(t, env.db.First(&stored, task.ID).Error)
	assert.Equal(t, model.TaskStatusCompleted, stored.Status)
	assert.Nil(t, stored.CompletedAt, "completed_at is never written")
}

func TestSetTaskStatus_RejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")
	task, err := env.tasks.AddTask(ctx, e.ID, env.alice, TaskInput{Title: "Book venue"})
	require.NoError(t, err)

	_, err = env.tasks.SetTaskStatus(ctx, task.ID, env.alice, "Planning")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	var stored model.Task
	require.NoError(t, env.db.First(&stored, task.ID).Error)
	assert.Equal(t, model.TaskStatusToDo, stored.Status)
}

func TestSetTaskStatus_OtherUsersTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	e := env.createEvent(t, env.alice, "Launch", "2025-06-01")
	task, err := env.tasks.AddTask(ctx, e.ID, env.alice, TaskInput{Title: "Book venue"})
	require.NoError(t, err)

	_, err = env.tasks.SetTaskStatus(ctx, task.ID, env.bob, "Completed")
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	_, err = env.tasks.SetTaskStatus(ctx, task.ID+100, env.alice, "Completed")
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	var stored model.Task
	require.NoError(t, env.db.First(&stored, task.ID).Error)
	assert.Equal(t, model.TaskStatusToDo, stored.Status)
}
