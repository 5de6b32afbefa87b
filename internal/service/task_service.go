package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"planner/internal/auth"
	"planner/internal/model"
	"planner/internal/repository"
)

type TaskInput struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to" validate:"max=100"`
	DueDate     string `json:"due_date"`
}

type TaskService struct {
	guard *Guard
	tasks *repository.TaskRepository
}

func NewTaskService(guard *Guard, tasks *repository.TaskRepository) *TaskService {
	return &TaskService{guard: guard, tasks: tasks}
}

func (s *TaskService) AddTask(ctx context.Context, eventID uint, owner auth.Identity, in TaskInput) (*model.Task, error) {
	event, err := s.guard.LoadOwnedEvent(ctx, eventID, owner)
	if err != nil {
		return nil, err
	}

	in.Title = strings.TrimSpace(in.Title)
	in.AssignedTo = strings.TrimSpace(in.AssignedTo)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	var due *time.Time
	if raw := strings.TrimSpace(in.DueDate); raw != "" {
		d, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, invalid("due_date", "enter a valid date (YYYY-MM-DD)")
		}
		due = &d
	}

	task := &model.Task{
		EventID:     event.ID,
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		DueDate:     due,
		Status:      model.TaskStatusToDo,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// SetTaskStatus changes a task's status. The task is looked up through its
// parent event's owner, so another user's task reports ErrTaskNotFound.
// CompletedAt is not touched.
func (s *TaskService) SetTaskStatus(ctx context.Context, taskID uint, owner auth.Identity, newStatus string) (*model.Task, error) {
	task, err := s.tasks.GetOwned(ctx, taskID, owner.UserID)
	if err != nil {
		return nil, err
	}

	status, err := model.ParseTaskStatus(newStatus)
	if err != nil {
		return nil, &ValidationError{Field: "new_status", Message: err.Error()}
	}

	if err := s.tasks.UpdateStatus(ctx, task, status); err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return task, nil
}
