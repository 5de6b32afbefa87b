package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"planner/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetOwned retrieves a task whose parent event belongs to userID
func (r *TaskRepository) GetOwned(ctx context.Context, id, userID uint) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).
		Select("tasks.*").
		Joins("JOIN events ON events.id = tasks.event_id").
		Where("tasks.id = ? AND events.user_id = ?", id, userID).
		First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// ListByEvent retrieves all tasks of an event in default order
func (r *TaskRepository) ListByEvent(ctx context.Context, eventID uint) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order(model.TaskOrder).Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// UpdateStatus changes the status of a task
func (r *TaskRepository) UpdateStatus(ctx context.Context, task *model.Task, status model.TaskStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	task.Status = status
	return nil
}
