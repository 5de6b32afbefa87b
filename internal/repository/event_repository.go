package repository

import (
	"context"
	"errors"
	"time"

	"planner/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetOwned loads an event filtered by both id and owner.
func (r *EventRepository) GetOwned(ctx context.Context, id, userID uint) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) ListByOwner(ctx context.Context, userID uint) ([]model.Event, error) {
	var events []model.Event
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order(model.EventOrder).Find(&events).Error
	return events, err
}

// UpdateStatus persists a new status and touches updated_at.
func (r *EventRepository) UpdateStatus(ctx context.Context, event *model.Event, status model.EventStatus) error {
	now := time.Now()
	result := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ? AND user_id = ?", event.ID, event.UserID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	event.Status = status
	event.UpdatedAt = now
	return nil
}

// UpdateDetails writes the editable fields of event. Status and owner are left alone.
func (r *EventRepository) UpdateDetails(ctx context.Context, event *model.Event) error {
	event.UpdatedAt = time.Now()
	result := r.db.WithContext(ctx).Model(&model.Event{}).
		Where("id = ? AND user_id = ?", event.ID, event.UserID).
		Updates(map[string]interface{}{
			"name":               event.Name,
			"description":        event.Description,
			"date":               event.Date,
			"time":               event.Time,
			"location":           event.Location,
			"priority":           event.Priority,
			"budget":             event.Budget,
			"expected_attendees": event.ExpectedAttendees,
			"updated_at":         event.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

// Delete removes an owned event together with its tasks, attendees and notes.
// Children are deleted explicitly so the behaviour does not depend on the
// driver enforcing foreign keys.
func (r *EventRepository) Delete(ctx context.Context, id, userID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Event{}).Where("id = ? AND user_id = ?", id, userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrEventNotFound
		}

		if err := tx.Where("event_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.Attendee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&model.EventNote{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Event{}).Error
	})
}
