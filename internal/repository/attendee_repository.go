package repository

import (
	"context"

	"planner/internal/model"

	"gorm.io/gorm"
)

type AttendeeRepository struct {
	db *gorm.DB
}

func NewAttendeeRepository(db *gorm.DB) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

func (r *AttendeeRepository) Create(ctx context.Context, attendee *model.Attendee) error {
	return r.db.WithContext(ctx).Create(attendee).Error
}

func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID uint) ([]model.Attendee, error) {
	var attendees []model.Attendee
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order(model.AttendeeOrder).Find(&attendees).Error
	return attendees, err
}
