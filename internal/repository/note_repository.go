package repository

import (
	"context"

	"planner/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note *model.EventNote) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *NoteRepository) ListByEvent(ctx context.Context, eventID uint) ([]model.EventNote, error) {
	var notes []model.EventNote
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Order(model.NoteOrder).Find(&notes).Error
	return notes, err
}
