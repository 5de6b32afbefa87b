package model

import (
	"time"
)

type EventNote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	EventID   uint      `gorm:"not null;index" json:"event_id"`
	Note      string    `gorm:"type:text;not null" json:"note"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

const NoteOrder = "created_at DESC, id DESC"
