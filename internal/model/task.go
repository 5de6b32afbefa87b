package model

import (
	"time"
)

type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EventID     uint       `gorm:"not null;index" json:"event_id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"size:20;not null;default:'To Do'" json:"status"`
	AssignedTo  string     `gorm:"size:100" json:"assigned_to"`
	DueDate     *time.Time `gorm:"type:date" json:"due_date"`
	// CompletedAt is reserved; no write path sets it.
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

// TaskOrder sorts by due date, newest first, with undated tasks last.
const TaskOrder = "due_date IS NULL, due_date DESC, id DESC"
