package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID                uint                `gorm:"primaryKey" json:"id"`
	UserID            uint                `gorm:"not null;index" json:"user_id"`
	Name              string              `gorm:"size:200;not null" json:"name"`
	Description       string              `gorm:"type:text" json:"description"`
	Date              time.Time           `gorm:"type:date;not null;index" json:"date"`
	Time              *string             `gorm:"size:8" json:"time"`
	Location          string              `gorm:"size:300" json:"location"`
	Status            EventStatus         `gorm:"size:20;not null;default:Planning" json:"status"`
	Priority          Priority            `gorm:"size:10;not null;default:Medium" json:"priority"`
	Budget            decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"budget"`
	ExpectedAttendees int                 `gorm:"not null;default:0" json:"expected_attendees"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// EventOrder is the default listing order for events.
const EventOrder = "date DESC, id DESC"
