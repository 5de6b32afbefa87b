package model

type Attendee struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	EventID    uint       `gorm:"not null;index" json:"event_id"`
	Name       string     `gorm:"size:100;not null" json:"name"`
	Email      string     `gorm:"size:254;not null" json:"email"`
	Phone      string     `gorm:"size:20" json:"phone"`
	RSVPStatus RSVPStatus `gorm:"column:rsvp_status;size:20;not null;default:Pending" json:"rsvp_status"`

	Event Event `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

const AttendeeOrder = "id ASC"
