package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyHours maps a weekday name ("Monday".."Sunday") to the hour-of-day
// slots (0-23) a tutor accepts bookings in.
type WeeklyHours map[string][]int

// TutorAvailability holds one tutor's recurring weekly open hours. The
// mapping is always replaced whole; there is no history.
type TutorAvailability struct {
	ID      uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	TutorID uuid.UUID   `gorm:"not null;unique" json:"-"`
	Hours   WeeklyHours `gorm:"serializer:json;type:text" json:"hours"`

	Tutor Tutor `gorm:"foreignkey:TutorID" json:"-"`
}

func (a *TutorAvailability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
