package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SessionStatusPending   = "pending"
	SessionStatusConfirmed = "confirmed"
	SessionStatusCompleted = "completed"
	SessionStatusCancelled = "cancelled"
)

// Session is one tutoring meeting between a tutor and a student. Times are
// stored as zero-padded "15:04" strings so the [start,end) overlap test is a
// plain string comparison. The partial unique index is the last-resort guard
// against two requests racing past the conflict check for the same slot.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TutorID   uuid.UUID `gorm:"not null;uniqueIndex:idx_sessions_tutor_slot" json:"tutor_id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`

	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_sessions_tutor_slot" json:"date"`
	StartTime string    `gorm:"size:5;not null;uniqueIndex:idx_sessions_tutor_slot,where:status = 'pending' OR status = 'confirmed'" json:"start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"end_time"`
	Duration  int       `gorm:"not null" json:"duration"`

	Subject  string `gorm:"size:100;not null" json:"subject"`
	Location string `gorm:"size:200" json:"location"`
	Notes    string `gorm:"type:text" json:"notes"`

	Status string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	Amount float64 `gorm:"type:numeric(8,2);not null" json:"amount"`
	IsPaid bool    `gorm:"default:false" json:"is_paid"`

	Tutor   Tutor `gorm:"foreignkey:TutorID" json:"tutor,omitempty"`
	Student User  `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StartInstant combines the calendar date with the start time in the local
// timezone. The 24-hour cancellation window is measured against it.
func (s *Session) StartInstant() time.Time {
	t, _ := time.Parse("15:04", s.StartTime)
	return time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), t.Hour(), t.Minute(), 0, 0, time.Local)
}
