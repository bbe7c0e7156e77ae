package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Certificate records a tutoring milestone (10 completed sessions with the
// same tutor in the same subject) and points at the rendered PDF.
type Certificate struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID uuid.UUID `gorm:"not null;index" json:"student_id"`
	TutorID   uuid.UUID `gorm:"not null" json:"tutor_id"`

	Subject        string    `gorm:"size:100;not null" json:"subject"`
	CourseTitle    string    `gorm:"size:255;not null" json:"course_title"`
	CompletionDate time.Time `json:"completion_date"`
	CertificateURL string    `gorm:"size:500" json:"certificate_url"`

	Student User  `gorm:"foreignkey:StudentID" json:"-"`
	Tutor   Tutor `gorm:"foreignkey:TutorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Certificate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
