package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TutorReview holds at most one review per (tutor, student) pair; a second
// submission updates the existing row. IsVerified marks reviews backed by a
// completed session between the two parties.
type TutorReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TutorID   uuid.UUID `gorm:"not null;uniqueIndex:idx_tutor_student_review" json:"tutor_id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_tutor_student_review" json:"student_id"`

	Rating        int `gorm:"not null" json:"rating"`
	Knowledge     int `gorm:"not null" json:"knowledge"`
	Communication int `gorm:"not null" json:"communication"`
	Punctuality   int `gorm:"not null" json:"punctuality"`
	Helpfulness   int `gorm:"not null" json:"helpfulness"`

	Comment    string `gorm:"type:text" json:"comment"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`

	Tutor   Tutor `gorm:"foreignkey:TutorID" json:"-"`
	Student User  `gorm:"foreignkey:StudentID" json:"student,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *TutorReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
