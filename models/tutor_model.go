package models

import (
	"time"

	"github.com/google/uuid"
)

// Tutor subjects: programming, mathematics, physics, chemistry, biology,
// business, engineering, languages, arts, other.
type Tutor struct {
	UserID         uuid.UUID `gorm:"primary_key" json:"user_id"`
	Subjects       string    `gorm:"size:200;not null" json:"subjects"`
	PrimarySubject string    `gorm:"size:50;not null" json:"primary_subject"`
	YearOfStudy    string    `gorm:"size:20" json:"year_of_study"`
	HourlyRate     float64   `gorm:"type:numeric(6,2);not null" json:"hourly_rate"`
	Bio            string    `gorm:"type:text" json:"bio"`
	Qualifications string    `gorm:"type:text" json:"qualifications"`
	IsAvailable    bool      `gorm:"default:true" json:"is_available"`

	// Derived fields, recomputed inside the transaction that changes their
	// source data. Never edited directly.
	Rating        float64 `gorm:"type:numeric(3,2);default:0" json:"rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`
	TotalSessions int     `gorm:"default:0" json:"total_sessions"`
	TotalHours    float64 `gorm:"type:numeric(8,2);default:0" json:"total_hours"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
