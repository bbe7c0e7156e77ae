package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resource types: notes, past_paper, slides, textbook, assignment, other.
type Resource struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	ResourceType string `gorm:"size:50;not null" json:"resource_type"`
	Subject      string `gorm:"size:100;not null;index" json:"subject"`
	CourseCode   string `gorm:"size:20;not null;index" json:"course_code"`
	FileURL      string `gorm:"size:500;not null" json:"file_url"`

	Downloads     int     `gorm:"default:0" json:"downloads"`
	AverageRating float64 `gorm:"type:numeric(3,2);default:0" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`
	IsApproved    bool    `gorm:"default:false" json:"is_approved"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (r *Resource) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type ResourceReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ResourceID uuid.UUID `gorm:"not null;uniqueIndex:idx_resource_user_review" json:"resource_id"`
	UserID     uuid.UUID `gorm:"not null;uniqueIndex:idx_resource_user_review" json:"user_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`

	Resource Resource `gorm:"foreignkey:ResourceID" json:"-"`
	User     User     `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ResourceReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
