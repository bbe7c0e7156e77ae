package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories: printing, repair, laundry, food, stationery,
// accommodation, transport, other.
type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index" json:"user_id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Location    string    `gorm:"size:200" json:"location"`

	ContactNumber string `gorm:"size:20" json:"contact_number"`
	ContactEmail  string `gorm:"size:255" json:"contact_email"`
	Website       string `gorm:"size:255" json:"website"`
	OpeningHours  string `gorm:"type:text" json:"opening_hours"`
	PriceRange    string `gorm:"size:50" json:"price_range"`

	AverageRating float64 `gorm:"type:numeric(3,2);default:0" json:"average_rating"`
	TotalReviews  int     `gorm:"default:0" json:"total_reviews"`
	IsVerified    bool    `gorm:"default:false" json:"is_verified"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type ServiceReview struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ServiceID uuid.UUID `gorm:"not null;uniqueIndex:idx_service_user_review" json:"service_id"`
	UserID    uuid.UUID `gorm:"not null;uniqueIndex:idx_service_user_review" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`

	Service Service `gorm:"foreignkey:ServiceID" json:"-"`
	User    User    `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *ServiceReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
