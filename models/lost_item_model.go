package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LostItemStatusLost     = "lost"
	LostItemStatusFound    = "found"
	LostItemStatusReturned = "returned"
	LostItemStatusClaimed  = "claimed"
)

// Lost-and-found categories: electronics, documents, clothing, accessories,
// books, keys, wallet, other.
type LostItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Status      string    `gorm:"size:20;not null;default:'lost';index" json:"status"`

	LocationLost  string     `gorm:"size:200" json:"location_lost"`
	LocationFound string     `gorm:"size:200" json:"location_found"`
	DateLost      time.Time  `gorm:"type:date;not null" json:"date_lost"`
	DateFound     *time.Time `gorm:"type:date" json:"date_found"`

	ImageURL    *string  `gorm:"size:500" json:"image_url"`
	ContactInfo string   `gorm:"size:200" json:"contact_info"`
	Reward      *float64 `gorm:"type:numeric(10,2)" json:"reward"`
	IsResolved  bool     `gorm:"default:false" json:"is_resolved"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *LostItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

type FoundItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	LostItemID *uuid.UUID `json:"lost_item_id"`
	UserID     uuid.UUID  `gorm:"not null;index" json:"user_id"`

	Title         string    `gorm:"size:200;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	Category      string    `gorm:"size:50;not null;index" json:"category"`
	LocationFound string    `gorm:"size:200" json:"location_found"`
	DateFound     time.Time `gorm:"type:date;not null" json:"date_found"`

	ImageURL    *string `gorm:"size:500" json:"image_url"`
	ContactInfo string  `gorm:"size:200" json:"contact_info"`
	IsClaimed   bool    `gorm:"default:false" json:"is_claimed"`

	LostItem *LostItem `gorm:"foreignkey:LostItemID" json:"lost_item,omitempty"`
	User     User      `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f *FoundItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
