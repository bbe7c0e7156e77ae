package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeMessage     = "message"
	NotificationTypeApplication = "application"
	NotificationTypeBooking     = "booking"
	NotificationTypeMatch       = "match"
	NotificationTypeReview      = "review"
	NotificationTypeSystem      = "system"
)

type Notification struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID `gorm:"not null;index" json:"-"`
	NotificationType string    `gorm:"size:20;not null" json:"notification_type"`
	Title            string    `gorm:"size:200;not null" json:"title"`
	Message          string    `gorm:"type:text" json:"message"`
	Link             string    `gorm:"size:500" json:"link"`
	IsRead           bool      `gorm:"default:false" json:"is_read"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
