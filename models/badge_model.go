package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Badge types awarded by the gamification service: tutor, expert, helper,
// finder, active, verified.
type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;uniqueIndex:idx_user_badge_type" json:"-"`
	BadgeType   string    `gorm:"size:20;not null;uniqueIndex:idx_user_badge_type" json:"badge_type"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`

	User User `gorm:"foreignkey:UserID" json:"-"`

	AwardedAt time.Time `gorm:"autoCreateTime" json:"awarded_at"`
}

func (b *Badge) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
