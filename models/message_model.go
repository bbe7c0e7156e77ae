package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SenderID   uuid.UUID `gorm:"not null;index" json:"sender_id"`
	ReceiverID uuid.UUID `gorm:"not null;index" json:"receiver_id"`
	Subject    string    `gorm:"size:200" json:"subject"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`

	Sender   User `gorm:"foreignkey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignkey:ReceiverID" json:"receiver,omitempty"`

	SentAt time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
