package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	PhoneNumber *string `gorm:"size:15" json:"phone_number"`
	StudentID   *string `gorm:"size:20" json:"student_id"`
	University  *string `gorm:"size:200" json:"university"`
	Course      *string `gorm:"size:100" json:"course"`
	YearOfStudy *int    `json:"year_of_study"`
	Location    *string `gorm:"size:200" json:"location"`
	Bio         *string `gorm:"type:text" json:"bio"`

	Points int      `gorm:"default:0" json:"points"`
	Badges []*Badge `json:"badges,omitempty"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	IsVerified        bool    `gorm:"default:false" json:"is_verified"`
	VerificationCode  *string `gorm:"size:6" json:"-"`
	IsActive          bool    `gorm:"default:true" json:"-"`

	ResetPasswordToken          *string    `gorm:"size:64" json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
