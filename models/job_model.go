package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Job categories: typing, design, errands, academic, photography, tutoring,
// tech, writing, other.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50;not null;index" json:"category"`
	Location    string    `gorm:"size:200" json:"location"`

	Budget         float64 `gorm:"type:numeric(10,2);not null" json:"budget"`
	BudgetType     string  `gorm:"size:20;not null;default:'fixed'" json:"budget_type"`
	Duration       string  `gorm:"size:100" json:"duration"`
	SkillsRequired string  `gorm:"type:text" json:"skills_required"`
	Status         string  `gorm:"size:20;not null;default:'open';index" json:"status"`

	User User `gorm:"foreignkey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusAccepted  = "accepted"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusWithdrawn = "withdrawn"
)

type JobApplication struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JobID       uuid.UUID `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID uuid.UUID `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`

	CoverLetter  string   `gorm:"type:text;not null" json:"cover_letter"`
	ProposedRate *float64 `gorm:"type:numeric(10,2)" json:"proposed_rate"`
	Status       string   `gorm:"size:20;not null;default:'pending'" json:"status"`

	Job       Job  `gorm:"foreignkey:JobID" json:"job,omitempty"`
	Applicant User `gorm:"foreignkey:ApplicantID" json:"applicant,omitempty"`

	AppliedAt time.Time `gorm:"autoCreateTime" json:"applied_at"`
}

func (a *JobApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
