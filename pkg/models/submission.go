package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

type Submission struct {
	ID                  string           `gorm:"type:uuid;primary_key" json:"id"`
	UserID              string           `gorm:"type:uuid;not null;index:idx_submissions_user_recent,priority:1;uniqueIndex:ux_submissions_one_pending,where:status = 'pending'" json:"user_id"`
	VideoURL            string           `gorm:"type:varchar(500);not null" json:"video_url"`
	Platform            string           `gorm:"type:varchar(20);not null" json:"platform"`
	PullUpCount         int              `gorm:"not null;check:chk_submissions_count,pull_up_count >= 0" json:"pull_up_count"`
	Status              SubmissionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	SubmittedAt         time.Time        `gorm:"not null;index:idx_submissions_user_recent,priority:2,sort:desc" json:"submitted_at"`
	ApprovedPullUpCount *int             `json:"approved_pull_up_count,omitempty"`
	ApprovedAt          *time.Time       `json:"approved_at,omitempty"`
	Notes               *string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

func (Submission) TableName() string {
	return "submissions"
}

func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	return nil
}

// NewID returns a time-ordered UUIDv7 so that ordering by id breaks ties
// between rows written in the same instant.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
