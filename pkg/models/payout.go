package models

import (
	"time"

	"gorm.io/gorm"
)

type PayoutStatus string

const (
	PayoutPending  PayoutStatus = "pending"
	PayoutPaid     PayoutStatus = "paid"
	PayoutRejected PayoutStatus = "rejected"
)

type PayoutRequest struct {
	ID                string       `gorm:"type:uuid;primary_key" json:"id"`
	UserID            string       `gorm:"type:uuid;not null;index" json:"user_id"`
	AmountCents       int64        `gorm:"not null;check:chk_payout_amount,amount_cents > 0" json:"amount_cents"`
	DestinationHandle string       `gorm:"type:varchar(320);not null" json:"destination_handle"`
	Status            PayoutStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AdminNotes        *string      `gorm:"type:text" json:"admin_notes,omitempty"`
	ProcessedAt       *time.Time   `json:"processed_at,omitempty"`
	CreatedAt         time.Time    `gorm:"not null" json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

func (PayoutRequest) TableName() string {
	return "payout_requests"
}

func (p *PayoutRequest) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// PayoutProfile is the payout destination a user keeps on file.
type PayoutProfile struct {
	UserID            string    `gorm:"type:uuid;primary_key" json:"user_id"`
	DestinationHandle string    `gorm:"type:varchar(320);not null" json:"destination_handle"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (PayoutProfile) TableName() string {
	return "payout_profiles"
}

// All lists every table for AutoMigrate in tests and local development.
func All() []any {
	return []any{&Submission{}, &EarningsLedger{}, &PayoutRequest{}, &PayoutProfile{}}
}
