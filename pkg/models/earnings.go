package models

import "time"

// EarningsLedger holds the running totals for one user, in cents.
type EarningsLedger struct {
	UserID           string    `gorm:"type:uuid;primary_key" json:"user_id"`
	TotalEarnedCents int64     `gorm:"not null;default:0;check:chk_ledger_earned,total_earned_cents >= 0" json:"total_earned_cents"`
	TotalPaidCents   int64     `gorm:"not null;default:0;check:chk_ledger_paid,total_paid_cents >= 0 AND total_paid_cents <= total_earned_cents" json:"total_paid_cents"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (EarningsLedger) TableName() string {
	return "earnings_ledgers"
}
