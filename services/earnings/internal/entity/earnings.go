package entity

import (
	"encoding/json"
	"time"
)

type PayoutStatus string

const (
	PayoutStatusPending  PayoutStatus = "pending"
	PayoutStatusPaid     PayoutStatus = "paid"
	PayoutStatusRejected PayoutStatus = "rejected"
)

// Balance is a user's ledger position at one instant, in cents.
type Balance struct {
	EarnedCents  int64
	PaidCents    int64
	PendingCents int64
}

// AvailableCents is what may still be requested: pending requests already
// reserve part of the earned total.
func (b Balance) AvailableCents() int64 {
	available := b.EarnedCents - b.PaidCents - b.PendingCents
	if available < 0 {
		return 0
	}
	return available
}

type EarningsSummary struct {
	TotalEarned   json.Number `json:"totalEarnedDollars"`
	TotalPaid     json.Number `json:"totalPaidDollars"`
	PendingPayout json.Number `json:"pendingPayoutDollars"`
	Available     json.Number `json:"availableDollars"`
}

type PayoutRequest struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId"`
	AmountCents       int64        `json:"amountCents"`
	Amount            json.Number  `json:"amount"`
	DestinationHandle string       `json:"destinationHandle"`
	Status            PayoutStatus `json:"status"`
	CreatedAt         time.Time    `json:"createdAt"`
	ProcessedAt       *time.Time   `json:"processedAt,omitempty"`
	AdminNotes        *string      `json:"adminNotes,omitempty"`
}

type PayoutProfile struct {
	UserID            string    `json:"userId"`
	DestinationHandle string    `json:"destinationHandle"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
