package entity

import (
	"encoding/json"
	"time"
)

type Submission struct {
	ID                  string     `json:"id"`
	UserID              string     `json:"userId"`
	VideoURL            string     `json:"videoUrl"`
	Platform            string     `json:"platform"`
	PullUpCount         int        `json:"pullUpCount"`
	Status              string     `json:"status"`
	SubmittedAt         time.Time  `json:"submittedAt"`
	ApprovedPullUpCount *int       `json:"approvedPullUpCount,omitempty"`
	ApprovedAt          *time.Time `json:"approvedAt,omitempty"`
	Notes               *string    `json:"notes,omitempty"`
}

// Review is the outcome of approving a submission, including the amount
// credited to the member's ledger.
type Review struct {
	Submission *Submission `json:"submission"`
	Credited   json.Number `json:"creditedDollars"`
}

type PayoutRequest struct {
	ID                string      `json:"id"`
	UserID            string      `json:"userId"`
	AmountCents       int64       `json:"amountCents"`
	Amount            json.Number `json:"amount"`
	DestinationHandle string      `json:"destinationHandle"`
	Status            string      `json:"status"`
	CreatedAt         time.Time   `json:"createdAt"`
	ProcessedAt       *time.Time  `json:"processedAt,omitempty"`
	AdminNotes        *string     `json:"adminNotes,omitempty"`
}

// PayoutExport describes a CSV batch of pending payouts handed to the
// payment provider.
type PayoutExport struct {
	Key   string      `json:"key"`
	URL   string      `json:"url"`
	Count int         `json:"count"`
	Total json.Number `json:"totalDollars"`
}
