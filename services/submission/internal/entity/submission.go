package entity

import "time"

type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"
)

type Submission struct {
	ID                  string           `json:"id"`
	UserID              string           `json:"userId"`
	VideoURL            string           `json:"videoUrl"`
	Platform            Platform         `json:"platform"`
	PullUpCount         int              `json:"pullUpCount"`
	Status              SubmissionStatus `json:"status"`
	SubmittedAt         time.Time        `json:"submittedAt"`
	ApprovedPullUpCount *int             `json:"approvedPullUpCount,omitempty"`
	ApprovedAt          *time.Time       `json:"approvedAt,omitempty"`
	Notes               *string          `json:"notes,omitempty"`
}

type EligibilityReason string

const (
	ReasonPendingReviewExists EligibilityReason = "PendingReviewExists"
	ReasonCooldownActive      EligibilityReason = "CooldownActive"
)

type Eligibility struct {
	Allowed       bool              `json:"allowed"`
	Reason        EligibilityReason `json:"reason,omitempty"`
	NextAllowedAt *time.Time        `json:"nextAllowedAt,omitempty"`
}

type LeaderboardEntry struct {
	Rank                int    `json:"rank"`
	UserID              string `json:"userId"`
	BestPullUpCount     int    `json:"bestPullUpCount"`
	ApprovedSubmissions int64  `json:"approvedSubmissions"`
}
