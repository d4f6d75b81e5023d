package usecase

import (
	"time"

	"pullup-club/services/submission/internal/entity"
)

// Evaluate decides whether a user whose most recent submission is latest may
// submit again at now. latest is nil when the user has never submitted.
//
// A pending submission always blocks. A moderated one blocks until
// submittedAt+cooldown; a submittedAt later than now is treated as still
// cooling down rather than as an error.
func Evaluate(latest *entity.Submission, now time.Time, cooldown time.Duration) entity.Eligibility {
	if latest == nil {
		return entity.Eligibility{Allowed: true}
	}

	if latest.Status == entity.StatusPending {
		return entity.Eligibility{Reason: entity.ReasonPendingReviewExists}
	}

	boundary := latest.SubmittedAt.Add(cooldown)
	if now.Before(latest.SubmittedAt) || now.Before(boundary) {
		next := boundary.UTC()
		return entity.Eligibility{Reason: entity.ReasonCooldownActive, NextAllowedAt: &next}
	}

	return entity.Eligibility{Allowed: true}
}
