package persistent

import (
	"pullup-club/pkg/models"
	"pullup-club/pkg/money"
	"pullup-club/services/admin/internal/entity"
)

func ToSubmissionEntity(m *models.Submission) *entity.Submission {
	return &entity.Submission{
		ID:                  m.ID,
		UserID:              m.UserID,
		VideoURL:            m.VideoURL,
		Platform:            m.Platform,
		PullUpCount:         m.PullUpCount,
		Status:              string(m.Status),
		SubmittedAt:         m.SubmittedAt.UTC(),
		ApprovedPullUpCount: m.ApprovedPullUpCount,
		ApprovedAt:          m.ApprovedAt,
		Notes:               m.Notes,
	}
}

func ToPayoutRequestEntity(m *models.PayoutRequest) *entity.PayoutRequest {
	return &entity.PayoutRequest{
		ID:                m.ID,
		UserID:            m.UserID,
		AmountCents:       m.AmountCents,
		Amount:            money.Dollars(m.AmountCents),
		DestinationHandle: m.DestinationHandle,
		Status:            string(m.Status),
		CreatedAt:         m.CreatedAt.UTC(),
		ProcessedAt:       m.ProcessedAt,
		AdminNotes:        m.AdminNotes,
	}
}
