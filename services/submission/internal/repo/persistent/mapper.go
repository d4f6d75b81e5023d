package persistent

import (
	"pullup-club/pkg/models"
	"pullup-club/services/submission/internal/entity"
)

func ToSubmissionEntity(m *models.Submission) *entity.Submission {
	if m == nil {
		return nil
	}

	return &entity.Submission{
		ID:                  m.ID,
		UserID:              m.UserID,
		VideoURL:            m.VideoURL,
		Platform:            entity.Platform(m.Platform),
		PullUpCount:         m.PullUpCount,
		Status:              entity.SubmissionStatus(m.Status),
		SubmittedAt:         m.SubmittedAt.UTC(),
		ApprovedPullUpCount: m.ApprovedPullUpCount,
		ApprovedAt:          m.ApprovedAt,
		Notes:               m.Notes,
	}
}

func ToSubmissionModel(e *entity.Submission) *models.Submission {
	if e == nil {
		return nil
	}

	return &models.Submission{
		ID:                  e.ID,
		UserID:              e.UserID,
		VideoURL:            e.VideoURL,
		Platform:            string(e.Platform),
		PullUpCount:         e.PullUpCount,
		Status:              models.SubmissionStatus(e.Status),
		SubmittedAt:         e.SubmittedAt,
		ApprovedPullUpCount: e.ApprovedPullUpCount,
		ApprovedAt:          e.ApprovedAt,
		Notes:               e.Notes,
	}
}
