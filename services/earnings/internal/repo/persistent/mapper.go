package persistent

import (
	"pullup-club/pkg/models"
	"pullup-club/pkg/money"
	"pullup-club/services/earnings/internal/entity"
)

func ToPayoutRequestEntity(m *models.PayoutRequest) *entity.PayoutRequest {
	if m == nil {
		return nil
	}

	return &entity.PayoutRequest{
		ID:                m.ID,
		UserID:            m.UserID,
		AmountCents:       m.AmountCents,
		Amount:            money.Dollars(m.AmountCents),
		DestinationHandle: m.DestinationHandle,
		Status:            entity.PayoutStatus(m.Status),
		CreatedAt:         m.CreatedAt.UTC(),
		ProcessedAt:       m.ProcessedAt,
		AdminNotes:        m.AdminNotes,
	}
}

func ToPayoutRequestModel(e *entity.PayoutRequest) *models.PayoutRequest {
	if e == nil {
		return nil
	}

	return &models.PayoutRequest{
		ID:                e.ID,
		UserID:            e.UserID,
		AmountCents:       e.AmountCents,
		DestinationHandle: e.DestinationHandle,
		Status:            models.PayoutStatus(e.Status),
		CreatedAt:         e.CreatedAt,
		ProcessedAt:       e.ProcessedAt,
		AdminNotes:        e.AdminNotes,
	}
}

func ToPayoutProfileEntity(m *models.PayoutProfile) *entity.PayoutProfile {
	if m == nil {
		return nil
	}

	return &entity.PayoutProfile{
		UserID:            m.UserID,
		DestinationHandle: m.DestinationHandle,
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
}
