package persistent

import (
	"context"
	"errors"

	"pullup-club/pkg/database"
	"pullup-club/pkg/models"
	"pullup-club/services/earnings/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EarningsRepository interface {
	Transaction(ctx context.Context, fn func(tx EarningsRepository) error) error
	// Balance reads the ledger totals and the sum of pending requests. Inside
	// a transaction the ledger row stays locked until commit. A user without
	// a ledger row has a zero balance.
	Balance(ctx context.Context, userID string) (entity.Balance, error)
	CreatePayoutRequest(ctx context.Context, request *entity.PayoutRequest) error
	ListPayoutRequests(ctx context.Context, userID string, limit, offset int) ([]*entity.PayoutRequest, error)
	GetPayoutProfile(ctx context.Context, userID string) (*entity.PayoutProfile, error)
	SavePayoutProfile(ctx context.Context, userID, destinationHandle string) (*entity.PayoutProfile, error)
}

type earningsRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewEarningsRepository(db *gorm.DB) EarningsRepository {
	return &earningsRepository{db: db}
}

func (r *earningsRepository) Transaction(ctx context.Context, fn func(tx EarningsRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&earningsRepository{db: tx, inTx: true})
	})
	return database.Translate(err)
}

func (r *earningsRepository) Balance(ctx context.Context, userID string) (entity.Balance, error) {
	query := r.db.WithContext(ctx)
	if r.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ledger models.EarningsLedger
	err := query.Where("user_id = ?", userID).Take(&ledger).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Balance{}, database.Translate(err)
	}

	var pending int64
	err = r.db.WithContext(ctx).
		Model(&models.PayoutRequest{}).
		Where("user_id = ? AND status = ?", userID, models.PayoutPending).
		Select("COALESCE(SUM(amount_cents), 0)").
		Scan(&pending).Error
	if err != nil {
		return entity.Balance{}, database.Translate(err)
	}

	return entity.Balance{
		EarnedCents:  ledger.TotalEarnedCents,
		PaidCents:    ledger.TotalPaidCents,
		PendingCents: pending,
	}, nil
}

func (r *earningsRepository) CreatePayoutRequest(ctx context.Context, request *entity.PayoutRequest) error {
	requestModel := ToPayoutRequestModel(request)
	if err := r.db.WithContext(ctx).Create(requestModel).Error; err != nil {
		return database.Translate(err)
	}
	*request = *ToPayoutRequestEntity(requestModel)
	return nil
}

func (r *earningsRepository) ListPayoutRequests(ctx context.Context, userID string, limit, offset int) ([]*entity.PayoutRequest, error) {
	var requestModels []models.PayoutRequest
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, database.Translate(err)
	}

	requests := make([]*entity.PayoutRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = ToPayoutRequestEntity(&requestModels[i])
	}
	return requests, nil
}

func (r *earningsRepository) GetPayoutProfile(ctx context.Context, userID string) (*entity.PayoutProfile, error) {
	var profile models.PayoutProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Translate(err)
	}
	return ToPayoutProfileEntity(&profile), nil
}

func (r *earningsRepository) SavePayoutProfile(ctx context.Context, userID, destinationHandle string) (*entity.PayoutProfile, error) {
	profile := models.PayoutProfile{UserID: userID, DestinationHandle: destinationHandle}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"destination_handle", "updated_at"}),
	}).Create(&profile).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return r.GetPayoutProfile(ctx, userID)
}
