package persistent

import (
	"context"
	"errors"
	"time"

	"pullup-club/pkg/database"
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/models"
	"pullup-club/services/admin/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AdminRepository interface {
	Transaction(ctx context.Context, fn func(tx AdminRepository) error) error

	ListPendingSubmissions(ctx context.Context, limit, offset int) ([]*entity.Submission, error)
	// GetSubmission loads a submission by id, locking it inside a transaction.
	GetSubmission(ctx context.Context, id string) (*entity.Submission, error)
	// CloseSubmission moves a pending submission to its reviewed state.
	CloseSubmission(ctx context.Context, submission *entity.Submission) error
	CreditLedger(ctx context.Context, userID string, cents int64) error

	ListPendingPayouts(ctx context.Context, limit, offset int) ([]*entity.PayoutRequest, error)
	GetPayoutRequest(ctx context.Context, id string) (*entity.PayoutRequest, error)
	ClosePayoutRequest(ctx context.Context, request *entity.PayoutRequest) error
	// RecordPaid adds cents to the user's paid total. It fails when the
	// result would exceed the earned total.
	RecordPaid(ctx context.Context, userID string, cents int64) error
}

type adminRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Transaction(ctx context.Context, fn func(tx AdminRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&adminRepository{db: tx, inTx: true})
	})
	return database.Translate(err)
}

func (r *adminRepository) locked(ctx context.Context) *gorm.DB {
	query := r.db.WithContext(ctx)
	if r.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return query
}

func (r *adminRepository) ListPendingSubmissions(ctx context.Context, limit, offset int) ([]*entity.Submission, error) {
	var submissionModels []models.Submission
	query := r.db.WithContext(ctx).
		Where("status = ?", models.SubmissionPending).
		Order("submitted_at ASC").
		Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if err := query.Find(&submissionModels).Error; err != nil {
		return nil, database.Translate(err)
	}

	submissions := make([]*entity.Submission, len(submissionModels))
	for i := range submissionModels {
		submissions[i] = ToSubmissionEntity(&submissionModels[i])
	}
	return submissions, nil
}

func (r *adminRepository) GetSubmission(ctx context.Context, id string) (*entity.Submission, error) {
	var submission models.Submission
	if err := r.locked(ctx).Where("id = ?", id).Take(&submission).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errutil.NotFound("submission not found")
		}
		return nil, database.Translate(err)
	}
	return ToSubmissionEntity(&submission), nil
}

func (r *adminRepository) CloseSubmission(ctx context.Context, submission *entity.Submission) error {
	result := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Where("id = ? AND status = ?", submission.ID, models.SubmissionPending).
		Updates(map[string]interface{}{
			"status":                 submission.Status,
			"approved_pull_up_count": submission.ApprovedPullUpCount,
			"approved_at":            submission.ApprovedAt,
			"notes":                  submission.Notes,
		})
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errutil.InvalidTransition("submission is no longer pending", submission.Status)
	}
	return nil
}

func (r *adminRepository) CreditLedger(ctx context.Context, userID string, cents int64) error {
	ledger := models.EarningsLedger{UserID: userID, TotalEarnedCents: cents}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_earned_cents": gorm.Expr("earnings_ledgers.total_earned_cents + ?", cents),
			"updated_at":         time.Now().UTC(),
		}),
	}).Create(&ledger).Error
	return database.Translate(err)
}

func (r *adminRepository) ListPendingPayouts(ctx context.Context, limit, offset int) ([]*entity.PayoutRequest, error) {
	var requestModels []models.PayoutRequest
	query := r.db.WithContext(ctx).
		Where("status = ?", models.PayoutPending).
		Order("created_at ASC").
		Order("id ASC")
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

func (r *adminRepository) GetPayoutRequest(ctx context.Context, id string) (*entity.PayoutRequest, error) {
	var request models.PayoutRequest
	if err := r.locked(ctx).Where("id = ?", id).Take(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errutil.NotFound("payout request not found")
		}
		return nil, database.Translate(err)
	}
	return ToPayoutRequestEntity(&request), nil
}

func (r *adminRepository) ClosePayoutRequest(ctx context.Context, request *entity.PayoutRequest) error {
	result := r.db.WithContext(ctx).
		Model(&models.PayoutRequest{}).
		Where("id = ? AND status = ?", request.ID, models.PayoutPending).
		Updates(map[string]interface{}{
			"status":       request.Status,
			"processed_at": request.ProcessedAt,
			"admin_notes":  request.AdminNotes,
		})
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return errutil.InvalidTransition("payout request is no longer pending", request.Status)
	}
	return nil
}

func (r *adminRepository) RecordPaid(ctx context.Context, userID string, cents int64) error {
	var ledger models.EarningsLedger
	err := r.locked(ctx).Where("user_id = ?", userID).Take(&ledger).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errutil.InvalidTransition("no earnings on record for this user", string(models.PayoutPending))
	}
	if err != nil {
		return database.Translate(err)
	}

	if ledger.TotalPaidCents+cents > ledger.TotalEarnedCents {
		return errutil.InvalidTransition("payout exceeds the user's unpaid earnings", string(models.PayoutPending))
	}

	err = r.db.WithContext(ctx).
		Model(&models.EarningsLedger{}).
		Where("user_id = ?", userID).
		Update("total_paid_cents", gorm.Expr("total_paid_cents + ?", cents)).Error
	return database.Translate(err)
}
