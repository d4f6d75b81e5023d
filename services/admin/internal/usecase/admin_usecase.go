package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"pullup-club/pkg/cache"
	"pullup-club/pkg/clock"
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/models"
	"pullup-club/pkg/money"
	"pullup-club/pkg/queue"
	"pullup-club/pkg/s3"
	"pullup-club/services/admin/internal/entity"
	"pullup-club/services/admin/internal/repo/inbox"
	"pullup-club/services/admin/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

type ApproveInput struct {
	ApprovedPullUpCount int
	// RewardDollars overrides the per-pull-up rate when set.
	RewardDollars *decimal.Decimal
	Notes         *string
}

type AdminUseCase interface {
	ListPendingSubmissions(ctx context.Context, limit, offset int) ([]*entity.Submission, error)
	ApproveSubmission(ctx context.Context, adminID, submissionID string, input ApproveInput) (*entity.Review, error)
	RejectSubmission(ctx context.Context, adminID, submissionID string, notes *string) (*entity.Submission, error)

	ListPendingPayouts(ctx context.Context, limit, offset int) ([]*entity.PayoutRequest, error)
	MarkPayoutPaid(ctx context.Context, adminID, payoutID string, notes *string) (*entity.PayoutRequest, error)
	RejectPayout(ctx context.Context, adminID, payoutID string, notes *string) (*entity.PayoutRequest, error)
	ExportPendingPayouts(ctx context.Context) (*entity.PayoutExport, error)

	HandleNotification(ctx context.Context, n queue.Notification) error
	Inbox(ctx context.Context, limit int) ([]queue.Notification, error)
}

type adminUseCase struct {
	adminRepo            persistent.AdminRepository
	inbox                inbox.Store
	uploader             s3.Uploader
	redisClient          *redis.Client
	clock                clock.Clock
	rewardPerPullUpCents int64
	logger               *logger.Logger
}

// NewAdminUseCase wires the moderation workflow. inboxStore, uploader and
// redisClient may each be nil; the features depending on them then report
// StoreUnavailable or are skipped.
func NewAdminUseCase(
	adminRepo persistent.AdminRepository,
	inboxStore inbox.Store,
	uploader s3.Uploader,
	redisClient *redis.Client,
	clk clock.Clock,
	rewardPerPullUpCents int64,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		adminRepo:            adminRepo,
		inbox:                inboxStore,
		uploader:             uploader,
		redisClient:          redisClient,
		clock:                clk,
		rewardPerPullUpCents: rewardPerPullUpCents,
		logger:               logger,
	}
}

func (uc *adminUseCase) ListPendingSubmissions(ctx context.Context, limit, offset int) ([]*entity.Submission, error) {
	submissions, err := uc.adminRepo.ListPendingSubmissions(ctx, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list pending submissions: %v", err)
		return nil, err
	}
	return submissions, nil
}

func (uc *adminUseCase) rewardCents(input ApproveInput) (int64, error) {
	if input.RewardDollars == nil {
		cents, err := money.MulCents(int64(input.ApprovedPullUpCount), uc.rewardPerPullUpCents)
		if err != nil {
			return 0, errutil.Validation("approvedPullUpCount", "approvedPullUpCount is too large for the configured reward rate")
		}
		return cents, nil
	}
	if input.RewardDollars.IsZero() {
		return 0, nil
	}
	cents, err := money.ParseCents(*input.RewardDollars)
	if err != nil {
		return 0, errutil.Validation("rewardDollars", err.Error())
	}
	return cents, nil
}

func (uc *adminUseCase) ApproveSubmission(ctx context.Context, adminID, submissionID string, input ApproveInput) (*entity.Review, error) {
	if input.ApprovedPullUpCount < 0 {
		return nil, errutil.Validation("approvedPullUpCount", "approvedPullUpCount must be zero or greater")
	}
	reward, err := uc.rewardCents(input)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	var approved *entity.Submission
	err = uc.adminRepo.Transaction(ctx, func(tx persistent.AdminRepository) error {
		submission, err := tx.GetSubmission(ctx, submissionID)
		if err != nil {
			return err
		}
		if submission.Status != string(models.SubmissionPending) {
			return errutil.InvalidTransition("only pending submissions can be approved", submission.Status)
		}

		count := input.ApprovedPullUpCount
		submission.Status = string(models.SubmissionApproved)
		submission.ApprovedPullUpCount = &count
		submission.ApprovedAt = &now
		submission.Notes = input.Notes
		if err := tx.CloseSubmission(ctx, submission); err != nil {
			return err
		}

		if reward > 0 {
			if err := tx.CreditLedger(ctx, submission.UserID, reward); err != nil {
				return err
			}
		}
		approved = submission
		return nil
	})
	if err != nil {
		uc.logger.Warn("Approve submission %s by %s failed: %v", submissionID, adminID, err)
		return nil, err
	}

	uc.invalidateLeaderboard(ctx)
	uc.logger.Info("Submission %s approved by %s with %d pull-ups, credited %s", submissionID, adminID, input.ApprovedPullUpCount, money.Dollars(reward))

	return &entity.Review{Submission: approved, Credited: money.Dollars(reward)}, nil
}

func (uc *adminUseCase) RejectSubmission(ctx context.Context, adminID, submissionID string, notes *string) (*entity.Submission, error) {
	var rejected *entity.Submission
	err := uc.adminRepo.Transaction(ctx, func(tx persistent.AdminRepository) error {
		submission, err := tx.GetSubmission(ctx, submissionID)
		if err != nil {
			return err
		}
		if submission.Status != string(models.SubmissionPending) {
			return errutil.InvalidTransition("only pending submissions can be rejected", submission.Status)
		}

		submission.Status = string(models.SubmissionRejected)
		submission.Notes = notes
		if err := tx.CloseSubmission(ctx, submission); err != nil {
			return err
		}
		rejected = submission
		return nil
	})
	if err != nil {
		uc.logger.Warn("Reject submission %s by %s failed: %v", submissionID, adminID, err)
		return nil, err
	}

	uc.logger.Info("Submission %s rejected by %s", submissionID, adminID)
	return rejected, nil
}

func (uc *adminUseCase) invalidateLeaderboard(ctx context.Context) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Del(ctx, cache.LeaderboardKey).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate leaderboard cache: %v", err)
	}
}

func (uc *adminUseCase) ListPendingPayouts(ctx context.Context, limit, offset int) ([]*entity.PayoutRequest, error) {
	requests, err := uc.adminRepo.ListPendingPayouts(ctx, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list pending payouts: %v", err)
		return nil, err
	}
	return requests, nil
}

func (uc *adminUseCase) MarkPayoutPaid(ctx context.Context, adminID, payoutID string, notes *string) (*entity.PayoutRequest, error) {
	return uc.closePayout(ctx, adminID, payoutID, models.PayoutPaid, notes)
}

func (uc *adminUseCase) RejectPayout(ctx context.Context, adminID, payoutID string, notes *string) (*entity.PayoutRequest, error) {
	return uc.closePayout(ctx, adminID, payoutID, models.PayoutRejected, notes)
}

func (uc *adminUseCase) closePayout(ctx context.Context, adminID, payoutID string, status models.PayoutStatus, notes *string) (*entity.PayoutRequest, error) {
	now := uc.clock.Now()
	var closed *entity.PayoutRequest
	err := uc.adminRepo.Transaction(ctx, func(tx persistent.AdminRepository) error {
		request, err := tx.GetPayoutRequest(ctx, payoutID)
		if err != nil {
			return err
		}
		if request.Status != string(models.PayoutPending) {
			return errutil.InvalidTransition("only pending payout requests can be processed", request.Status)
		}

		if status == models.PayoutPaid {
			if err := tx.RecordPaid(ctx, request.UserID, request.AmountCents); err != nil {
				return err
			}
		}

		request.Status = string(status)
		request.ProcessedAt = &now
		request.AdminNotes = notes
		if err := tx.ClosePayoutRequest(ctx, request); err != nil {
			return err
		}
		closed = request
		return nil
	})
	if err != nil {
		uc.logger.Warn("Marking payout %s as %s by %s failed: %v", payoutID, status, adminID, err)
		return nil, err
	}

	uc.logger.Info("Payout %s marked %s by %s (%s)", payoutID, status, adminID, closed.Amount)
	return closed, nil
}

func (uc *adminUseCase) ExportPendingPayouts(ctx context.Context) (*entity.PayoutExport, error) {
	if uc.uploader == nil {
		return nil, errutil.StoreUnavailable(fmt.Errorf("export storage is not configured"))
	}

	requests, err := uc.adminRepo.ListPendingPayouts(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	body, total, err := payoutCSV(requests)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("payout-exports/%s.csv", uc.clock.Now().UTC().Format("20060102T150405Z"))
	url, err := uc.uploader.Upload(ctx, key, body, "text/csv")
	if err != nil {
		uc.logger.Error("Failed to upload payout export %s: %v", key, err)
		return nil, errutil.StoreUnavailable(err)
	}

	uc.logger.Info("Exported %d pending payouts to %s", len(requests), key)
	return &entity.PayoutExport{
		Key:   key,
		URL:   url,
		Count: len(requests),
		Total: money.Dollars(total),
	}, nil
}

func payoutCSV(requests []*entity.PayoutRequest) ([]byte, int64, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "user_id", "destination", "amount", "requested_at"}); err != nil {
		return nil, 0, err
	}

	var total int64
	for _, r := range requests {
		total += r.AmountCents
		record := []string{
			r.ID,
			r.UserID,
			r.DestinationHandle,
			money.FromCents(r.AmountCents).StringFixed(2),
			r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
		if err := w.Write(record); err != nil {
			return nil, 0, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), total, nil
}

func (uc *adminUseCase) HandleNotification(ctx context.Context, n queue.Notification) error {
	if uc.inbox == nil {
		uc.logger.Warn("Dropping %s notification, inbox storage is not configured", n.Type)
		return nil
	}
	if err := uc.inbox.Push(ctx, n); err != nil {
		return err
	}
	uc.logger.Info("Inbox received %s notification", n.Type)
	return nil
}

func (uc *adminUseCase) Inbox(ctx context.Context, limit int) ([]queue.Notification, error) {
	if uc.inbox == nil {
		return []queue.Notification{}, nil
	}
	notifications, err := uc.inbox.Recent(ctx, limit)
	if err != nil {
		uc.logger.Error("Failed to read admin inbox: %v", err)
		return nil, errutil.StoreUnavailable(err)
	}
	return notifications, nil
}
