package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"pullup-club/pkg/clock"
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/money"
	"pullup-club/pkg/queue"
	"pullup-club/services/earnings/internal/entity"
	"pullup-club/services/earnings/internal/repo/persistent"

	"github.com/shopspring/decimal"
)

const (
	NotificationPayoutRequested = "payout_requested"

	maxDestinationLength = 320
	notifyTimeout        = 5 * time.Second
)

type EarningsUseCase interface {
	RequestPayout(ctx context.Context, userID string, amountDollars decimal.Decimal) (*entity.PayoutRequest, error)
	GetEarnings(ctx context.Context, userID string) (*entity.EarningsSummary, error)
	ListPayoutRequests(ctx context.Context, userID string, limit, offset int) ([]*entity.PayoutRequest, error)
	GetPayoutProfile(ctx context.Context, userID string) (*entity.PayoutProfile, error)
	UpdatePayoutProfile(ctx context.Context, userID, destinationHandle string) (*entity.PayoutProfile, error)
}

type earningsUseCase struct {
	earningsRepo persistent.EarningsRepository
	publisher    queue.Publisher
	clock        clock.Clock
	logger       *logger.Logger
}

// NewEarningsUseCase builds the payout workflow. publisher may be nil, in
// which case admins are not notified of new requests.
func NewEarningsUseCase(earningsRepo persistent.EarningsRepository, publisher queue.Publisher, clk clock.Clock, logger *logger.Logger) EarningsUseCase {
	return &earningsUseCase{
		earningsRepo: earningsRepo,
		publisher:    publisher,
		clock:        clk,
		logger:       logger,
	}
}

func (uc *earningsUseCase) RequestPayout(ctx context.Context, userID string, amountDollars decimal.Decimal) (*entity.PayoutRequest, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}

	profile, err := uc.earningsRepo.GetPayoutProfile(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to load payout profile for user %s: %v", userID, err)
		return nil, err
	}
	if profile == nil || strings.TrimSpace(profile.DestinationHandle) == "" {
		return nil, errutil.MissingDestination()
	}

	amountCents, err := money.ParseCents(amountDollars)
	if err != nil {
		return nil, errutil.Validation("amountDollars", err.Error())
	}

	now := uc.clock.Now()
	var created *entity.PayoutRequest
	err = uc.earningsRepo.Transaction(ctx, func(tx persistent.EarningsRepository) error {
		balance, err := tx.Balance(ctx, userID)
		if err != nil {
			return err
		}
		if err := CheckPayout(balance, amountCents); err != nil {
			return err
		}

		request := &entity.PayoutRequest{
			UserID:            userID,
			AmountCents:       amountCents,
			DestinationHandle: strings.TrimSpace(profile.DestinationHandle),
			Status:            entity.PayoutStatusPending,
			CreatedAt:         now,
		}
		if err := tx.CreatePayoutRequest(ctx, request); err != nil {
			return err
		}
		created = request
		return nil
	})
	if err != nil {
		if !errors.Is(err, errutil.ErrInsufficientBalance) {
			uc.logger.Error("Failed to request payout for user %s: %v", userID, err)
		}
		return nil, err
	}

	uc.logger.Info("Payout request %s created for user %s: %s", created.ID, userID, created.Amount)
	go uc.notifyAdmins(*created)

	return created, nil
}

// notifyAdmins runs after commit. A failed publish is logged and otherwise
// ignored; the request stays pending either way.
func (uc *earningsUseCase) notifyAdmins(request entity.PayoutRequest) {
	if uc.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	err := uc.publisher.Publish(ctx, queue.Notification{
		Type:          NotificationPayoutRequested,
		RecipientRole: "admin",
		Payload: map[string]interface{}{
			"payoutRequestId":   request.ID,
			"userId":            request.UserID,
			"amountDollars":     request.Amount,
			"destinationHandle": request.DestinationHandle,
		},
		CreatedAt: request.CreatedAt,
	})
	if err != nil {
		uc.logger.Warn("Failed to notify admins of payout request %s: %v", request.ID, err)
	}
}

func (uc *earningsUseCase) GetEarnings(ctx context.Context, userID string) (*entity.EarningsSummary, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}

	balance, err := uc.earningsRepo.Balance(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to load balance for user %s: %v", userID, err)
		return nil, err
	}

	return &entity.EarningsSummary{
		TotalEarned:   money.Dollars(balance.EarnedCents),
		TotalPaid:     money.Dollars(balance.PaidCents),
		PendingPayout: money.Dollars(balance.PendingCents),
		Available:     money.Dollars(balance.AvailableCents()),
	}, nil
}

func (uc *earningsUseCase) ListPayoutRequests(ctx context.Context, userID string, limit, offset int) ([]*entity.PayoutRequest, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}

	requests, err := uc.earningsRepo.ListPayoutRequests(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list payout requests: %v", err)
		return nil, err
	}
	return requests, nil
}

func (uc *earningsUseCase) GetPayoutProfile(ctx context.Context, userID string) (*entity.PayoutProfile, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}

	profile, err := uc.earningsRepo.GetPayoutProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, errutil.NotFound("no payout profile on file")
	}
	return profile, nil
}

func (uc *earningsUseCase) UpdatePayoutProfile(ctx context.Context, userID, destinationHandle string) (*entity.PayoutProfile, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}

	destinationHandle = strings.TrimSpace(destinationHandle)
	if destinationHandle == "" {
		return nil, errutil.Validation("destinationHandle", "destinationHandle must not be empty")
	}
	if len(destinationHandle) > maxDestinationLength {
		return nil, errutil.Validation("destinationHandle", "destinationHandle is too long")
	}

	profile, err := uc.earningsRepo.SavePayoutProfile(ctx, userID, destinationHandle)
	if err != nil {
		uc.logger.Error("Failed to save payout profile for user %s: %v", userID, err)
		return nil, err
	}
	return profile, nil
}
