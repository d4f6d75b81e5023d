package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"pullup-club/pkg/cache"
	"pullup-club/pkg/clock"
	"pullup-club/pkg/database"
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/services/submission/internal/entity"
	"pullup-club/services/submission/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

type SubmissionUseCase interface {
	CheckEligibility(ctx context.Context, userID string) (entity.Eligibility, error)
	RecordSubmission(ctx context.Context, userID, videoURL string, pullUpCount int) (*entity.Submission, error)
	ListSubmissions(ctx context.Context, userID string, limit, offset int) ([]*entity.Submission, error)
	GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
}

type Rules struct {
	Cooldown        time.Duration
	LeaderboardSize int
	LeaderboardTTL  time.Duration
}

type submissionUseCase struct {
	submissionRepo persistent.SubmissionRepository
	redisClient    *redis.Client
	clock          clock.Clock
	rules          Rules
	logger         *logger.Logger
}

func NewSubmissionUseCase(submissionRepo persistent.SubmissionRepository, redisClient *redis.Client, clk clock.Clock, rules Rules, logger *logger.Logger) SubmissionUseCase {
	if rules.LeaderboardSize <= 0 {
		rules.LeaderboardSize = 50
	}
	return &submissionUseCase{
		submissionRepo: submissionRepo,
		redisClient:    redisClient,
		clock:          clk,
		rules:          rules,
		logger:         logger,
	}
}

func (uc *submissionUseCase) CheckEligibility(ctx context.Context, userID string) (entity.Eligibility, error) {
	if userID == "" {
		return entity.Eligibility{}, errutil.Unauthorized("authentication required")
	}

	latest, err := uc.submissionRepo.Latest(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to load latest submission for user %s: %v", userID, err)
		return entity.Eligibility{}, err
	}

	return Evaluate(latest, uc.clock.Now(), uc.rules.Cooldown), nil
}

func (uc *submissionUseCase) RecordSubmission(ctx context.Context, userID, videoURL string, pullUpCount int) (*entity.Submission, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}
	if pullUpCount < 0 {
		return nil, errutil.Validation("pullUpCount", "pullUpCount must be zero or greater")
	}
	platform, normalized, err := entity.ParseVideoURL(videoURL)
	if err != nil {
		return nil, errutil.Validation("videoUrl", err.Error())
	}

	now := uc.clock.Now()
	var created *entity.Submission
	err = uc.submissionRepo.Transaction(ctx, func(tx persistent.SubmissionRepository) error {
		latest, err := tx.Latest(ctx, userID)
		if err != nil {
			return err
		}

		if eligibility := Evaluate(latest, now, uc.rules.Cooldown); !eligibility.Allowed {
			return notEligible(eligibility)
		}

		submission := &entity.Submission{
			UserID:      userID,
			VideoURL:    normalized,
			Platform:    platform,
			PullUpCount: pullUpCount,
			Status:      entity.StatusPending,
			SubmittedAt: now,
		}
		if err := tx.Create(ctx, submission); err != nil {
			return err
		}
		created = submission
		return nil
	})
	if errors.Is(err, database.ErrDuplicate) {
		// Another request inserted the pending row between our read and write.
		return nil, notEligible(entity.Eligibility{Reason: entity.ReasonPendingReviewExists})
	}
	if err != nil {
		if errutil.KindOf(err) != errutil.KindNotEligible {
			uc.logger.Error("Failed to record submission for user %s: %v", userID, err)
		}
		return nil, err
	}

	uc.logger.Info("Submission %s recorded for user %s (%s, %d pull-ups)", created.ID, userID, platform, pullUpCount)
	return created, nil
}

func (uc *submissionUseCase) ListSubmissions(ctx context.Context, userID string, limit, offset int) ([]*entity.Submission, error) {
	if userID == "" {
		return nil, errutil.Unauthorized("authentication required")
	}

	submissions, err := uc.submissionRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		uc.logger.Error("Failed to list submissions: %v", err)
		return nil, err
	}
	return submissions, nil
}

func (uc *submissionUseCase) GetLeaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	if uc.redisClient != nil {
		cached, err := uc.redisClient.Get(ctx, cache.LeaderboardKey).Bytes()
		if err == nil {
			var entries []entity.LeaderboardEntry
			if err := json.Unmarshal(cached, &entries); err == nil {
				return entries, nil
			}
		} else if err != redis.Nil {
			uc.logger.Warn("Leaderboard cache read failed: %v", err)
		}
	}

	entries, err := uc.submissionRepo.Leaderboard(ctx, uc.rules.LeaderboardSize)
	if err != nil {
		uc.logger.Error("Failed to build leaderboard: %v", err)
		return nil, err
	}

	if uc.redisClient != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := uc.redisClient.Set(ctx, cache.LeaderboardKey, data, uc.rules.LeaderboardTTL).Err(); err != nil {
				uc.logger.Warn("Leaderboard cache write failed: %v", err)
			}
		}
	}

	return entries, nil
}

func notEligible(eligibility entity.Eligibility) *errutil.Error {
	msg := "a submission is already pending review"
	opts := []errutil.Option{errutil.WithField("reason", eligibility.Reason)}
	if eligibility.Reason == entity.ReasonCooldownActive {
		msg = "the cooldown since your last submission has not elapsed"
	}
	if eligibility.NextAllowedAt != nil {
		opts = append(opts, errutil.WithField("nextAllowedAt", eligibility.NextAllowedAt.UTC()))
	}
	return errutil.New(errutil.KindNotEligible, msg, opts...)
}
