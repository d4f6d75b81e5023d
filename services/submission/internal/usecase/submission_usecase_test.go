package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"pullup-club/pkg/clock"
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/models"
	"pullup-club/pkg/testutil"
	"pullup-club/services/submission/internal/entity"
	"pullup-club/services/submission/internal/repo/persistent"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testUser = "0190c0de-0000-7000-8000-000000000001"

func newTestUseCase(t *testing.T, now time.Time) (SubmissionUseCase, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t, models.All()...)
	uc := NewSubmissionUseCase(
		persistent.NewSubmissionRepository(db),
		nil,
		clock.Fixed{At: now},
		Rules{Cooldown: 24 * time.Hour, LeaderboardSize: 10},
		logger.NewNop(),
	)
	return uc, db
}

func seedSubmission(t *testing.T, db *gorm.DB, userID string, status models.SubmissionStatus, submittedAt time.Time, approved *int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Submission{
		UserID:              userID,
		VideoURL:            "https://www.youtube.com/watch?v=seed",
		Platform:            "youtube",
		PullUpCount:         10,
		Status:              status,
		SubmittedAt:         submittedAt,
		ApprovedPullUpCount: approved,
	}).Error)
}

func TestCheckEligibility_NoSubmissions(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	eligibility, err := uc.CheckEligibility(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, entity.Eligibility{Allowed: true}, eligibility)
}

func TestRecordSubmission_ThenPendingBlocks(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc, _ := newTestUseCase(t, now)
	ctx := context.Background()

	submission, err := uc.RecordSubmission(ctx, testUser, "https://youtu.be/abc123", 21)
	require.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, entity.StatusPending, submission.Status)
	assert.Equal(t, entity.PlatformYouTube, submission.Platform)
	assert.Equal(t, 21, submission.PullUpCount)
	assert.True(t, submission.SubmittedAt.Equal(now))

	eligibility, err := uc.CheckEligibility(ctx, testUser)
	require.NoError(t, err)
	assert.False(t, eligibility.Allowed)
	assert.Equal(t, entity.ReasonPendingReviewExists, eligibility.Reason)
	assert.Nil(t, eligibility.NextAllowedAt)

	_, err = uc.RecordSubmission(ctx, testUser, "https://www.tiktok.com/@me/video/1", 22)
	require.Error(t, err)
	assert.ErrorIs(t, err, errutil.ErrNotEligible)
}

func TestCheckEligibility_RejectedWithinCooldown(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc, db := newTestUseCase(t, now)
	submittedAt := now.Add(-time.Minute)
	seedSubmission(t, db, testUser, models.SubmissionRejected, submittedAt, nil)

	eligibility, err := uc.CheckEligibility(context.Background(), testUser)

	require.NoError(t, err)
	assert.False(t, eligibility.Allowed)
	assert.Equal(t, entity.ReasonCooldownActive, eligibility.Reason)
	require.NotNil(t, eligibility.NextAllowedAt)
	assert.True(t, eligibility.NextAllowedAt.Equal(submittedAt.Add(24*time.Hour)))
}

func TestRecordSubmission_CooldownCarriesNextAllowedAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc, db := newTestUseCase(t, now)
	approved := 12
	seedSubmission(t, db, testUser, models.SubmissionApproved, now.Add(-time.Hour), &approved)

	_, err := uc.RecordSubmission(context.Background(), testUser, "https://www.instagram.com/reel/xyz", 13)

	var appErr *errutil.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errutil.KindNotEligible, appErr.Kind)
	assert.Equal(t, entity.ReasonCooldownActive, appErr.Fields["reason"])
	next, ok := appErr.Fields["nextAllowedAt"].(time.Time)
	require.True(t, ok)
	assert.True(t, next.Equal(now.Add(23*time.Hour)))
}

func TestRecordSubmission_AfterCooldown(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	uc, db := newTestUseCase(t, now)
	seedSubmission(t, db, testUser, models.SubmissionRejected, now.Add(-24*time.Hour), nil)

	submission, err := uc.RecordSubmission(context.Background(), testUser, "https://fb.watch/abc/", 5)

	require.NoError(t, err)
	assert.Equal(t, entity.PlatformFacebook, submission.Platform)
}

func TestRecordSubmission_Validation(t *testing.T) {
	uc, db := newTestUseCase(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	tests := []struct {
		name     string
		videoURL string
		count    int
		field    string
	}{
		{name: "negative count", videoURL: "https://youtu.be/abc", count: -1, field: "pullUpCount"},
		{name: "relative url", videoURL: "/watch?v=abc", count: 3, field: "videoUrl"},
		{name: "unknown host", videoURL: "https://vimeo.com/123", count: 3, field: "videoUrl"},
		{name: "lookalike host", videoURL: "https://notyoutube.com/watch", count: 3, field: "videoUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.RecordSubmission(ctx, testUser, tt.videoURL, tt.count)

			var appErr *errutil.Error
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, errutil.KindValidation, appErr.Kind)
			assert.Equal(t, tt.field, appErr.Fields["field"])
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Submission{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordSubmission_Unauthenticated(t *testing.T) {
	uc, _ := newTestUseCase(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	_, err := uc.RecordSubmission(context.Background(), "", "https://youtu.be/abc", 1)

	assert.ErrorIs(t, err, errutil.ErrUnauthorized)
}

func TestRecordSubmission_ConcurrentRequestsCreateOnePending(t *testing.T) {
	uc, db := newTestUseCase(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	const attempts = 5
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.RecordSubmission(ctx, testUser, "https://youtu.be/abc", 10+i)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, errutil.ErrNotEligible)
	}
	assert.Equal(t, 1, succeeded)

	var pending int64
	require.NoError(t, db.Model(&models.Submission{}).
		Where("user_id = ? AND status = ?", testUser, models.SubmissionPending).
		Count(&pending).Error)
	assert.Equal(t, int64(1), pending)
}

func TestListSubmissions_NewestFirst(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, db := newTestUseCase(t, now)
	seedSubmission(t, db, testUser, models.SubmissionRejected, now.Add(-72*time.Hour), nil)
	seedSubmission(t, db, testUser, models.SubmissionRejected, now.Add(-48*time.Hour), nil)
	seedSubmission(t, db, "0190c0de-0000-7000-8000-000000000002", models.SubmissionRejected, now.Add(-time.Hour), nil)

	submissions, err := uc.ListSubmissions(context.Background(), testUser, 10, 0)

	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.True(t, submissions[0].SubmittedAt.After(submissions[1].SubmittedAt))
}

func TestGetLeaderboard_WithoutCache(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc, db := newTestUseCase(t, now)
	other := "0190c0de-0000-7000-8000-000000000002"
	best, older, otherBest := 30, 18, 25
	seedSubmission(t, db, testUser, models.SubmissionApproved, now.Add(-72*time.Hour), &older)
	seedSubmission(t, db, testUser, models.SubmissionApproved, now.Add(-24*time.Hour), &best)
	seedSubmission(t, db, other, models.SubmissionApproved, now.Add(-24*time.Hour), &otherBest)
	seedSubmission(t, db, other, models.SubmissionPending, now.Add(-time.Hour), nil)

	entries, err := uc.GetLeaderboard(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.LeaderboardEntry{Rank: 1, UserID: testUser, BestPullUpCount: 30, ApprovedSubmissions: 2}, entries[0])
	assert.Equal(t, entity.LeaderboardEntry{Rank: 2, UserID: other, BestPullUpCount: 25, ApprovedSubmissions: 1}, entries[1])
}
