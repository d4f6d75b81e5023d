package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pullup-club/pkg/clock"
	"pullup-club/pkg/errutil"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/models"
	"pullup-club/pkg/queue"
	"pullup-club/pkg/testutil"
	"pullup-club/services/admin/internal/repo/persistent"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	adminID  = "0190c0de-0000-7000-8000-0000000000ad"
	memberID = "0190c0de-0000-7000-8000-000000000001"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeUploader struct {
	key  string
	body []byte
	err  error
}

func (u *fakeUploader) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	u.key = key
	u.body = body
	if u.err != nil {
		return "", u.err
	}
	return "https://payouts.s3.us-east-1.amazonaws.com/" + key, nil
}

type fakeInbox struct {
	items []queue.Notification
}

func (f *fakeInbox) Push(ctx context.Context, n queue.Notification) error {
	f.items = append([]queue.Notification{n}, f.items...)
	return nil
}

func (f *fakeInbox) Recent(ctx context.Context, limit int) ([]queue.Notification, error) {
	if limit > len(f.items) {
		limit = len(f.items)
	}
	return f.items[:limit], nil
}

type fixture struct {
	uc       AdminUseCase
	db       *gorm.DB
	uploader *fakeUploader
	inbox    *fakeInbox
}

func newFixture(t *testing.T, rewardPerPullUpCents int64) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t, models.All()...)
	f := &fixture{db: db, uploader: &fakeUploader{}, inbox: &fakeInbox{}}
	f.uc = NewAdminUseCase(
		persistent.NewAdminRepository(db),
		f.inbox,
		f.uploader,
		nil,
		clock.Fixed{At: testNow},
		rewardPerPullUpCents,
		logger.NewNop(),
	)
	return f
}

func (f *fixture) seedSubmission(t *testing.T, status models.SubmissionStatus) string {
	t.Helper()
	submission := models.Submission{
		UserID:      memberID,
		VideoURL:    "https://youtu.be/abc",
		Platform:    "youtube",
		PullUpCount: 20,
		Status:      status,
		SubmittedAt: testNow.Add(-time.Hour),
	}
	require.NoError(t, f.db.Create(&submission).Error)
	return submission.ID
}

func (f *fixture) seedPayout(t *testing.T, cents int64) string {
	t.Helper()
	request := models.PayoutRequest{
		UserID:            memberID,
		AmountCents:       cents,
		DestinationHandle: "member@example.com",
		Status:            models.PayoutPending,
		CreatedAt:         testNow.Add(-time.Hour),
	}
	require.NoError(t, f.db.Create(&request).Error)
	return request.ID
}

func (f *fixture) ledger(t *testing.T) models.EarningsLedger {
	t.Helper()
	var ledger models.EarningsLedger
	require.NoError(t, f.db.First(&ledger, "user_id = ?", memberID).Error)
	return ledger
}

func TestApproveSubmission_CreditsAtRate(t *testing.T) {
	f := newFixture(t, 25)
	id := f.seedSubmission(t, models.SubmissionPending)
	notes := "clean reps"

	review, err := f.uc.ApproveSubmission(context.Background(), adminID, id, ApproveInput{ApprovedPullUpCount: 18, Notes: &notes})

	require.NoError(t, err)
	assert.Equal(t, "approved", review.Submission.Status)
	require.NotNil(t, review.Submission.ApprovedPullUpCount)
	assert.Equal(t, 18, *review.Submission.ApprovedPullUpCount)
	assert.Equal(t, "4.50", string(review.Credited))

	var stored models.Submission
	require.NoError(t, f.db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, models.SubmissionApproved, stored.Status)
	require.NotNil(t, stored.ApprovedAt)
	assert.True(t, stored.ApprovedAt.Equal(testNow))
	assert.Equal(t, int64(450), f.ledger(t).TotalEarnedCents)
}

func TestApproveSubmission_RewardOverrideAccumulates(t *testing.T) {
	f := newFixture(t, 25)
	ctx := context.Background()
	require.NoError(t, f.db.Create(&models.EarningsLedger{UserID: memberID, TotalEarnedCents: 1000}).Error)
	id := f.seedSubmission(t, models.SubmissionPending)
	reward := decimal.RequireFromString("40.00")

	_, err := f.uc.ApproveSubmission(ctx, adminID, id, ApproveInput{ApprovedPullUpCount: 30, RewardDollars: &reward})

	require.NoError(t, err)
	assert.Equal(t, int64(5000), f.ledger(t).TotalEarnedCents)
}

func TestApproveSubmission_ZeroRewardLeavesLedgerAlone(t *testing.T) {
	f := newFixture(t, 0)
	id := f.seedSubmission(t, models.SubmissionPending)

	_, err := f.uc.ApproveSubmission(context.Background(), adminID, id, ApproveInput{ApprovedPullUpCount: 12})

	require.NoError(t, err)
	var count int64
	require.NoError(t, f.db.Model(&models.EarningsLedger{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestApproveSubmission_InvalidTransitions(t *testing.T) {
	f := newFixture(t, 25)
	ctx := context.Background()
	rejected := f.seedSubmission(t, models.SubmissionRejected)

	_, err := f.uc.ApproveSubmission(ctx, adminID, rejected, ApproveInput{ApprovedPullUpCount: 10})
	assert.ErrorIs(t, err, errutil.ErrInvalidTransition)

	_, err = f.uc.ApproveSubmission(ctx, adminID, "0190c0de-0000-7000-8000-00000000ffff", ApproveInput{ApprovedPullUpCount: 10})
	assert.ErrorIs(t, err, errutil.ErrNotFound)

	pending := f.seedSubmission(t, models.SubmissionPending)
	_, err = f.uc.ApproveSubmission(ctx, adminID, pending, ApproveInput{ApprovedPullUpCount: -1})
	assert.ErrorIs(t, err, errutil.ErrValidation)

	bad := decimal.RequireFromString("1.001")
	_, err = f.uc.ApproveSubmission(ctx, adminID, pending, ApproveInput{ApprovedPullUpCount: 1, RewardDollars: &bad})
	assert.ErrorIs(t, err, errutil.ErrValidation)
}

func TestApproveSubmission_RewardOverflowKeepsSubmissionPending(t *testing.T) {
	f := newFixture(t, 1_000_000)
	id := f.seedSubmission(t, models.SubmissionPending)

	_, err := f.uc.ApproveSubmission(context.Background(), adminID, id, ApproveInput{ApprovedPullUpCount: 1 << 44})

	require.ErrorIs(t, err, errutil.ErrValidation)
	var appErr *errutil.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "approvedPullUpCount", appErr.Fields["field"])

	var stored models.Submission
	require.NoError(t, f.db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, models.SubmissionPending, stored.Status)
	assert.Nil(t, stored.ApprovedPullUpCount)

	var count int64
	require.NoError(t, f.db.Model(&models.EarningsLedger{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRejectSubmission(t *testing.T) {
	f := newFixture(t, 25)
	ctx := context.Background()
	id := f.seedSubmission(t, models.SubmissionPending)

	submission, err := f.uc.RejectSubmission(ctx, adminID, id, nil)
	require.NoError(t, err)
	assert.Equal(t, "rejected", submission.Status)
	assert.Nil(t, submission.ApprovedPullUpCount)

	_, err = f.uc.RejectSubmission(ctx, adminID, id, nil)
	assert.ErrorIs(t, err, errutil.ErrInvalidTransition)
}

func TestMarkPayoutPaid_UpdatesLedger(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	require.NoError(t, f.db.Create(&models.EarningsLedger{UserID: memberID, TotalEarnedCents: 5000}).Error)
	id := f.seedPayout(t, 3000)

	request, err := f.uc.MarkPayoutPaid(ctx, adminID, id, nil)

	require.NoError(t, err)
	assert.Equal(t, "paid", request.Status)
	require.NotNil(t, request.ProcessedAt)
	assert.Equal(t, int64(3000), f.ledger(t).TotalPaidCents)

	_, err = f.uc.RejectPayout(ctx, adminID, id, nil)
	assert.ErrorIs(t, err, errutil.ErrInvalidTransition)
}

func TestMarkPayoutPaid_NeverExceedsEarned(t *testing.T) {
	f := newFixture(t, 0)
	require.NoError(t, f.db.Create(&models.EarningsLedger{UserID: memberID, TotalEarnedCents: 2000, TotalPaidCents: 1000}).Error)
	id := f.seedPayout(t, 1500)

	_, err := f.uc.MarkPayoutPaid(context.Background(), adminID, id, nil)

	assert.ErrorIs(t, err, errutil.ErrInvalidTransition)
	assert.Equal(t, int64(1000), f.ledger(t).TotalPaidCents)
	var stored models.PayoutRequest
	require.NoError(t, f.db.First(&stored, "id = ?", id).Error)
	assert.Equal(t, models.PayoutPending, stored.Status)
}

func TestRejectPayout_LeavesLedgerUntouched(t *testing.T) {
	f := newFixture(t, 0)
	require.NoError(t, f.db.Create(&models.EarningsLedger{UserID: memberID, TotalEarnedCents: 5000}).Error)
	id := f.seedPayout(t, 3000)
	notes := "destination bounced"

	request, err := f.uc.RejectPayout(context.Background(), adminID, id, &notes)

	require.NoError(t, err)
	assert.Equal(t, "rejected", request.Status)
	require.NotNil(t, request.AdminNotes)
	assert.Equal(t, notes, *request.AdminNotes)
	assert.Equal(t, int64(0), f.ledger(t).TotalPaidCents)
}

func TestExportPendingPayouts(t *testing.T) {
	f := newFixture(t, 0)
	first := f.seedPayout(t, 1250)
	second := f.seedPayout(t, 3000)

	export, err := f.uc.ExportPendingPayouts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "payout-exports/20260301T120000Z.csv", export.Key)
	assert.Equal(t, "https://payouts.s3.us-east-1.amazonaws.com/payout-exports/20260301T120000Z.csv", export.URL)
	assert.Equal(t, 2, export.Count)
	assert.Equal(t, "42.50", string(export.Total))

	lines := strings.Split(strings.TrimSpace(string(f.uploader.body)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,user_id,destination,amount,requested_at", lines[0])
	assert.Contains(t, strings.Join(lines[1:], "\n"), first+","+memberID+",member@example.com,12.50,2026-03-01T11:00:00Z")
	assert.Contains(t, strings.Join(lines[1:], "\n"), second+","+memberID+",member@example.com,30.00,2026-03-01T11:00:00Z")
}

func TestExportPendingPayouts_UploadFailure(t *testing.T) {
	f := newFixture(t, 0)
	f.uploader.err = errors.New("bucket unavailable")
	f.seedPayout(t, 1000)

	_, err := f.uc.ExportPendingPayouts(context.Background())

	assert.ErrorIs(t, err, errutil.ErrStoreUnavailable)
}

func TestInbox_NewestFirst(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	require.NoError(t, f.uc.HandleNotification(ctx, queue.Notification{Type: "payout_requested", Payload: map[string]interface{}{"n": 1}}))
	require.NoError(t, f.uc.HandleNotification(ctx, queue.Notification{Type: "payout_requested", Payload: map[string]interface{}{"n": 2}}))

	items, err := f.uc.Inbox(ctx, 10)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Payload["n"])
}
