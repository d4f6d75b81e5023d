package persistent

import (
	"context"
	"errors"

	"pullup-club/pkg/database"
	"pullup-club/pkg/models"
	"pullup-club/services/submission/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository interface {
	// Transaction runs fn against a repository bound to a single database
	// transaction. Returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx SubmissionRepository) error) error
	// Latest returns the user's most recent submission or nil. Inside a
	// transaction the row is locked until commit.
	Latest(ctx context.Context, userID string) (*entity.Submission, error)
	Create(ctx context.Context, submission *entity.Submission) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Submission, error)
	Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error)
}

type submissionRepository struct {
	db   *gorm.DB
	inTx bool
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Transaction(ctx context.Context, fn func(tx SubmissionRepository) error) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&submissionRepository{db: tx, inTx: true})
	})
	return database.Translate(err)
}

func (r *submissionRepository) Latest(ctx context.Context, userID string) (*entity.Submission, error) {
	query := r.db.WithContext(ctx)
	if r.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var submissionModel models.Submission
	err := query.
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Order("id DESC").
		Limit(1).
		Take(&submissionModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Translate(err)
	}
	return ToSubmissionEntity(&submissionModel), nil
}

func (r *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	submissionModel := ToSubmissionModel(submission)
	if err := r.db.WithContext(ctx).Create(submissionModel).Error; err != nil {
		return database.Translate(err)
	}
	*submission = *ToSubmissionEntity(submissionModel)
	return nil
}

func (r *submissionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Submission, error) {
	var submissionModels []models.Submission
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Order("id DESC")
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

type leaderboardRow struct {
	UserID              string
	BestPullUpCount     int
	ApprovedSubmissions int64
}

func (r *submissionRepository) Leaderboard(ctx context.Context, limit int) ([]entity.LeaderboardEntry, error) {
	var rows []leaderboardRow
	err := r.db.WithContext(ctx).
		Model(&models.Submission{}).
		Select("user_id, MAX(approved_pull_up_count) AS best_pull_up_count, COUNT(*) AS approved_submissions").
		Where("status = ? AND approved_pull_up_count IS NOT NULL", models.SubmissionApproved).
		Group("user_id").
		Order("best_pull_up_count DESC").
		Order("user_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, database.Translate(err)
	}

	entries := make([]entity.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = entity.LeaderboardEntry{
			Rank:                i + 1,
			UserID:              row.UserID,
			BestPullUpCount:     row.BestPullUpCount,
			ApprovedSubmissions: row.ApprovedSubmissions,
		}
	}
	return entries, nil
}
