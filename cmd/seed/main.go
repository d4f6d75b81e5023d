package main

import (
	"flag"
	"fmt"
	"time"

	"pullup-club/pkg/config"
	"pullup-club/pkg/database"
	"pullup-club/pkg/jwt"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type demoMember struct {
	id          string
	destination string
	pullUps     []int
	rewardCents int64
}

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "automigrate", false, "create tables with gorm AutoMigrate before seeding (local development only)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewForEnv(cfg.AppEnv, "seed")
	if cfg.IsProduction() {
		log.Error("Refusing to seed a production database")
		return
	}

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if migrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			log.Error("Failed to migrate database: %v", err)
			panic(err)
		}
	}

	members := []demoMember{
		{id: "0190c0de-0000-7000-8000-000000000001", destination: "alice@example.com", pullUps: []int{12, 15, 18}, rewardCents: 1000},
		{id: "0190c0de-0000-7000-8000-000000000002", destination: "bob@example.com", pullUps: []int{22, 25}, rewardCents: 2500},
		{id: "0190c0de-0000-7000-8000-000000000003", pullUps: []int{8}, rewardCents: 500},
	}

	now := time.Now().UTC()
	for _, m := range members {
		if err := seedMember(db, m, now, cfg.SubmissionCooldown); err != nil {
			log.Error("Failed to seed member %s: %v", m.id, err)
			continue
		}
		log.Info("Seeded member %s with %d approved submissions", m.id, len(m.pullUps))
	}

	jwtService := jwt.NewService(cfg.JWTSecret)
	memberToken, err := jwtService.GenerateToken(members[0].id, "member")
	if err != nil {
		panic(err)
	}
	adminToken, err := jwtService.GenerateToken("0190c0de-0000-7000-8000-0000000000ad", "admin")
	if err != nil {
		panic(err)
	}

	fmt.Printf("member token: %s\n", memberToken)
	fmt.Printf("admin token:  %s\n", adminToken)
	log.Info("Database seeded successfully!")
}

// seedMember inserts approved submissions spaced one cooldown apart, so the
// member is eligible again right away, and credits the ledger to match.
func seedMember(db *gorm.DB, m demoMember, now time.Time, cooldown time.Duration) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&models.Submission{}).Where("user_id = ?", m.id).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		var earned int64
		for i, count := range m.pullUps {
			approved := count
			submittedAt := now.Add(-time.Duration(len(m.pullUps)-i) * (cooldown + time.Hour))
			approvedAt := submittedAt.Add(time.Hour)
			submission := models.Submission{
				UserID:              m.id,
				VideoURL:            fmt.Sprintf("https://www.youtube.com/watch?v=demo%d", i),
				Platform:            "youtube",
				PullUpCount:         count,
				Status:              models.SubmissionApproved,
				SubmittedAt:         submittedAt,
				ApprovedPullUpCount: &approved,
				ApprovedAt:          &approvedAt,
			}
			if err := tx.Create(&submission).Error; err != nil {
				return err
			}
			earned += m.rewardCents
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.EarningsLedger{UserID: m.id, TotalEarnedCents: earned}).Error; err != nil {
			return err
		}

		if m.destination != "" {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.PayoutProfile{UserID: m.id, DestinationHandle: m.destination}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
