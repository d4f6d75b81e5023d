package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pullup-club/pkg/cache"
	"pullup-club/pkg/clock"
	"pullup-club/pkg/config"
	"pullup-club/pkg/database"
	"pullup-club/pkg/jwt"
	"pullup-club/pkg/logger"
	"pullup-club/pkg/middleware"
	submissionHTTP "pullup-club/services/submission/internal/controller/http"
	"pullup-club/services/submission/internal/repo/persistent"
	"pullup-club/services/submission/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pullup-club/services/submission/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	clock       clock.Clock
	httpServer  *http.Server
}

func NewApp(cfg *config.Config, clk clock.Clock) (*App, error) {
	log := logger.NewForEnv(cfg.AppEnv, "submission")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Leaderboard caching and rate limiting are skipped without Redis
		log.Warn("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		clock:       clk,
	}, nil
}

// Router wires the HTTP surface. Split out of Run so tests can drive it.
func Router(cfg *config.Config, log *logger.Logger, jwtService *jwt.Service, redisClient *redis.Client, submissionUseCase usecase.SubmissionUseCase) *gin.Engine {
	submissionHandler := submissionHTTP.NewSubmissionHandler(submissionUseCase, log)

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtService))
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	{
		api.POST("/submission", submissionHandler.CreateSubmission)
		api.GET("/submission-eligibility", submissionHandler.GetEligibility)
		api.GET("/submissions", submissionHandler.ListSubmissions)
		api.GET("/leaderboard", submissionHandler.GetLeaderboard)
	}

	return r
}

func (a *App) Run() error {
	submissionRepo := persistent.NewSubmissionRepository(a.db)
	submissionUseCase := usecase.NewSubmissionUseCase(
		submissionRepo,
		a.redisClient,
		a.clock,
		usecase.Rules{
			Cooldown:        a.cfg.SubmissionCooldown,
			LeaderboardSize: a.cfg.LeaderboardSize,
			LeaderboardTTL:  a.cfg.LeaderboardTTL,
		},
		a.log,
	)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: Router(a.cfg, a.log, a.jwtService, a.redisClient, submissionUseCase),
	}

	go func() {
		a.log.Info("Submission service starting on port %s (cooldown %s)", a.cfg.ServerPort, a.cfg.SubmissionCooldown)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down submission service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Submission service exited")
	a.log.Sync()
	return nil
}
