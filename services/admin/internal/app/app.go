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
	"pullup-club/pkg/queue"
	"pullup-club/pkg/s3"
	adminHTTP "pullup-club/services/admin/internal/controller/http"
	"pullup-club/services/admin/internal/repo/inbox"
	"pullup-club/services/admin/internal/repo/persistent"
	"pullup-club/services/admin/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "pullup-club/services/admin/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	clock       clock.Clock
	httpServer  *http.Server
}

func NewApp(cfg *config.Config, clk clock.Clock) (*App, error) {
	log := logger.NewForEnv(cfg.AppEnv, "admin")

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (continuing without inbox and cache invalidation)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("Failed to create S3 client: %v (payout export disabled)", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		jwtService:  jwt.NewService(cfg.JWTSecret),
		clock:       clk,
	}, nil
}

func Router(cfg *config.Config, log *logger.Logger, jwtService *jwt.Service, redisClient *redis.Client, adminUseCase usecase.AdminUseCase) *gin.Engine {
	adminHandler := adminHTTP.NewAdminHandler(adminUseCase, log)

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

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AuthMiddleware(jwtService))
	admin.Use(middleware.RequireRole(middleware.RoleAdmin))
	admin.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimitPerMinute, time.Minute))
	{
		admin.GET("/submissions/pending", adminHandler.GetPendingSubmissions)
		admin.POST("/submissions/:id/approve", adminHandler.ApproveSubmission)
		admin.POST("/submissions/:id/reject", adminHandler.RejectSubmission)

		admin.GET("/payout-requests/pending", adminHandler.GetPendingPayouts)
		admin.POST("/payout-requests/export", adminHandler.ExportPayouts)
		admin.POST("/payout-requests/:id/paid", adminHandler.MarkPayoutPaid)
		admin.POST("/payout-requests/:id/reject", adminHandler.RejectPayout)

		admin.GET("/inbox", adminHandler.GetInbox)
	}

	return r
}

func (a *App) Run() error {
	var inboxStore inbox.Store
	if a.redisClient != nil {
		inboxStore = inbox.NewRedisStore(a.redisClient, a.cfg.AdminInboxSize)
	}

	var uploader s3.Uploader
	if a.s3Client != nil {
		uploader = a.s3Client
	}

	adminRepo := persistent.NewAdminRepository(a.db)
	adminUseCase := usecase.NewAdminUseCase(
		adminRepo,
		inboxStore,
		uploader,
		a.redisClient,
		a.clock,
		a.cfg.RewardPerPullUpCents,
		a.log,
	)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: Router(a.cfg, a.log, a.jwtService, a.redisClient, adminUseCase),
	}

	// Move admin notifications from RabbitMQ into the inbox
	if a.queueClient != nil {
		err := a.queueClient.Consume(func(n queue.Notification) error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return adminUseCase.HandleNotification(ctx, n)
		})
		if err != nil {
			a.log.Error("Error starting admin inbox consumer: %v", err)
		}
	}

	go func() {
		a.log.Info("Admin service starting on port %s", a.cfg.ServerPort)
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
	a.log.Info("Shutting down admin service...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	// Close RabbitMQ connection
	if a.queueClient != nil {
		a.queueClient.Close()
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

	a.log.Info("Admin service exited")
	a.log.Sync()
	return nil
}
