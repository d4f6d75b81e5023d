package main

import (
	"pullup-club/pkg/clock"
	"pullup-club/pkg/config"
	app "pullup-club/services/admin/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           Admin Service API
// @version         1.0
// @description     Submission moderation, payout fulfilment and the admin inbox for Pull-Up Club

// @host      localhost:8003
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.JWTSecret == "your-secret-key-change-in-production" || cfg.JWTSecret == "" {
		panic("JWT_SECRET must be set in environment variables")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	application, err := app.NewApp(cfg, clock.System{})
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
