package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/pynappo/Clark/external/cleezy"
	"github.com/pynappo/Clark/external/resend"
	"github.com/pynappo/Clark/external/speaker"

	"github.com/pynappo/Clark/internal/config"
	"github.com/pynappo/Clark/internal/db"
	"github.com/pynappo/Clark/internal/middleware"
	"github.com/pynappo/Clark/internal/repository"
	"github.com/pynappo/Clark/internal/services"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// ======================
	// EXTERNALS
	// ======================
	mailer, err := resend.NewMailer(cfg.MailFrom)
	if err != nil {
		log.Fatal(err)
	}
	cleezyClient := cleezy.NewClient(cfg.CleezyURL)
	speakerClient := speaker.NewClient(cfg.SpeakerURL)

	// ======================
	// CODECS & GATE
	// ======================
	sessions := middleware.NewSessionCodec(cfg.JWTSecret, cfg.SessionTTL)
	registrations := services.NewRegistrationCodec(cfg.ServerSecret, cfg.RegistrationTTL)
	gate := middleware.NewAccessGate(sessions)

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	foodRepo := repository.NewFoodRepository(pool)
	dessertRepo := repository.NewDessertRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo, logger)
	regSvc := services.NewRegistrationService(userRepo, registrations, mailer, logger, cfg.BaseURL, cfg.DefaultAccessLevel)
	userSvc := services.NewUserService(userRepo, logger)
	foodSvc := services.NewFoodService(foodRepo)
	dessertSvc := services.NewDessertService(dessertRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api/v1")

	// ======================
	// ROUTES
	// ======================
	registerAuthRoutes(api, authSvc, regSvc, sessions)
	registerUserRoutes(api, userSvc, gate)
	registerFoodRoutes(api, foodSvc, gate)
	registerDessertRoutes(api, dessertSvc, gate)
	registerShortURLRoutes(api, cleezyClient, gate)
	registerSpeakerRoutes(api, speakerClient, gate)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
