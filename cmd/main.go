package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/mgallego/auth-service/config"
	"github.com/mgallego/auth-service/db"
	"github.com/mgallego/auth-service/internal/auth/handler"
	repo "github.com/mgallego/auth-service/internal/auth/repository/postgres"
	"github.com/mgallego/auth-service/internal/auth/service"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("database init failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := db.RunMigrations(ctx, dbPool); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSigningSecret, cfg.TokenLifetimeSeconds)
	userService := service.NewUserService(userRepo, tokenService)
	googleService := service.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret,
		cfg.GoogleRedirectURI, userRepo, tokenService)
	authHandler := handler.NewAuthHandler(userService, googleService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	logger.Info("listening", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
