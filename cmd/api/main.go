package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository/postgres"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/auth"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/validation"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Contact and profile backend for a personal portfolio site.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	// 3. Load the static owner document
	owner, err := config.LoadOwnerProfile(cfg.OwnerProfilePath)
	if err != nil {
		logger.Log.Error("Failed to load owner profile", "path", cfg.OwnerProfilePath, "error", err)
		os.Exit(1)
	}

	// 4. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 5. Setup Repositories
	contactRepo := postgres.NewContactRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	contactUC := usecase.NewContactUsecase(contactRepo, validate)
	userUC := usecase.NewUserUsecase(userRepo)
	portfolioUC := usecase.NewPortfolioUsecase(owner)

	// 7. Setup Auth Provider (JWKS, optional; HS256 works with the secret alone)
	var jwksProvider *auth.Provider
	if cfg.JWKSUrl != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSUrl)
	}

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:    contactUC,
		UserUC:       userUC,
		PortfolioUC:  portfolioUC,
		UserRepo:     userRepo,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
