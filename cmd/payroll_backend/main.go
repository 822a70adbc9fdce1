package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	_ "github.com/peoplenest/payroll-backend/cmd/docs"
	"github.com/peoplenest/payroll-backend/internal/adapters/database/fsdb"
	"github.com/peoplenest/payroll-backend/internal/adapters/identity"
	"github.com/peoplenest/payroll-backend/internal/core/services"
	"github.com/peoplenest/payroll-backend/internal/handlers"
	"github.com/peoplenest/payroll-backend/internal/middleware"
	"github.com/peoplenest/payroll-backend/pkg/config"
	"github.com/peoplenest/payroll-backend/pkg/database"
)

// @title Payroll Backend API
// @version 1.0
// @description Administrative backend for employee, payroll and loan management.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	clients, err := database.NewFirebaseClients(ctx, cfg.FirebaseProjectID, cfg.FirebaseCredentials)
	if err != nil {
		logger.Error("Failed to initialize firebase clients", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer clients.Close()

	identityProvider, err := identity.NewFirebaseIdentity(ctx, clients.Auth, cfg.FirebaseWebAPIKey)
	if err != nil {
		logger.Error("Failed to initialize identity provider", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := fsdb.NewProvider(clients.Firestore)
	serviceContainer := services.NewServiceContainer(repos, identityProvider)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, identityProvider)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
