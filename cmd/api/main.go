package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	authUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/auth"
	transactionUseCase "github.com/amirhossein-jamali/finance-tracker/internal/domain/usecase/transaction"

	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction())
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	conn, err := database.Connect(dbConfig, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = conn.Close() }()

	migrationMgr := migration.NewMigrationManager(conn.DB, appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories and the unit of work over the shared connection
	userRepo := repository.NewUserRepository(conn.DB, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(conn.DB, appLogger)
	uow := database.NewUnitOfWork(conn.DB, appLogger, tp)

	// Auth adapters
	tokenManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry, tp)
	passwordHasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Use cases
	authService := authUseCase.NewService(userRepo, tokenManager, passwordHasher, tp, appLogger)
	transactionService := transactionUseCase.NewService(uow, userRepo, transactionRepo, tp, appLogger)

	// API handlers
	authHandler := handler.NewAuthHandler(authService, appLogger)
	transactionHandler := handler.NewTransactionHandler(transactionService, appLogger)
	healthHandler := handler.NewHealthHandler(conn.DB)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, authHandler, transactionHandler, healthHandler, authService, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting HTTP server", map[string]any{
			"addr":        server.Addr,
			"environment": cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Block until a termination signal arrives, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited", nil)
}
