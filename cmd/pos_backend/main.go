package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/adreenastore/pos_backend/internal/adapters/database/pgsql"
	"github.com/adreenastore/pos_backend/internal/core/ports"
	"github.com/adreenastore/pos_backend/internal/core/services"
	"github.com/adreenastore/pos_backend/internal/handlers"
	"github.com/adreenastore/pos_backend/internal/middleware"
	"github.com/adreenastore/pos_backend/internal/renderer"
	"github.com/adreenastore/pos_backend/pkg/config"
	"github.com/adreenastore/pos_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, buildServices(cfg, dbPool))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the repositories and services behind their interfaces.
func buildServices(cfg *config.Config, dbPool *pgxpool.Pool) *ports.ServiceContainer {
	txnRepo := pgsql.NewPgxTransactionRepository(dbPool, cfg.ReceiptIDPrefix)
	profileRepo := pgsql.NewPgxStoreProfileRepository(dbPool)
	reportingRepo := pgsql.NewPgxReportingRepository(dbPool)

	txnService := services.NewTransactionService(txnRepo)
	profileService := services.NewStoreProfileService(profileRepo)

	return &ports.ServiceContainer{
		Transaction:  txnService,
		StoreProfile: profileService,
		Reporting:    services.NewReportingService(reportingRepo),
		Receipt:      services.NewReceiptService(txnRepo, profileService, renderer.NewRegistry()),
	}
}

// runMigrations applies all pending "up" migrations from the migrations
// directory. A temporary database/sql connection is used because the migrate
// postgres driver expects one; the pgx stdlib driver keeps it compatible with
// the main pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
