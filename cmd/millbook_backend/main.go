package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wheatworks/millbook/internal/adapters/database/localstore"
	"github.com/wheatworks/millbook/internal/adapters/database/pgsql"
	portsrepo "github.com/wheatworks/millbook/internal/core/ports/repositories"
	"github.com/wheatworks/millbook/internal/core/services"
	"github.com/wheatworks/millbook/internal/handlers"
	"github.com/wheatworks/millbook/internal/middleware"
	"github.com/wheatworks/millbook/pkg/config"
	"github.com/wheatworks/millbook/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Millbook Ledger API
// @version 1.0
// @description Backend for the flour-milling shop ledger.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	recordRepo, cleanup, err := buildRecordRepository(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(cfg, recordRepo)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("store_backend", cfg.StoreBackend),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRecordRepository selects the storage backend from configuration.
// The returned cleanup closes whatever resources the backend opened.
func buildRecordRepository(cfg *config.Config, logger *slog.Logger) (portsrepo.RecordRepository, func(), error) {
	if cfg.StoreBackend == config.BackendSQLite {
		kv, err := localstore.OpenSQLiteKV(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Local SQLite store opened", slog.String("path", cfg.SQLitePath))
		return localstore.NewRecordRepository(kv), func() { _ = kv.Close() }, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	return pgsql.NewRecordRepository(dbPool), dbPool.Close, nil
}

// runMigrations applies pending SQL migrations over a temporary
// database/sql connection, using the pgx stdlib driver so it is compatible
// with the main pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

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

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
