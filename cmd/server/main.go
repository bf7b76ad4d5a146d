package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"wings_inventory/internal/api"
	"wings_inventory/internal/app/service"
	"wings_inventory/internal/common/security"
	"wings_inventory/internal/domain/repository"
	"wings_inventory/internal/platform/config"
	"wings_inventory/internal/platform/database"
	"wings_inventory/internal/platform/logger"
	"wings_inventory/internal/platform/metrics"

	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Configuration
	cfg, envFileLoaded := config.Load()
	log := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	log.WithFields(logrus.Fields{
		"env_file": envFileLoaded,
		"storage":  cfg.StorageBackend,
		"port":     cfg.APIPort,
	}).Info("configuration loaded")

	// 2. Initialize Storage
	var (
		db          *sql.DB
		userRepo    repository.UserRepository
		productRepo repository.ProductRepository
	)
	switch cfg.StorageBackend {
	case config.StorageBackendMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		userRepo = repository.NewMemoryUserRepository()
		productRepo = repository.NewMemoryProductRepository()
	case config.StorageBackendPostgres:
		var err error
		db, err = connectPostgres(cfg, log)
		if err != nil {
			log.WithError(err).Fatal("database initialization failed")
		}
		defer db.Close()
		userRepo = repository.NewPgUserRepository(db)
		productRepo = repository.NewPgProductRepository(db)
	default:
		log.WithField("storage", cfg.StorageBackend).Fatal("unknown STORAGE_BACKEND")
	}

	// 3. Initialize Services
	hasher, err := security.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.WithError(err).Fatal("password hasher initialization failed")
	}
	authService := service.NewAuthService(userRepo, hasher)
	productService := service.NewProductService(productRepo)

	if !cfg.AdminAuthRequired {
		log.Warn("ADMIN_AUTH_REQUIRED is off; product and user management routes are open to any caller")
	}

	// 4. Initialize Router & HTTP Server
	deps := api.RouterDeps{
		AuthService:       authService,
		ProductService:    productService,
		Log:               log,
		Metrics:           metrics.New(),
		AllowedOrigins:    cfg.CORSAllowedOrigins,
		AdminAuthRequired: cfg.AdminAuthRequired,
	}
	if db != nil {
		deps.DB = db
	}
	router := api.NewRouter(deps)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 5. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.APIPort).Info("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("shutting down server")
	case err := <-serverErr:
		log.WithError(err).Error("server stopped unexpectedly")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server shutdown failed")
		return
	}
	log.Info("server stopped gracefully")
}

func connectPostgres(cfg *config.Config, log logrus.FieldLogger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"host": cfg.DBHost, "db": cfg.DBName}).Info("database connected")

	if cfg.DBMigrateOnBoot {
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		log.Info("database migrations applied")
	}
	return db, nil
}
