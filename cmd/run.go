package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tipfolio/config"
	"tipfolio/database"
	"tipfolio/repository"
	"tipfolio/repository/memstore"
	"tipfolio/service"
	"tipfolio/web"

	"github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	logrus.Info("Starting tipfolio server...")

	cfg := config.Get()

	// Select the storage backend. Without a database URL everything lives
	// in memory, which is enough for development and demos.
	var (
		uowFactory service.UnitOfWorkFactory
		db         *database.DB
	)
	if cfg.DatabaseURL != "" {
		logrus.Info("Connecting to database...")
		var err error
		db, err = database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		logrus.Info("Database connection established")
		uowFactory = repository.NewUnitOfWorkFactory(db)
	} else {
		logrus.Warn("DATABASE_URL not set, using in-memory storage")
		uowFactory = memstore.NewUnitOfWorkFactory(memstore.New())
	}

	// Initialize services
	userService := service.NewUserService(uowFactory)
	bankService := service.NewBankService(uowFactory)
	betService := service.NewBetService(uowFactory)
	statsService := service.NewStatsService(uowFactory)
	tipsterService := service.NewTipsterService(uowFactory)
	pickService := service.NewPickService(uowFactory)
	followService := service.NewFollowService(uowFactory)
	referenceService := service.NewReferenceService(uowFactory)

	server := web.NewServer(
		cfg.JWTSecret,
		userService,
		bankService,
		betService,
		statsService,
		tipsterService,
		pickService,
		followService,
		referenceService,
	)

	httpServer := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: server.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.WithField("addr", cfg.ListenAddr).Infof("Server is running in %s mode", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
	}

	if db != nil {
		logrus.Info("Closing database connection...")
		db.Close()
	}

	// Give cleanup operations time to complete
	select {
	case <-shutdownCtx.Done():
		logrus.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		logrus.Info("Shutdown completed")
	}

	return nil
}
