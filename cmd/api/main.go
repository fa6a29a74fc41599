package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventon/internal/config"
	"eventon/internal/db"
	httpserver "eventon/internal/http"
	"eventon/internal/http/middleware"
	"eventon/internal/logger"
	"eventon/internal/matching"
	"eventon/internal/metrics"
	"eventon/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	gdb, err := connect(cfg.Database, log)
	if err != nil {
		return err
	}

	m := metrics.New()
	st := store.New(gdb)
	svc := matching.NewService(st, log, m, cfg.Database.QueryTimeout)

	router, table := httpserver.NewRouter(httpserver.Deps{
		Logger:      log,
		Metrics:     m,
		Matching:    svc,
		Health:      st,
		JWTSecret:   cfg.Auth.JWTSecret,
		RateLimit:   middleware.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.TTL),
		CORSOrigins: cfg.CORS.Origins,
	})
	log.Debug("organisation-scoped routes registered", zap.Strings("routes", table.Routes()))

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("environment", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// connect opens and migrates the database. When the database is optional a
// failure is logged and a nil handle returned; the store then degrades every
// call.
func connect(cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	gdb, err := db.Connect(cfg, log)
	if err == nil {
		err = db.AutoMigrate(gdb)
	}
	if err != nil {
		if cfg.Optional {
			log.Warn("database unavailable, continuing without it", zap.Error(err))
			return nil, nil
		}
		return nil, fmt.Errorf("database: %w", err)
	}
	return gdb, nil
}
