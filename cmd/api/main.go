// @title           Wellsure Health Risk API
// @version         1.0
// @description     Self-reported lifestyle and mental-health risk assessment.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MHK-404/Wellsure-backend/internal/assessment"
	"github.com/MHK-404/Wellsure-backend/internal/auth"
	"github.com/MHK-404/Wellsure-backend/internal/config"
	"github.com/MHK-404/Wellsure-backend/internal/handler"
	"github.com/MHK-404/Wellsure-backend/internal/logger"
	"github.com/MHK-404/Wellsure-backend/internal/storage"
)

const serviceName = "wellsure-api"

// set with -ldflags "-X main.version=..."
var version = "1.0.0"

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, serviceName)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	table, err := assessment.LoadTable(cfg.RiskTablePath)
	if err != nil {
		return err
	}
	validator := assessment.NewValidator(cfg.RequiredFields...)
	service := assessment.NewService(table, validator)
	log.Info("scoring table loaded",
		zap.String("version", table.Version),
		zap.Strings("required_fields", validator.Required()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *storage.Store
	if cfg.LedgerEnabled() {
		store, err = storage.Open(ctx, cfg.DatabasePath)
		if err != nil {
			return err
		}
		defer store.Close()
		log.Info("assessment ledger enabled", zap.String("path", cfg.DatabasePath))
	}

	var signer *auth.Signer
	if cfg.AdminJWTSecret != "" {
		signer, err = auth.NewSigner(cfg.AdminJWTSecret)
		if err != nil {
			return err
		}
	}
	if store != nil && signer == nil {
		log.Warn("ADMIN_JWT_SECRET is not set, admin routes are disabled")
	}

	router := handler.NewRouter(handler.New(service, store, log, version), handler.RouterConfig{
		AllowedOrigins:  cfg.AllowedOrigins,
		AllowAllOrigins: cfg.AllowAllOrigins(),
		Signer:          signer,
		RateRPS:         cfg.RateLimit.RPS,
		RateBurst:       cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			zap.String("addr", cfg.HTTP.Addr),
			zap.Strings("allowed_origins", cfg.AllowedOrigins))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
