package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/govjobs/govjobs-backend/internal/config"
	"github.com/govjobs/govjobs-backend/internal/database"
	"github.com/govjobs/govjobs-backend/internal/logger"
	"github.com/govjobs/govjobs-backend/internal/mailer"
	"github.com/govjobs/govjobs-backend/internal/middleware"
	"github.com/govjobs/govjobs-backend/internal/repository"
	"github.com/govjobs/govjobs-backend/internal/router"
	"github.com/govjobs/govjobs-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting GovJobs Backend")

	if cfg.UsingDefaultSecret() {
		log.Warn().Msg("JWT_SECRET is not set; using the development default. Do not run like this in production")
	}
	if !cfg.SMTP.Enabled() {
		log.Warn().Msg("EMAIL_USER/EMAIL_PASS not set; contact form submissions will fail")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ctx is cancelled on SIGINT/SIGTERM; it also aborts a slow database start.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ─── Apply Migrations ──────────────────────────────────────────────
	if cfg.AutoMigrate {
		if err := database.MigrateUp(cfg.DatabaseURL, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Services & Handlers ───────────────────────────────
	sender := mailer.NewSMTPSender(cfg.SMTP, log)
	services := router.NewServices(cfg, repository.NewPostgres(pool), sender, log)
	handlers := router.NewHandlers(services, pool, log)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	go limiter.RunCleanup(ctx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(services.Auth, handlers, cfg, log, limiter)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	<-ctx.Done()
	stop()
	log.Info().Msg("Shutting down gracefully...")

	// Stop accepting new HTTP requests (5s timeout); the pool closes on return.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
