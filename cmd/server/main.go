// Package main is the entry point for the BriefReads API server.
//
// BriefReads serves a read-only quote feed backed by a gzipped JSONL corpus,
// plus a per-user saved-quotes collection stored in SQLite. Startup order:
//
//  1. Environment: optional .env file (godotenv)
//  2. Configuration: validated env-based config
//  3. Logging: zerolog global level and output
//  4. Observability: optional OpenTelemetry tracing (OTLP/gRPC)
//  5. Storage: SQLite via GORM, with schema migration
//  6. Corpus: quote cache, optionally warmed before accepting traffic
//  7. HTTP: Gin router with the full middleware stack
//
// Shutdown is graceful on SIGINT/SIGTERM: the HTTP server drains in-flight
// requests before tracing is flushed and the process exits.
//
// @title        BriefReads API
// @version      1.0
// @description  Quote feed and saved-quotes backend.
// @BasePath     /api/v1
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
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/montasssar/briefreads/internal/config"
	httpapi "github.com/montasssar/briefreads/internal/http"
	"github.com/montasssar/briefreads/internal/observability"
	"github.com/montasssar/briefreads/internal/quotes"
	"github.com/montasssar/briefreads/internal/repo"
	"github.com/montasssar/briefreads/internal/sysutil"

	"github.com/montasssar/briefreads/docs"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = ""

func main() {
	// .env is a development convenience; real deployments set env directly.
	if !sysutil.IsTruthy(os.Getenv("SKIP_DOTENV")) {
		_ = godotenv.Load()
	}

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ver := sysutil.FirstNonEmpty(version, os.Getenv("APP_VERSION"), "dev")
	docs.SwaggerInfo.BasePath = cfg.APIBasePath

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, ver)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db_path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if cfg.OTEL.Enabled {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			log.Warn().Err(err).Msg("gorm tracing plugin failed; continuing without db spans")
		}
	}

	cache := quotes.NewCache(cfg.QuotesPath,
		quotes.WithReservoirLimit(cfg.ReservoirLimit),
		quotes.WithPerTagCap(cfg.PerTagCap),
	)
	if cfg.WarmOnStart {
		start := time.Now()
		cache.Ensure(ctx)
		ev := log.Info()
		if err := cache.LoadErr(); err != nil {
			ev = log.Warn().Err(err)
		}
		ev.Int("loaded", cache.Len()).
			Int("scanned", cache.Total()).
			Dur("took", time.Since(start)).
			Str("path", cfg.QuotesPath).
			Msg("corpus warmed")
	}

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cache, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", ver).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown error")
	}
	log.Info().Msg("server stopped")
}
