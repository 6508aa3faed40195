package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/Simplici0/costboard/internal/catalog"
	"github.com/Simplici0/costboard/internal/config"
	"github.com/Simplici0/costboard/internal/db"
	"github.com/Simplici0/costboard/internal/logging"
	"github.com/Simplici0/costboard/internal/metrics"
	"github.com/Simplici0/costboard/internal/migrations"
	"github.com/Simplici0/costboard/internal/pricing"
	"github.com/Simplici0/costboard/internal/seed"
)

const defaultTemplateDir = "web/templates"

type server struct {
	estimator   *pricing.Estimator
	db          *sql.DB
	log         zerolog.Logger
	templateDir string
}

func main() {
	cfg := config.Load()
	logger := logging.New(logging.Config{Level: cfg.LogLevel, Console: cfg.IsDev()}, os.Stderr)
	ctx := context.Background()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open database")
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(ctx, database, "migrations"); err != nil {
			logger.Fatal().Err(err).Msg("failed to run database migrations")
		}
	}

	source := catalog.Default()
	if cfg.CatalogFile != "" {
		source, err = catalog.LoadFile(cfg.CatalogFile)
		if err != nil {
			logger.Fatal().Err(err).Str("file", cfg.CatalogFile).Msg("failed to load catalog file")
		}
	}

	stats, err := seed.Run(database, source)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed catalog")
	}

	cat, err := catalog.LoadDB(ctx, database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalog")
	}
	metrics.CatalogParts.Set(float64(len(cat.Parts)))
	logger.Info().
		Int("seed_inserts", stats.Inserts).
		Int("seed_updates", stats.Updates).
		Int("seed_deletes", stats.Deletes).
		Int("parts", len(cat.Parts)).
		Int("pricing_rules", len(cat.Pricing)).
		Msg("catalog loaded")

	srv := &server{
		estimator:   pricing.NewEstimator(cat),
		db:          database,
		log:         logger,
		templateDir: defaultTemplateDir,
	}

	addr := ":" + cfg.Port
	logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)
	r.Get("/api/estimate", s.handleEstimate)
	r.Get("/api/catalog", s.handleCatalog)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler())
	return r
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("took", time.Since(start)).
			Msg("request")
	})
}
