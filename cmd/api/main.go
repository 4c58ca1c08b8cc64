package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(cfg.Logger())
	if envErr != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Audit is optional: without a reachable database the service still generates.
	var (
		recorder service.AuditRecorder
		stats    service.StatsReader
		db       *sql.DB
	)
	if cfg.DatabaseDSN == "" {
		slog.Info("DATABASE_DSN not set — audit disabled")
	} else if conn, err := repository.NewDB(ctx, cfg.DatabaseDSN); err != nil {
		slog.Warn("database connection failed — audit disabled", "error", err)
	} else {
		auditRepo := repository.NewAuditRepository(conn)
		if err := auditRepo.EnsureSchema(ctx); err != nil {
			slog.Warn("creating audit schema failed — audit disabled", "error", err)
			conn.Close()
		} else {
			db = conn
			recorder = auditRepo
			stats = auditRepo
		}
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(nil, recorder, cfg.FingerprintKey))
	analyzerHandler := handler.NewAnalyzerHandler(service.NewAnalyzerService(recorder, cfg.FingerprintKey))
	statsHandler := handler.NewStatsHandler(service.NewStatsService(stats))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/v1/charset", analyzerHandler.HandleCharset)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/generate/custom", genHandler.HandleGenerateCustom)
		r.Post("/api/v1/generate/pronounceable", genHandler.HandleGeneratePronounceable)
		r.Post("/api/v1/generate/batch", genHandler.HandleGenerateBatch)
		r.Post("/api/v1/analyze", analyzerHandler.HandleAnalyze)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.OperatorAuth(cfg.OperatorSecret))
		r.Get("/api/v1/stats", statsHandler.HandleStats)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "audit", recorder != nil)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}
	if db != nil {
		db.Close()
	}

	slog.Info("server stopped")
}
