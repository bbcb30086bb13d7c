package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"sweldo/internal/domain/holiday"
	"sweldo/internal/domain/profile"
	"sweldo/internal/platform/config"
	"sweldo/internal/platform/db"
	"sweldo/internal/platform/metrics"
	"sweldo/internal/transport/http/api"
	authhandler "sweldo/internal/transport/http/handlers/auth"
	calchandler "sweldo/internal/transport/http/handlers/calc"
	holidayhandler "sweldo/internal/transport/http/handlers/holiday"
	reporthandler "sweldo/internal/transport/http/handlers/report"
	"sweldo/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.Environment == "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sweldo"),
		slog.String("env", cfg.Environment),
	)
	slog.SetDefault(logger)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			logger.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	profileStore := profile.NewStore(pool)
	holidayStore := holiday.NewStore(pool)
	holidayService := holiday.NewService(holidayStore, logger)
	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))
	router.Use(chimiddleware.CleanPath)
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.RequestSize(cfg.MaxBodyBytes))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(profileStore, cfg.JWTSecret, cfg.JWTTTL).RegisterRoutes(r)
		calchandler.NewHandler(holidayService).RegisterRoutes(r)
		holidayhandler.NewHandler(holidayStore, holidayService).RegisterRoutes(r)
		reporthandler.NewHandler().RegisterRoutes(r)
	})

	logger.Info("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
