package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/examprep/backend/internal/api"
	"github.com/examprep/backend/internal/infrastructure/config"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"

	_ "github.com/examprep/backend/docs" // swagger docs
)

// @title           ExamPrep API
// @version         1.0
// @description     Question banks, practice exams and a personal wrong-question log.

// @host      localhost:5000
// @BasePath  /

// @securityDefinitions.apikey UserID
// @in                         header
// @name                       user-id

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := openStore(cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}()

	accounts := service.NewAccounts(db, logger)
	library := service.NewLibrary(db, logger)
	wrongs := service.NewWrongAnswers(db, logger)
	exams := service.NewExams(db, wrongs, logger)

	if cfg.AdminName != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		admin, err := accounts.EnsureAdmin(ctx, cfg.AdminName)
		cancel()
		if err != nil {
			logger.Error("failed to seed admin", "name", cfg.AdminName, "error", err)
			os.Exit(1)
		}
		logger.Info("admin ready", "user_id", admin.ID, "name", admin.Name)
	}

	handler := api.NewHandler(accounts, library, wrongs, exams, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", api.Health)
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: RequestID → Logging → CORS → RateLimit → Gzip → mux
	gzip, err := api.Gzip(cfg.GzipMinSize)
	if err != nil {
		logger.Error("failed to build gzip middleware", "error", err)
		os.Exit(1)
	}
	limiter := api.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	var chain http.Handler = gzip(mux)
	chain = limiter.Middleware("/api/")(chain)
	chain = api.CORS(chain)
	chain = api.Logging(logger)(chain)
	chain = api.RequestID(chain)

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chain,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	idle := make(chan struct{})
	go func() {
		defer close(idle)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "driver", cfg.StoreDriver)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
	<-idle
}

func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, store.MongoOptions{Retention: cfg.WrongRetention})
	default:
		return store.NewSQLite(cfg.SQLitePath)
	}
}
