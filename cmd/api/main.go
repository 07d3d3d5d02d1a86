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

	"livraria/internal/book"
	"livraria/internal/config"
	"livraria/internal/httpx"
	"livraria/internal/platform/database"
	"livraria/internal/platform/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// logger settings come from config, so this is the one plain exit
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	dbPool, err := database.Open(ctx, cfg.DatabaseDSN, cfg.DBMaxConns)
	if err != nil {
		log.Fatal("cannot open database", zap.Error(err))
	}
	defer dbPool.Close()
	log.Info("database connection OK", zap.String("dsn", database.RedactDSN(cfg.DatabaseDSN)))

	metrics := httpx.NewMetrics()
	metrics.Registerer().MustRegister(database.NewPoolCollector(dbPool))

	var limiter *httpx.RateLimitMiddleware
	if cfg.RateLimitRPS > 0 {
		limiter = httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		defer limiter.Stop()
	}

	bookRepository := book.NewPostgresRepo(dbPool, cfg.DBQueryTimeout)
	bookService := book.NewService(bookRepository)
	bookHandler := book.NewHTTPHandler(bookService, log)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      newRouter(cfg, log, bookHandler, dbPool, metrics, limiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", cfg.Addr()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("server error", zap.Error(err))
		}
		return
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
		return
	}
	log.Info("server exited properly")
}

type pinger interface {
	Ping(ctx context.Context) error
}

// newRouter wires the book routes, the probes and /metrics behind the
// middleware chain. limiter may be nil.
func newRouter(
	cfg config.Config,
	log *zap.Logger,
	books *book.HTTPHandler,
	db pinger,
	metrics *httpx.Metrics,
	limiter *httpx.RateLimitMiddleware,
) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", metrics.Handler())

	books.Register(router)

	// metrics reads r.Pattern, which the mux sets on the request it is given
	var h http.Handler = metrics.Middleware(router)
	if limiter != nil {
		h = limiter.Middleware(h)
	}
	h = httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes)(h)
	h = httpx.SecurityHeadersMiddleware(cfg.EnableHSTS)(h)
	h = httpx.CORSMiddleware(cfg.CORSAllowedOrigins)(h)
	h = httpx.RecoveryMiddleware(log)(h)
	h = httpx.AccessLogMiddleware(log)(h)
	return httpx.RequestIDMiddleware(h)
}
