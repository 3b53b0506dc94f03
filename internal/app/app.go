// Package app wires configuration, storage, services and transport into a
// runnable HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres"
	mealrepo "github.com/heartmarshall/mealtrack-backend/internal/adapter/postgres/meal"
	"github.com/heartmarshall/mealtrack-backend/internal/config"
	mealsvc "github.com/heartmarshall/mealtrack-backend/internal/service/meal"
	"github.com/heartmarshall/mealtrack-backend/internal/session"
	"github.com/heartmarshall/mealtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/mealtrack-backend/internal/transport/rest"
)

// Database is what the HTTP stack needs from storage: queries for the meal
// repository and a ping for readiness checks. *pgxpool.Pool satisfies it.
type Database interface {
	postgres.Querier
	Ping(ctx context.Context) error
}

// Router is the assembled HTTP handler plus resources that need stopping.
type Router struct {
	http.Handler
	limiter *middleware.RateLimiter
}

// Close releases background resources owned by the router.
func (r *Router) Close() {
	if r.limiter != nil {
		r.limiter.Stop()
	}
}

// NewRouter builds repository, service and handlers over db and wraps them
// in the middleware chain.
func NewRouter(cfg *config.Config, logger *slog.Logger, db Database) *Router {
	cookies := session.NewCookies(cfg.Session)

	meals := mealsvc.NewService(logger, mealrepo.New(db), mealsvc.Limits{
		MaxNameLength:        cfg.Meals.MaxNameLength,
		MaxDescriptionLength: cfg.Meals.MaxDescriptionLength,
	})

	api := http.NewServeMux()
	rest.NewMealHandler(meals, cookies, logger).Register(api, cfg.Meals.RoutePrefix)

	var (
		limiter   *middleware.RateLimiter
		rateLimit middleware.Middleware
	)
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		rateLimit = limiter.Limit(cfg.RateLimit.RequestsPerMinute)
	}

	root := http.NewServeMux()
	rest.NewHealthHandler(db, postgres.NewSchemaChecker(db), BuildVersion()).Register(root)
	root.Handle("/", middleware.Chain(rateLimit, middleware.Session(cookies))(api))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(root)

	return &Router{Handler: handler, limiter: limiter}
}

// Run connects to the database, optionally applies migrations, and serves
// HTTP until ctx is cancelled. Shutdown waits up to ShutdownTimeout for
// in-flight requests.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		applied, err := postgres.MigrateUp(ctx, cfg.Database.DSN)
		if err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	router := NewRouter(cfg, logger, pool)
	defer router.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("http server stopped")
	return nil
}
