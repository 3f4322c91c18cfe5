package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/database"
	"finance-dashboard/internal/dataset"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
)

const tokenCleanupInterval = time.Hour

// App is the assembled dashboard service.
type App struct {
	Config    *config.Config
	DB        *database.DB
	Store     repositories.TransactionRepositoryInterface
	Blacklist repositories.BlacklistedTokenRepositoryInterface
	Dashboard services.DashboardServiceInterface
	Sessions  services.SessionManagerInterface
	Auth      services.AuthServiceInterface
	Tokens    services.TokenServiceInterface
	Limiter   *middleware.RateLimiter
	Registry  *prometheus.Registry
	Echo      *echo.Echo
}

// NewApp loads the dataset, opens the configured record store and wires
// the services and routes on top of it.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	records, err := dataset.LoadFile(cfg.Query.DatasetPath)
	if err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Registry: prometheus.NewRegistry()}
	app.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	if cfg.Database.IsMemory() {
		app.Store = repositories.NewMemoryTransactionRepository(records)
		app.Blacklist = repositories.NewMemoryBlacklistedTokenRepository()
	} else {
		db, err := database.Initialize(ctx, cfg, records)
		if err != nil {
			return nil, err
		}
		app.DB = db
		app.Store = repositories.NewTransactionRepository(db.DB)
		app.Blacklist = repositories.NewBlacklistedTokenRepository(db.DB)
	}

	metrics := services.NewPrometheusMetrics(app.Registry)
	queryLogger := services.NewQueryLogger(slog.Default())

	passwords := services.NewPasswordService(cfg.Security.BCryptCost)
	hash, err := passwords.HashPassword(cfg.Auth.DemoPassword)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}
	users := repositories.NewStaticUserRepository(models.NewUser(cfg.Auth.DemoEmail, cfg.Auth.DemoName, hash))

	app.Tokens = services.NewTokenService(&cfg.JWT)
	app.Auth = services.NewAuthService(users, app.Blacklist, passwords, app.Tokens, metrics, slog.Default())
	app.Dashboard = services.NewDashboardService(app.Store, &cfg.Query, models.DefaultFilterLabelCatalog(), metrics, queryLogger)
	app.Sessions = services.NewSessionManager(app.Dashboard, cfg.Query.SessionIdleTimeout, cfg.Query.SessionSweepInterval, metrics, queryLogger)
	app.Limiter = middleware.NewRateLimiter(cfg.Security)

	deps := RouterDeps{
		Auth:        app.Auth,
		Tokens:      app.Tokens,
		Dashboard:   app.Dashboard,
		Sessions:    app.Sessions,
		Blacklist:   app.Blacklist,
		Store:       app.Store,
		RateLimiter: app.Limiter,
		Registerer:  app.Registry,
		Gatherer:    app.Registry,
	}
	if app.DB != nil {
		deps.DB = app.DB
	}
	app.Echo = NewRouter(cfg, deps)

	slog.Info("Dashboard initialized",
		"store", cfg.Database.Driver,
		"records", len(records),
		"page_size", cfg.Query.PageSize,
		"search_debounce", cfg.Query.SearchDebounce.String(),
	)

	return app, nil
}

// Run serves HTTP and the background janitors until ctx is cancelled or
// one of them fails, then shuts the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         a.Config.Address(),
		Handler:      a.Echo,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting HTTP server", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
		defer cancel()
		slog.Info("Shutting down HTTP server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error { return a.Sessions.Run(gctx) })
	g.Go(func() error { return a.Limiter.Run(gctx) })
	g.Go(func() error { return a.cleanupTokens(gctx, tokenCleanupInterval) })

	return g.Wait()
}

// cleanupTokens drops expired revocations every interval.
func (a *App) cleanupTokens(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			removed, err := a.Blacklist.DeleteExpired()
			if err != nil {
				slog.Warn("Failed to clean up revoked tokens", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("Cleaned up revoked tokens", "removed", removed)
			}
		}
	}
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
