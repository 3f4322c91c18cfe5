package server

import (
	"net/http"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/middleware"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxBodySize = "64K"

// RouterDeps are the collaborators the HTTP routes are built from.
type RouterDeps struct {
	Auth        services.AuthServiceInterface
	Tokens      services.TokenServiceInterface
	Dashboard   services.DashboardServiceInterface
	Sessions    services.SessionManagerInterface
	Blacklist   repositories.BlacklistedTokenRepositoryInterface
	Store       repositories.TransactionRepositoryInterface
	DB          handlers.DatabaseChecker
	RateLimiter *middleware.RateLimiter
	Registerer  prometheus.Registerer
	Gatherer    prometheus.Gatherer
}

// NewRouter builds the echo instance serving the dashboard API.
func NewRouter(cfg *config.Config, deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(deps.Registerer)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(maxBodySize))
	if deps.RateLimiter != nil {
		e.Use(deps.RateLimiter.Middleware())
	}

	loc := cfg.Query.Location
	health := handlers.NewHealthCheckHandler(deps.DB, deps.Store, deps.Sessions, cfg.Database.Driver)
	auth := handlers.NewAuthHandler(deps.Auth, deps.Tokens, deps.Sessions)
	dashboard := handlers.NewDashboardHandler(deps.Dashboard, loc)
	query := handlers.NewQueryHandler(deps.Sessions, deps.Dashboard, loc)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))

	requireAuth := middleware.RequireAuth(deps.Tokens, deps.Blacklist)

	v1 := e.Group("/api/v1")

	authGroup := v1.Group("/auth")
	authGroup.POST("/login", auth.Login)
	authGroup.POST("/logout", auth.Logout, requireAuth)
	authGroup.GET("/check", auth.Check)

	v1.GET("/dashboard", dashboard.GetDashboard, requireAuth)
	v1.GET("/filters/options", dashboard.GetFilterOptions, requireAuth)

	q := v1.Group("/query", requireAuth)
	q.GET("", query.GetView)
	q.DELETE("", query.Close)
	q.PUT("/range", query.SetRange)
	q.PUT("/filters", query.SetFilters)
	q.PUT("/search", query.SetSearch)
	q.GET("/pages/:page", query.GetPage)
	q.POST("/more", query.LoadMore)

	return e
}
