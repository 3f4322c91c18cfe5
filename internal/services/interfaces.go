package services

import (
	"context"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
)

type contextKey string

// RequestIDContextKey carries the request trace ID on a context.Context.
const RequestIDContextKey contextKey = "request_id"

// WithRequestID returns ctx carrying requestID for log correlation.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDContextKey, requestID)
}

// QueryOrchestratorInterface is one stateful dashboard query: it owns the
// loaded records, the active filters and search term, and the pagination
// state, and recomputes the view whenever one of them changes.
type QueryOrchestratorInterface interface {
	// SetDateRange replaces the date range and transaction type prefilter and
	// reloads from the record store.
	SetDateRange(ctx context.Context, rng models.DateRange, types []models.TransactionType) error
	// SetFilters replaces the filter set. The record store is only queried
	// again when the date range or type prefilter changed.
	SetFilters(ctx context.Context, filters models.FilterSet) error
	// SetDimensionFilters replaces the dimension values and keeps the current
	// date range.
	SetDimensionFilters(ctx context.Context, filters models.FilterSet) error
	// SetSearchTerm schedules term to be applied after the debounce delay.
	SetSearchTerm(ctx context.Context, term string)
	// FlushSearch applies a pending search term immediately.
	FlushSearch() bool
	GetPage(n int) (models.QueryView, bool)
	LoadMore() (models.QueryView, bool)
	View() models.QueryView
	OnChange(listener func(models.QueryView))
	Close()
}

// DashboardServiceInterface answers stateless dashboard requests and builds
// orchestrators for query sessions.
type DashboardServiceInterface interface {
	ResolveRange(startParam, endParam string) models.DateRange
	DefaultFilters() models.FilterSet
	Catalog() models.FilterLabelCatalog
	GetDashboard(ctx context.Context, req DashboardRequest) (models.QueryView, error)
	FilterOptions(ctx context.Context, rng models.DateRange) (models.FilterOptions, error)
	NewOrchestrator() QueryOrchestratorInterface
}

// SessionManagerInterface keeps one orchestrator per client session.
type SessionManagerInterface interface {
	Get(ctx context.Context, sessionID string) (QueryOrchestratorInterface, error)
	Remove(ctx context.Context, sessionID string) bool
	EvictIdle(now time.Time) int
	Run(ctx context.Context) error
	Count() int
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type QueryLoggerInterface interface {
	LogRecordsFetched(ctx context.Context, query models.RecordQuery, count int, duration time.Duration)
	LogFetchFailed(ctx context.Context, query models.RecordQuery, err error)
	LogRecomputed(ctx context.Context, trigger string, total int, granularity models.Granularity, duration time.Duration)
	LogSearchScheduled(ctx context.Context, term string, delay time.Duration)
	LogSearchApplied(ctx context.Context, term string, matches int)
	LogSessionCreated(ctx context.Context, sessionID string)
	LogSessionClosed(ctx context.Context, sessionID string, reason string)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, accessToken string) error
	CheckAuth(accessToken string) bool
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}
