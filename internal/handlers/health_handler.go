package handlers

import (
	"net/http"
	"time"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DatabaseChecker is satisfied by database.DB.
type DatabaseChecker interface {
	HealthCheck() error
}

// HealthCheckHandler reports liveness of the record store.
type HealthCheckHandler struct {
	db       DatabaseChecker
	store    repositories.TransactionRepositoryInterface
	sessions services.SessionManagerInterface
	driver   string
}

// NewHealthCheckHandler builds the handler. db is nil for the in-memory
// store.
func NewHealthCheckHandler(
	db DatabaseChecker,
	store repositories.TransactionRepositoryInterface,
	sessions services.SessionManagerInterface,
	driver string,
) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, store: store, sessions: sessions, driver: driver}
}

// HealthCheck
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,store=string,records=int,sessions=int}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store unavailable"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if h.db != nil {
		if err := h.db.HealthCheck(); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
	}

	records, err := h.store.Count(c.Request().Context(), models.RecordQuery{})
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Record store query failed"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":   "healthy",
		"time":     time.Now().UTC().Format(time.RFC3339),
		"store":    h.driver,
		"records":  records,
		"sessions": h.sessions.Count(),
	})
}
