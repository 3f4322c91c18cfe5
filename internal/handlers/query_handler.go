package handlers

import (
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// QueryHandler drives the stateful query session bound to the caller's
// access token.
type QueryHandler struct {
	sessions  services.SessionManagerInterface
	dashboard services.DashboardServiceInterface
	loc       *time.Location
}

func NewQueryHandler(
	sessions services.SessionManagerInterface,
	dashboard services.DashboardServiceInterface,
	loc *time.Location,
) *QueryHandler {
	if loc == nil {
		loc = time.Local
	}
	return &QueryHandler{sessions: sessions, dashboard: dashboard, loc: loc}
}

// session returns the caller's orchestrator. When it fails the error
// response has already been written and the returned error must be passed
// back to echo.
func (h *QueryHandler) session(c echo.Context) (services.QueryOrchestratorInterface, bool, error) {
	orchestrator, err := h.sessions.Get(c.Request().Context(), getTokenJTI(c))
	if err == nil {
		return orchestrator, true, nil
	}
	if stderrors.Is(err, services.ErrSessionIDRequired) {
		return nil, false, SendError(c, errors.AuthMissingToken)
	}
	return nil, false, SendError(c, errors.QueryStoreUnavailable, errors.WithMessage("Transactions could not be loaded"))
}

func (h *QueryHandler) respond(c echo.Context, status int, view models.QueryView) error {
	return c.JSON(status, SuccessResponse{Data: dto.NewQueryViewResponse(view, h.loc, h.dashboard.Catalog())})
}

// updateFailed maps an orchestrator update error to its response.
func (h *QueryHandler) updateFailed(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrOrchestratorClosed) {
		return SendError(c, errors.QuerySessionClosed)
	}
	return SendError(c, errors.QueryStoreUnavailable)
}

// GetView returns the current view of the session
// @Summary Current query view
// @Tags Query
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.QueryViewResponse}
// @Router /query [get]
func (h *QueryHandler) GetView(c echo.Context) error {
	orchestrator, ok, err := h.session(c)
	if !ok {
		return err
	}
	return h.respond(c, http.StatusOK, orchestrator.View())
}

// SetRange
// @Summary Set date range and type prefilter
// @Description Reloads the session from the record store. Empty dates use the default range.
// @Tags Query
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RangeRequest true "Range"
// @Success 200 {object} SuccessResponse{data=dto.QueryViewResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 503 {object} errors.ErrorResponse "QUERY_003 - Store unavailable, previous data kept"
// @Router /query/range [put]
func (h *QueryHandler) SetRange(c echo.Context) error {
	var req dto.RangeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	orchestrator, ok, err := h.session(c)
	if !ok {
		return err
	}

	catalog := h.dashboard.Catalog()
	rng := h.dashboard.ResolveRange(req.StartDate, req.EndDate)
	types := make([]models.TransactionType, 0, len(req.TransactionTypes))
	for _, raw := range req.TransactionTypes {
		t, err := models.ParseTransactionType(catalog.Resolve(models.DimensionTransactionType, raw))
		if err != nil {
			return SendError(c, errors.ValidationInvalidFilter, errors.WithDetails(err.Error()))
		}
		types = append(types, t)
	}

	if err := orchestrator.SetDateRange(c.Request().Context(), rng, types); err != nil {
		return h.updateFailed(c, err)
	}
	return h.respond(c, http.StatusOK, orchestrator.View())
}

// SetFilters replaces the session's dimension filters, keeping its range.
func (h *QueryHandler) SetFilters(c echo.Context) error {
	var req dto.FiltersRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	orchestrator, ok, err := h.session(c)
	if !ok {
		return err
	}

	filters := services.ParseFilterSet(url.Values(req.Filters), h.dashboard.Catalog())

	if err := orchestrator.SetDimensionFilters(c.Request().Context(), filters); err != nil {
		return h.updateFailed(c, err)
	}
	return h.respond(c, http.StatusOK, orchestrator.View())
}

// SetSearch schedules the search term. The view is returned right away with
// searchPending set unless immediate is requested.
// @Summary Set search term
// @Tags Query
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search"
// @Success 202 {object} SuccessResponse{data=dto.QueryViewResponse}
// @Router /query/search [put]
func (h *QueryHandler) SetSearch(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	orchestrator, ok, err := h.session(c)
	if !ok {
		return err
	}

	orchestrator.SetSearchTerm(c.Request().Context(), strings.TrimSpace(req.Term))
	if req.Immediate {
		orchestrator.FlushSearch()
		return h.respond(c, http.StatusOK, orchestrator.View())
	}
	return h.respond(c, http.StatusAccepted, orchestrator.View())
}

// GetPage
// @Summary Page mode
// @Tags Query
// @Security BearerAuth
// @Produce json
// @Param page path int true "1-based page number"
// @Success 200 {object} SuccessResponse{data=dto.QueryViewResponse}
// @Failure 404 {object} errors.ErrorResponse "QUERY_002 - Page out of range"
// @Router /query/pages/{page} [get]
func (h *QueryHandler) GetPage(c echo.Context) error {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("page must be a number"))
	}

	orchestrator, ok, err := h.session(c)
	if !ok {
		return err
	}

	view, changed := orchestrator.GetPage(page)
	if !changed {
		return SendError(c, errors.QueryPageOutOfRange,
			errors.WithDetails("page "+strconv.Itoa(page)+" of "+strconv.Itoa(view.TotalPages)))
	}
	return h.respond(c, http.StatusOK, view)
}

// LoadMore appends the next batch in incremental mode.
func (h *QueryHandler) LoadMore(c echo.Context) error {
	orchestrator, ok, err := h.session(c)
	if !ok {
		return err
	}

	view, changed := orchestrator.LoadMore()
	if !changed {
		return SendError(c, errors.QueryNothingMoreToLoad)
	}
	return h.respond(c, http.StatusOK, view)
}

// Close ends the session and cancels a pending search.
func (h *QueryHandler) Close(c echo.Context) error {
	if !h.sessions.Remove(c.Request().Context(), getTokenJTI(c)) {
		return SendError(c, errors.QuerySessionNotFound)
	}
	return c.NoContent(http.StatusNoContent)
}
