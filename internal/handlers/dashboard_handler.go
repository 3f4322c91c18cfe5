package handlers

import (
	"net/http"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler answers one-shot dashboard reads driven entirely by
// query parameters.
type DashboardHandler struct {
	dashboard services.DashboardServiceInterface
	loc       *time.Location
}

func NewDashboardHandler(dashboard services.DashboardServiceInterface, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.Local
	}
	return &DashboardHandler{dashboard: dashboard, loc: loc}
}

// GetDashboard
// @Summary Dashboard overview
// @Description Summary, money flow, first page and recent transactions for a range and filter set.
// Malformed dates fall back to the default range.
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param startDate query string false "dd/mm/yyyy"
// @Param endDate query string false "dd/mm/yyyy"
// @Param transactionType query []string false "deposit, withdrawal or their labels" collectionFormat(multi)
// @Param account query []string false "Accounts" collectionFormat(multi)
// @Param industry query []string false "Industries" collectionFormat(multi)
// @Param state query []string false "States" collectionFormat(multi)
// @Param currency query []string false "Currencies" collectionFormat(multi)
// @Param search query string false "Matches account or industry"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} SuccessResponse{data=dto.QueryViewResponse}
// @Failure 503 {object} errors.ErrorResponse "QUERY_003 - Store unavailable"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	catalog := h.dashboard.Catalog()
	rng := h.dashboard.ResolveRange(c.QueryParam("startDate"), c.QueryParam("endDate"))
	filters := services.ParseFilterSet(c.QueryParams(), catalog).WithRange(rng)

	view, err := h.dashboard.GetDashboard(c.Request().Context(), services.DashboardRequest{
		Filters:    filters,
		SearchTerm: strings.TrimSpace(c.QueryParam("search")),
		Page:       getIntParam(c, "page", 1),
	})
	if err != nil {
		return SendError(c, errors.QueryStoreUnavailable, errors.WithMessage("Transactions could not be loaded"))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewQueryViewResponse(view, h.loc, catalog)})
}

// GetFilterOptions lists the selectable filter values for the range given
// by startDate and endDate.
func (h *DashboardHandler) GetFilterOptions(c echo.Context) error {
	rng := h.dashboard.ResolveRange(c.QueryParam("startDate"), c.QueryParam("endDate"))

	options, err := h.dashboard.FilterOptions(c.Request().Context(), rng)
	if err != nil {
		return SendError(c, errors.QueryStoreUnavailable, errors.WithMessage("Filter options could not be loaded"))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewFilterOptionsResponse(rng, options, h.loc)})
}
