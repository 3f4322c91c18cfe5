package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(method string, err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(method, "/api/v1/query", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(err, c)

	var body errors.ErrorResponse
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, body := s.handle(http.MethodGet, echo.NewHTTPError(http.StatusNotFound, "Resource not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.SystemRouteNotFound), body.Error.Code)
	s.Equal("Resource not found", body.Error.Message)
	s.Equal("test-trace-id", body.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestStatusMapping() {
	testCases := []struct {
		status int
		code   errors.ErrorCode
	}{
		{http.StatusBadRequest, errors.ValidationGeneral},
		{http.StatusUnauthorized, errors.AuthMissingToken},
		{http.StatusForbidden, errors.AuthMissingToken},
		{http.StatusMethodNotAllowed, errors.SystemRouteNotFound},
		{http.StatusTooManyRequests, errors.SystemRateLimitExceeded},
		{http.StatusServiceUnavailable, errors.SystemServiceUnavailable},
		{http.StatusTeapot, errors.SystemInternalError},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			s.Equal(tc.code, mapHTTPStatusToErrorCode(tc.status))
		})
	}
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesDetails() {
	rec, body := s.handle(http.MethodGet, stderrors.New("pq: connection refused"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type rangeRequest struct {
		StartDate string `json:"startDate" validate:"required"`
		Page      int    `json:"page" validate:"min=1"`
	}
	validationErr := validator.New().Struct(rangeRequest{})
	s.Require().Error(validationErr)

	rec, body := s.handle(http.MethodGet, validationErr)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), body.Error.Code)
	s.Equal([]string{"Page: must be at least 1", "StartDate: is required"}, body.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestCountsErrors() {
	s.handle(http.MethodGet, echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))
	s.handle(http.MethodGet, echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))

	s.Equal(1, testutil.CollectAndCount(s.registry, "api_errors_total"))

	families, err := s.registry.Gather()
	s.Require().NoError(err)
	s.Require().Len(families, 1)
	metric := families[0].GetMetric()[0]
	s.Equal(float64(2), metric.GetCounter().GetValue())

	labels := map[string]string{}
	for _, lp := range metric.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}
	s.Equal(string(errors.SystemRateLimitExceeded), labels["code"])
	s.Equal("429", labels["status"])
}

func (s *ErrorHandlerTestSuite) TestHeadRequestHasNoBody() {
	rec, _ := s.handle(http.MethodHead, echo.NewHTTPError(http.StatusNotFound, "missing"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Zero(rec.Body.Len())
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(stderrors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestFormatValidationErrorCustomTags() {
	type filterRequest struct {
		Date      string `validate:"br_date"`
		Type      string `validate:"transaction_type"`
		Dimension string `validate:"filter_dimension"`
	}
	v := validator.New()
	for _, tag := range []string{"br_date", "transaction_type", "filter_dimension"} {
		s.Require().NoError(v.RegisterValidation(tag, func(validator.FieldLevel) bool { return false }))
	}

	var fieldErrs validator.ValidationErrors
	s.Require().True(stderrors.As(v.Struct(filterRequest{}), &fieldErrs))

	messages := map[string]string{}
	for _, fe := range fieldErrs {
		messages[fe.Field()] = formatValidationError(fe)
	}
	s.Equal("must be a date in dd/mm/yyyy format between 1970 and 2099", messages["Date"])
	s.Equal("must be a valid transaction type (deposit, withdrawal)", messages["Type"])
	s.Contains(messages["Dimension"], "must be a filter dimension")
}
