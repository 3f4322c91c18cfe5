package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestQueryHandler(t *testing.T) {
	suite.Run(t, new(QueryHandlerSuite))
}

type QueryHandlerSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	sessions     *service_mocks.MockSessionManagerInterface
	dashboard    *service_mocks.MockDashboardServiceInterface
	orchestrator *service_mocks.MockQueryOrchestratorInterface
	handler      *QueryHandler
	e            *echo.Echo
	rng          models.DateRange
}

func (s *QueryHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.sessions = service_mocks.NewMockSessionManagerInterface(s.ctrl)
	s.dashboard = service_mocks.NewMockDashboardServiceInterface(s.ctrl)
	s.orchestrator = service_mocks.NewMockQueryOrchestratorInterface(s.ctrl)
	s.handler = NewQueryHandler(s.sessions, s.dashboard, time.UTC)
	s.e = echo.New()
	s.e.Validator = NewValidator()

	s.rng = models.NewDateRange(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
	)
	s.dashboard.EXPECT().Catalog().Return(models.DefaultFilterLabelCatalog()).AnyTimes()
}

func (s *QueryHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *QueryHandlerSuite) newContext(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var raw []byte
	if body != nil {
		raw, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set(tokenJTIContextKey, "jti-1")
	return c, rec
}

func (s *QueryHandlerSuite) expectSession() {
	s.sessions.EXPECT().Get(gomock.Any(), "jti-1").Return(s.orchestrator, nil)
}

func (s *QueryHandlerSuite) decodeView(rec *httptest.ResponseRecorder) dto.QueryViewResponse {
	var resp struct {
		Data dto.QueryViewResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data
}

func (s *QueryHandlerSuite) decodeCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *QueryHandlerSuite) TestGetView() {
	s.Run("returns the session view", func() {
		s.expectSession()
		s.orchestrator.EXPECT().View().Return(models.QueryView{Total: 12, TotalPages: 2, CurrentPage: 1, Cursor: 10, HasMore: true})

		c, rec := s.newContext(http.MethodGet, "/query", nil)

		s.NoError(s.handler.GetView(c))
		s.Equal(http.StatusOK, rec.Code)
		view := s.decodeView(rec)
		s.Equal(12, view.Pagination.Total)
		s.Equal(10, view.Pagination.Loaded)
		s.True(view.Pagination.HasMore)
	})

	s.Run("missing session id", func() {
		s.sessions.EXPECT().Get(gomock.Any(), "").Return(nil, services.ErrSessionIDRequired)

		c, rec := s.newContext(http.MethodGet, "/query", nil)
		c.Set(tokenJTIContextKey, nil)

		s.NoError(s.handler.GetView(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Equal("AUTH_002", s.decodeCode(rec))
	})

	s.Run("initial load fails", func() {
		s.sessions.EXPECT().Get(gomock.Any(), "jti-1").Return(nil, stderrors.New("store offline"))

		c, rec := s.newContext(http.MethodGet, "/query", nil)

		s.NoError(s.handler.GetView(c))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal("QUERY_003", s.decodeCode(rec))
	})
}

func (s *QueryHandlerSuite) TestSetRange() {
	s.Run("resolves dates and type labels", func() {
		s.expectSession()
		s.dashboard.EXPECT().ResolveRange("01/03/2024", "31/03/2024").Return(s.rng)
		s.orchestrator.EXPECT().
			SetDateRange(gomock.Any(), s.rng, []models.TransactionType{models.TransactionTypeWithdrawal}).
			Return(nil)
		s.orchestrator.EXPECT().View().Return(models.QueryView{Range: s.rng, Total: 4})

		c, rec := s.newContext(http.MethodPut, "/query/range", dto.RangeRequest{
			StartDate:        "01/03/2024",
			EndDate:          "31/03/2024",
			TransactionTypes: []string{"Saque"},
		})

		s.NoError(s.handler.SetRange(c))
		s.Equal(http.StatusOK, rec.Code)
		view := s.decodeView(rec)
		s.Equal("01/03/2024", view.Range.StartDate)
		s.Equal(4, view.Pagination.Total)
	})

	s.Run("malformed date is rejected before the session is touched", func() {
		c, _ := s.newContext(http.MethodPut, "/query/range", dto.RangeRequest{StartDate: "2024-03-01"})

		err := s.handler.SetRange(c)

		var verrs validator.ValidationErrors
		s.Require().ErrorAs(err, &verrs)
		s.Equal("startDate", verrs[0].Field())
	})

	s.Run("unknown type is rejected", func() {
		c, _ := s.newContext(http.MethodPut, "/query/range", dto.RangeRequest{TransactionTypes: []string{"refund"}})

		s.Error(s.handler.SetRange(c))
	})

	s.Run("store failure", func() {
		s.expectSession()
		s.dashboard.EXPECT().ResolveRange("", "").Return(s.rng)
		s.orchestrator.EXPECT().SetDateRange(gomock.Any(), s.rng, []models.TransactionType{}).Return(stderrors.New("timeout"))

		c, rec := s.newContext(http.MethodPut, "/query/range", dto.RangeRequest{})

		s.NoError(s.handler.SetRange(c))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Equal("QUERY_003", s.decodeCode(rec))
	})

	s.Run("closed session", func() {
		s.expectSession()
		s.dashboard.EXPECT().ResolveRange("", "").Return(s.rng)
		s.orchestrator.EXPECT().SetDateRange(gomock.Any(), gomock.Any(), gomock.Any()).Return(services.ErrOrchestratorClosed)

		c, rec := s.newContext(http.MethodPut, "/query/range", dto.RangeRequest{})

		s.NoError(s.handler.SetRange(c))
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("QUERY_004", s.decodeCode(rec))
	})
}

func (s *QueryHandlerSuite) TestSetFilters() {
	s.Run("replaces dimension values only", func() {
		s.expectSession()
		gomock.InOrder(
			s.orchestrator.EXPECT().
				SetDimensionFilters(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, filters models.FilterSet) error {
					s.False(filters.Range.IsBounded())
					s.Nil(filters.Accepted(models.DimensionState))
					s.Equal([]string{"deposit"}, filters.Accepted(models.DimensionTransactionType))
					s.Equal([]string{"Nubank"}, filters.Accepted(models.DimensionAccount))
					return nil
				}),
			s.orchestrator.EXPECT().View().Return(models.QueryView{Total: 3}),
		)

		c, rec := s.newContext(http.MethodPut, "/query/filters", dto.FiltersRequest{Filters: map[string][]string{
			"transactionType": {"Depósito"},
			"account":         {"Nubank", " "},
		}})

		s.NoError(s.handler.SetFilters(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(3, s.decodeView(rec).Pagination.Total)
	})

	s.Run("unknown dimension", func() {
		c, _ := s.newContext(http.MethodPut, "/query/filters", dto.FiltersRequest{Filters: map[string][]string{"merchant": {"x"}}})

		s.Error(s.handler.SetFilters(c))
	})
}

func (s *QueryHandlerSuite) TestSetSearch() {
	s.Run("debounced", func() {
		s.expectSession()
		s.orchestrator.EXPECT().SetSearchTerm(gomock.Any(), "nubank")
		s.orchestrator.EXPECT().View().Return(models.QueryView{SearchPending: true})

		c, rec := s.newContext(http.MethodPut, "/query/search", dto.SearchRequest{Term: "  nubank "})

		s.NoError(s.handler.SetSearch(c))
		s.Equal(http.StatusAccepted, rec.Code)
		s.True(s.decodeView(rec).SearchPending)
	})

	s.Run("immediate", func() {
		s.expectSession()
		gomock.InOrder(
			s.orchestrator.EXPECT().SetSearchTerm(gomock.Any(), "air"),
			s.orchestrator.EXPECT().FlushSearch().Return(true),
			s.orchestrator.EXPECT().View().Return(models.QueryView{SearchTerm: "air", Total: 2}),
		)

		c, rec := s.newContext(http.MethodPut, "/query/search", dto.SearchRequest{Term: "air", Immediate: true})

		s.NoError(s.handler.SetSearch(c))
		s.Equal(http.StatusOK, rec.Code)
		view := s.decodeView(rec)
		s.Equal("air", view.SearchTerm)
		s.False(view.SearchPending)
	})
}

func (s *QueryHandlerSuite) TestGetPage() {
	tests := []struct {
		name       string
		param      string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:  "valid page",
			param: "2",
			setup: func() {
				s.expectSession()
				s.orchestrator.EXPECT().GetPage(2).Return(models.QueryView{CurrentPage: 2, TotalPages: 3}, true)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:  "out of range",
			param: "7",
			setup: func() {
				s.expectSession()
				s.orchestrator.EXPECT().GetPage(7).Return(models.QueryView{CurrentPage: 1, TotalPages: 3}, false)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "QUERY_002",
		},
		{
			name:       "not a number",
			param:      "two",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_003",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			tt.setup()
			c, rec := s.newContext(http.MethodGet, "/query/pages/"+tt.param, nil)
			c.SetParamNames("page")
			c.SetParamValues(tt.param)

			s.NoError(s.handler.GetPage(c))
			s.Equal(tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				s.Equal(tt.wantCode, s.decodeCode(rec))
			} else {
				s.Equal(2, s.decodeView(rec).Pagination.CurrentPage)
			}
		})
	}
}

func (s *QueryHandlerSuite) TestLoadMore() {
	s.Run("appends a batch", func() {
		s.expectSession()
		s.orchestrator.EXPECT().LoadMore().Return(models.QueryView{Cursor: 20, Total: 25, HasMore: true}, true)

		c, rec := s.newContext(http.MethodPost, "/query/more", nil)

		s.NoError(s.handler.LoadMore(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(20, s.decodeView(rec).Pagination.Loaded)
	})

	s.Run("everything loaded", func() {
		s.expectSession()
		s.orchestrator.EXPECT().LoadMore().Return(models.QueryView{Cursor: 25, Total: 25}, false)

		c, rec := s.newContext(http.MethodPost, "/query/more", nil)

		s.NoError(s.handler.LoadMore(c))
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("QUERY_005", s.decodeCode(rec))
	})
}

func (s *QueryHandlerSuite) TestClose() {
	s.Run("removes the session", func() {
		s.sessions.EXPECT().Remove(gomock.Any(), "jti-1").Return(true)

		c, rec := s.newContext(http.MethodDelete, "/query", nil)

		s.NoError(s.handler.Close(c))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("no session", func() {
		s.sessions.EXPECT().Remove(gomock.Any(), "jti-1").Return(false)

		c, rec := s.newContext(http.MethodDelete, "/query", nil)

		s.NoError(s.handler.Close(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("QUERY_001", s.decodeCode(rec))
	})
}
