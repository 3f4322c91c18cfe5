package dto

import (
	"time"

	"finance-dashboard/internal/models"
)

// DisplayDateLayout renders dates as dd/mm/yyyy.
const DisplayDateLayout = "02/01/2006"

// RangeRequest sets the date range and the transaction type prefilter of a
// query session. Empty dates fall back to the default range.
type RangeRequest struct {
	StartDate        string   `json:"startDate" validate:"omitempty,br_date"`
	EndDate          string   `json:"endDate" validate:"omitempty,br_date"`
	TransactionTypes []string `json:"transactionTypes" validate:"omitempty,max=2,dive,transaction_type"`
}

// FiltersRequest replaces the accepted values of every dimension. Dimensions
// left out become unconstrained. The session's date range is kept.
type FiltersRequest struct {
	Filters map[string][]string `json:"filters" validate:"dive,keys,filter_dimension,endkeys,max=100,dive,max=255"`
}

// SearchRequest sets the search term. Immediate skips the debounce delay.
type SearchRequest struct {
	Term      string `json:"term" validate:"max=200"`
	Immediate bool   `json:"immediate"`
}

type TransactionResponse struct {
	Date                 int64  `json:"date"`
	DisplayDate          string `json:"displayDate"`
	Amount               string `json:"amount"`
	TransactionType      string `json:"transactionType"`
	TransactionTypeLabel string `json:"transactionTypeLabel"`
	Currency             string `json:"currency"`
	Account              string `json:"account"`
	Industry             string `json:"industry"`
	State                string `json:"state"`
}

type SummaryResponse struct {
	TotalBalance     string `json:"totalBalance"`
	Income           string `json:"income"`
	Expenses         string `json:"expenses"`
	TransactionCount int    `json:"transactionCount"`
	DepositCount     int    `json:"depositCount"`
	WithdrawalCount  int    `json:"withdrawalCount"`
}

type MoneyFlowPoint struct {
	Label       string    `json:"label"`
	Start       time.Time `json:"start"`
	Deposits    string    `json:"deposits"`
	Withdrawals string    `json:"withdrawals"`
}

// PaginationInfo covers both page mode (currentPage, totalPages) and
// incremental mode (loaded, hasMore).
type PaginationInfo struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	Total       int  `json:"total"`
	Loaded      int  `json:"loaded"`
	HasMore     bool `json:"hasMore"`
}

type RangeResponse struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// QueryViewResponse is the wire form of a dashboard view.
type QueryViewResponse struct {
	PageItems     []TransactionResponse `json:"pageItems"`
	Displayed     []TransactionResponse `json:"displayed"`
	Pagination    PaginationInfo        `json:"pagination"`
	Summary       SummaryResponse       `json:"summary"`
	Granularity   string                `json:"granularity,omitempty"`
	MoneyFlow     []MoneyFlowPoint      `json:"moneyFlow"`
	Recent        []TransactionResponse `json:"recentTransactions"`
	Range         RangeResponse         `json:"range"`
	Filters       map[string][]string   `json:"filters"`
	SearchTerm    string                `json:"searchTerm"`
	Loading       bool                  `json:"loading"`
	SearchPending bool                  `json:"searchPending"`
}

// FilterOptionsResponse lists the selectable values per dimension for a range.
type FilterOptionsResponse struct {
	Range   RangeResponse                    `json:"range"`
	Options map[string][]models.FilterOption `json:"options"`
}

// NewQueryViewResponse renders view with dates in loc and type labels from
// catalog.
func NewQueryViewResponse(view models.QueryView, loc *time.Location, catalog models.FilterLabelCatalog) QueryViewResponse {
	if loc == nil {
		loc = time.Local
	}

	filters := make(map[string][]string, len(view.Filters.Values))
	for dim, values := range view.Filters.Values {
		if len(values) > 0 {
			filters[string(dim)] = append([]string(nil), values...)
		}
	}

	flow := make([]MoneyFlowPoint, 0, len(view.MoneyFlow))
	for _, b := range view.MoneyFlow {
		flow = append(flow, MoneyFlowPoint{
			Label:       b.Label,
			Start:       b.Start,
			Deposits:    b.Deposits.StringFixed(2),
			Withdrawals: b.Withdrawals.StringFixed(2),
		})
	}

	return QueryViewResponse{
		PageItems: NewTransactionResponses(view.PageItems, loc, catalog),
		Displayed: NewTransactionResponses(view.Displayed, loc, catalog),
		Pagination: PaginationInfo{
			CurrentPage: view.CurrentPage,
			TotalPages:  view.TotalPages,
			Total:       view.Total,
			Loaded:      view.Cursor,
			HasMore:     view.HasMore,
		},
		Summary: SummaryResponse{
			TotalBalance:     view.Summary.TotalBalance.StringFixed(2),
			Income:           view.Summary.Income.StringFixed(2),
			Expenses:         view.Summary.Expenses.StringFixed(2),
			TransactionCount: view.Summary.TransactionCount,
			DepositCount:     view.Summary.DepositCount,
			WithdrawalCount:  view.Summary.WithdrawalCount,
		},
		Granularity:   string(view.Granularity),
		MoneyFlow:     flow,
		Recent:        NewTransactionResponses(view.Recent, loc, catalog),
		Range:         NewRangeResponse(view.Range, loc),
		Filters:       filters,
		SearchTerm:    view.SearchTerm,
		Loading:       view.Loading,
		SearchPending: view.SearchPending,
	}
}

func NewTransactionResponses(records []models.Transaction, loc *time.Location, catalog models.FilterLabelCatalog) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(records))
	for _, t := range records {
		out = append(out, TransactionResponse{
			Date:                 t.Timestamp,
			DisplayDate:          t.Time(loc).Format(DisplayDateLayout),
			Amount:               t.Amount.StringFixed(2),
			TransactionType:      string(t.Type),
			TransactionTypeLabel: catalog.Label(models.DimensionTransactionType, string(t.Type)),
			Currency:             t.Currency,
			Account:              t.Account,
			Industry:             t.Industry,
			State:                t.State,
		})
	}
	return out
}

func NewRangeResponse(r models.DateRange, loc *time.Location) RangeResponse {
	var out RangeResponse
	if r.Start != nil {
		out.StartDate = r.Start.In(loc).Format(DisplayDateLayout)
	}
	if r.End != nil {
		out.EndDate = r.End.In(loc).Format(DisplayDateLayout)
	}
	return out
}

func NewFilterOptionsResponse(rng models.DateRange, options models.FilterOptions, loc *time.Location) FilterOptionsResponse {
	out := FilterOptionsResponse{
		Range:   NewRangeResponse(rng, loc),
		Options: make(map[string][]models.FilterOption, len(options)),
	}
	for dim, opts := range options {
		out.Options[string(dim)] = append([]models.FilterOption{}, opts...)
	}
	return out
}
