package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary aggregates a transaction set. Amounts are summed regardless of
// currency.
type Summary struct {
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	Income           decimal.Decimal `json:"income"`
	Expenses         decimal.Decimal `json:"expenses"`
	TransactionCount int             `json:"transactionCount"`
	DepositCount     int             `json:"depositCount"`
	WithdrawalCount  int             `json:"withdrawalCount"`
}

// Granularity is the calendar unit of a money-flow bucket.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

func (g Granularity) IsValid() bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}

// MoneyFlowBucket holds deposits and withdrawals summed over one calendar unit.
type MoneyFlowBucket struct {
	Label       string          `json:"label"`
	Start       time.Time       `json:"start"`
	Deposits    decimal.Decimal `json:"deposits"`
	Withdrawals decimal.Decimal `json:"withdrawals"`
}

// QueryView is the snapshot handed to the presentation layer.
type QueryView struct {
	Displayed     []Transaction     `json:"displayed"`
	PageItems     []Transaction     `json:"pageItems"`
	Loading       bool              `json:"loading"`
	SearchPending bool              `json:"searchPending"`
	SearchTerm    string            `json:"searchTerm"`
	CurrentPage   int               `json:"currentPage"`
	TotalPages    int               `json:"totalPages"`
	Total         int               `json:"total"`
	Cursor        int               `json:"cursor"`
	HasMore       bool              `json:"hasMore"`
	Summary       Summary           `json:"summary"`
	Granularity   Granularity       `json:"granularity,omitempty"`
	MoneyFlow     []MoneyFlowBucket `json:"moneyFlow"`
	Recent        []Transaction     `json:"recentTransactions"`
	Range         DateRange         `json:"range"`
	Filters       FilterSet         `json:"filters"`
}
