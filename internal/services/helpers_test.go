package services

import (
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

// testDay returns 10:00 of the nth day of January 2026, counting from 1.
func testDay(n int) time.Time {
	return time.Date(2026, time.January, n, 10, 0, 0, 0, testLoc)
}

func tx(day int, typ models.TransactionType, amount, account, industry string) models.Transaction {
	return models.Transaction{
		Timestamp: testDay(day).UnixMilli(),
		Amount:    decimal.RequireFromString(amount),
		Type:      typ,
		Currency:  "brl",
		Account:   account,
		Industry:  industry,
		State:     "SP",
	}
}

// scenarioRecords is deposit 100 on day 1, withdrawal 40 on day 2 and
// deposit 10 on day 40, most recent first.
func scenarioRecords() []models.Transaction {
	return []models.Transaction{
		tx(40, models.TransactionTypeDeposit, "10", "Itaú", "Retail"),
		tx(2, models.TransactionTypeWithdrawal, "40", "Nubank", "Airlines"),
		tx(1, models.TransactionTypeDeposit, "100", "Nubank", "Technology"),
	}
}

func dayRange(first, last int) models.DateRange {
	return models.NewDateRange(StartOfDay(testDay(first)), EndOfDay(testDay(last)))
}

// fakeRecords builds n records one hour apart, most recent first.
func fakeRecords(n int) []models.Transaction {
	records := make([]models.Transaction, n)
	start := testDay(1)
	for i := range records {
		typ := models.TransactionTypeDeposit
		if gofakeit.Bool() {
			typ = models.TransactionTypeWithdrawal
		}
		records[n-1-i] = models.Transaction{
			Timestamp: start.Add(time.Duration(i) * time.Hour).UnixMilli(),
			Amount:    decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2),
			Type:      typ,
			Currency:  "brl",
			Account:   fmt.Sprintf("%s %d", gofakeit.Company(), i),
			Industry:  gofakeit.JobDescriptor(),
			State:     gofakeit.StateAbr(),
		}
	}
	return records
}

func timestamps(records []models.Transaction) []int64 {
	out := make([]int64, len(records))
	for i, t := range records {
		out[i] = t.Timestamp
	}
	return out
}
