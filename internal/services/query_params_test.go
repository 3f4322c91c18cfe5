package services

import (
	"net/url"
	"testing"
	"time"

	"finance-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange(t *testing.T) {
	now := time.Date(2026, time.October, 15, 14, 30, 0, 0, testLoc)
	endOfToday := time.Date(2026, time.October, 15, 23, 59, 59, int(999*time.Millisecond), testLoc)

	tests := []struct {
		name      string
		start     string
		end       string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "defaults to the last 30 days",
			wantStart: endOfToday.AddDate(0, 0, -30),
			wantEnd:   endOfToday,
		},
		{
			name:      "explicit range",
			start:     "01/10/2026",
			end:       "05/10/2026",
			wantStart: time.Date(2026, time.October, 1, 0, 0, 0, 0, testLoc),
			wantEnd:   time.Date(2026, time.October, 5, 23, 59, 59, int(999*time.Millisecond), testLoc),
		},
		{
			name:      "single digit day and month",
			start:     "1/2/2026",
			end:       "3/2/2026",
			wantStart: time.Date(2026, time.February, 1, 0, 0, 0, 0, testLoc),
			wantEnd:   time.Date(2026, time.February, 3, 23, 59, 59, int(999*time.Millisecond), testLoc),
		},
		{
			name:      "malformed start falls back to end minus 30 days",
			start:     "2026-10-01",
			end:       "05/10/2026",
			wantStart: time.Date(2026, time.September, 5, 23, 59, 59, int(999*time.Millisecond), testLoc),
			wantEnd:   time.Date(2026, time.October, 5, 23, 59, 59, int(999*time.Millisecond), testLoc),
		},
		{
			name:      "impossible date is treated as absent",
			start:     "31/02/2026",
			end:       "banana",
			wantStart: endOfToday.AddDate(0, 0, -30),
			wantEnd:   endOfToday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ResolveDateRange(tt.start, tt.end, now, 30)

			require.True(t, rng.IsBounded())
			assert.True(t, tt.wantStart.Equal(*rng.Start), "start %s", rng.Start)
			assert.True(t, tt.wantEnd.Equal(*rng.End), "end %s", rng.End)
		})
	}
}

func TestParseBrazilianDate(t *testing.T) {
	got, err := ParseBrazilianDate(" 15/10/2026 ", testLoc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.October, 15, 0, 0, 0, 0, testLoc), got)

	_, err = ParseBrazilianDate("10/15/2026", testLoc)
	assert.ErrorIs(t, err, ErrMalformedDate)

	_, err = ParseBrazilianDate("01/01/0001", testLoc)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
	_, err = ParseBrazilianDate("31/12/9999", testLoc)
	assert.ErrorIs(t, err, ErrDateOutOfRange)

	got, err = ParseBrazilianDate("01/01/1970", testLoc)
	require.NoError(t, err)
	assert.Equal(t, 1970, got.Year())
}

func TestResolveDateRange_RejectsFarYears(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, testLoc)

	rng := ResolveDateRange("01/01/0001", "31/12/9999", now, 30)

	assert.True(t, EndOfDay(now).Equal(*rng.End))
	assert.True(t, EndOfDay(now).AddDate(0, 0, -30).Equal(*rng.Start))
	assert.LessOrEqual(t, ExpectedBucketCount(*rng.Start, *rng.End, models.GranularityMonthly), 2)
}

func TestParseFilterSet(t *testing.T) {
	catalog := models.DefaultFilterLabelCatalog()
	params := url.Values{
		"transactionType": {"Depósito", "deposit", "saque"},
		"industry":        {"Hotels, Casinos & Resorts", " "},
		"currency":        {"Real (BRL)"},
		"unknown":         {"x"},
	}

	filters := ParseFilterSet(params, catalog)

	assert.Equal(t, []string{"deposit", "withdrawal"}, filters.Accepted(models.DimensionTransactionType))
	assert.Equal(t, []string{"Hotels, Casinos & Resorts"}, filters.Accepted(models.DimensionIndustry))
	assert.Equal(t, []string{"brl"}, filters.Accepted(models.DimensionCurrency))
	assert.Nil(t, filters.Accepted(models.DimensionAccount))
	assert.Len(t, filters.Values, 3)
}

func TestPrefilterTypes(t *testing.T) {
	assert.Nil(t, PrefilterTypes(models.NewFilterSet()))

	filters := models.NewFilterSet().With(models.DimensionTransactionType, "withdrawal", "refund")
	assert.Equal(t, []models.TransactionType{models.TransactionTypeWithdrawal}, PrefilterTypes(filters))
}
