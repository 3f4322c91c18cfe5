package services

import (
	"strconv"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

const (
	dailySpanLimit  = 31
	weeklySpanLimit = 90
)

var monthAbbreviations = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Summarize totals deposits as income and withdrawals as expenses.
func Summarize(records []models.Transaction) models.Summary {
	summary := models.Summary{
		TotalBalance: decimal.Zero,
		Income:       decimal.Zero,
		Expenses:     decimal.Zero,
	}

	for _, t := range records {
		summary.TransactionCount++
		switch t.Type {
		case models.TransactionTypeDeposit:
			summary.Income = summary.Income.Add(t.Amount)
			summary.DepositCount++
		case models.TransactionTypeWithdrawal:
			summary.Expenses = summary.Expenses.Add(t.Amount)
			summary.WithdrawalCount++
		}
	}

	summary.TotalBalance = summary.Income.Sub(summary.Expenses)
	return summary
}

// SpanDays counts the calendar days between the dates of start and end, in
// start's location.
func SpanDays(start, end time.Time) int {
	end = end.In(start.Location())
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// SelectGranularity picks daily buckets up to 31 days, weekly up to 90 and
// monthly beyond.
func SelectGranularity(start, end time.Time) models.Granularity {
	span := SpanDays(start, end)
	switch {
	case span <= dailySpanLimit:
		return models.GranularityDaily
	case span <= weeklySpanLimit:
		return models.GranularityWeekly
	default:
		return models.GranularityMonthly
	}
}

// MoneyFlow buckets records over [start, end] at the granularity chosen by
// SelectGranularity.
func MoneyFlow(records []models.Transaction, start, end time.Time) []models.MoneyFlowBucket {
	return MoneyFlowWithGranularity(records, start, end, SelectGranularity(start, end))
}

// MoneyFlowWithGranularity returns one zero-filled bucket per calendar unit
// from the unit holding start to the unit holding end, ascending. Bucket
// boundaries follow start's location; weeks begin on Sunday.
func MoneyFlowWithGranularity(records []models.Transaction, start, end time.Time, granularity models.Granularity) []models.MoneyFlowBucket {
	loc := start.Location()
	first := truncateToBucket(start, granularity)
	last := truncateToBucket(end.In(loc), granularity)
	if last.Before(first) {
		return []models.MoneyFlowBucket{}
	}

	buckets := make([]models.MoneyFlowBucket, 0, ExpectedBucketCount(start, end, granularity))
	index := make(map[dayKey]int)
	for cur := first; !cur.After(last); cur = nextBucket(cur, granularity) {
		index[keyOf(cur)] = len(buckets)
		buckets = append(buckets, models.MoneyFlowBucket{
			Label:       BucketLabel(cur, granularity),
			Start:       StartOfDate(cur.Year(), cur.Month(), cur.Day(), loc),
			Deposits:    decimal.Zero,
			Withdrawals: decimal.Zero,
		})
	}

	for _, t := range records {
		i, ok := index[keyOf(truncateToBucket(t.Time(loc), granularity))]
		if !ok {
			continue
		}
		switch t.Type {
		case models.TransactionTypeDeposit:
			buckets[i].Deposits = buckets[i].Deposits.Add(t.Amount)
		case models.TransactionTypeWithdrawal:
			buckets[i].Withdrawals = buckets[i].Withdrawals.Add(t.Amount)
		}
	}

	return buckets
}

// ExpectedBucketCount is the length of the series MoneyFlowWithGranularity
// produces for the same arguments.
func ExpectedBucketCount(start, end time.Time, granularity models.Granularity) int {
	first := truncateToBucket(start, granularity)
	last := truncateToBucket(end.In(start.Location()), granularity)
	if last.Before(first) {
		return 0
	}

	switch granularity {
	case models.GranularityWeekly:
		return SpanDays(first, last)/7 + 1
	case models.GranularityMonthly:
		return (last.Year()-first.Year())*12 + int(last.Month()-first.Month()) + 1
	default:
		return SpanDays(first, last) + 1
	}
}

// BucketLabel formats a bucket start for display: "dd/MM" for days,
// "Semana N" for weeks and "jan 2026" style for months.
func BucketLabel(bucketStart time.Time, granularity models.Granularity) string {
	switch granularity {
	case models.GranularityWeekly:
		return "Semana " + strconv.Itoa(WeekOfYear(bucketStart))
	case models.GranularityMonthly:
		return monthAbbreviations[bucketStart.Month()-1] + " " + strconv.Itoa(bucketStart.Year())
	default:
		return bucketStart.Format("02/01")
	}
}

// WeekOfYear numbers Sunday-started weeks; week 1 is the week holding
// 1 January, so the last days of December may fall in week 1 of the next year.
func WeekOfYear(t time.Time) int {
	week := startOfWeek(t)
	nextYearWeek1 := startOfWeek(time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC))
	if !week.Before(nextYearWeek1) {
		return 1
	}
	week1 := startOfWeek(time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC))
	return SpanDays(week1, week)/7 + 1
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	return dayKey{year: t.Year(), month: t.Month(), day: t.Day()}
}

// civilDate drops the clock and zone from t, keeping its calendar date as
// UTC midnight. Stepping civil dates never meets a daylight-saving gap.
func civilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// truncateToBucket returns the civil date the bucket holding t starts on.
func truncateToBucket(t time.Time, granularity models.Granularity) time.Time {
	switch granularity {
	case models.GranularityWeekly:
		return startOfWeek(t)
	case models.GranularityMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return civilDate(t)
	}
}

func nextBucket(date time.Time, granularity models.Granularity) time.Time {
	switch granularity {
	case models.GranularityWeekly:
		return date.AddDate(0, 0, 7)
	case models.GranularityMonthly:
		return date.AddDate(0, 1, 0)
	default:
		return date.AddDate(0, 0, 1)
	}
}

func startOfWeek(t time.Time) time.Time {
	day := civilDate(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}
