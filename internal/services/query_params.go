package services

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"finance-dashboard/internal/models"
)

// BrazilianDateLayout is the dd/mm/yyyy layout of the startDate and endDate
// parameters.
const BrazilianDateLayout = "2/1/2006"

// Accepted years for startDate and endDate.
const (
	MinDateYear = 1970
	MaxDateYear = 2099
)

var (
	ErrMalformedDate  = errors.New("date must use the dd/mm/yyyy format")
	ErrDateOutOfRange = errors.New("date year must be between 1970 and 2099")
)

// StartOfDay returns the first instant of t's date in t's location. That is
// midnight, or the end of the gap in zones where a daylight-saving change
// skips midnight.
func StartOfDay(t time.Time) time.Time {
	return StartOfDate(t.Year(), t.Month(), t.Day(), t.Location())
}

// StartOfDate returns the first instant of the calendar date y-m-d in loc.
func StartOfDate(y int, m time.Month, d int, loc *time.Location) time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	if t.Day() != d {
		// midnight fell in a gap and was normalized into the previous day
		_, end := t.ZoneBounds()
		t = end
	}
	return t
}

// EndOfDay returns 23:59:59.999 of t's date in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// ParseBrazilianDate parses a dd/mm/yyyy date to the start of that day in loc.
func ParseBrazilianDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.Parse(BrazilianDateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}
	if t.Year() < MinDateYear || t.Year() > MaxDateYear {
		return time.Time{}, ErrDateOutOfRange
	}
	return StartOfDate(t.Year(), t.Month(), t.Day(), loc), nil
}

// ResolveDateRange turns the raw startDate and endDate parameters into a
// closed range. Absent or malformed values fall back to defaults: the end
// of today for endDate and defaultDays before the end for startDate.
func ResolveDateRange(startParam, endParam string, now time.Time, defaultDays int) models.DateRange {
	loc := now.Location()

	end := EndOfDay(now)
	if endParam != "" {
		if parsed, err := ParseBrazilianDate(endParam, loc); err == nil {
			end = EndOfDay(parsed)
		}
	}

	start := end.AddDate(0, 0, -defaultDays)
	if startParam != "" {
		if parsed, err := ParseBrazilianDate(startParam, loc); err == nil {
			start = parsed
		}
	}

	return models.NewDateRange(start, end)
}

// ParseFilterSet reads repeated filter parameters, one per dimension name.
// Values may be given as display labels; catalog maps them back to keys.
// Values are never split on commas since account and industry names may
// contain them. Blank values are dropped and duplicates collapsed.
func ParseFilterSet(params url.Values, catalog models.FilterLabelCatalog) models.FilterSet {
	filters := models.NewFilterSet()
	for _, dim := range models.FilterDimensions {
		var values []string
		seen := make(map[string]struct{})
		for _, raw := range params[string(dim)] {
			raw = strings.TrimSpace(raw)
			if raw == "" {
				continue
			}
			key := catalog.Resolve(dim, raw)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			values = append(values, key)
		}
		if len(values) > 0 {
			filters = filters.With(dim, values...)
		}
	}
	return filters
}

// PrefilterTypes returns the transaction types a filter set restricts to,
// for use as the record store prefilter. Unknown values are ignored.
func PrefilterTypes(filters models.FilterSet) []models.TransactionType {
	values := filters.Accepted(models.DimensionTransactionType)
	if values == nil {
		return nil
	}
	types := make([]models.TransactionType, 0, len(values))
	for _, v := range values {
		if t, err := models.ParseTransactionType(v); err == nil {
			types = append(types, t)
		}
	}
	return types
}
