package services

import (
	"finance-dashboard/internal/models"
)

// ApplyFilters keeps the records accepted by every populated dimension of
// filters and by its date range. Input order is preserved and the input
// slice is never modified.
func ApplyFilters(records []models.Transaction, filters models.FilterSet) []models.Transaction {
	accepted := make(map[models.FilterDimension]map[string]struct{}, len(filters.Values))
	for dim, values := range filters.Values {
		if len(values) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(values))
		for _, v := range values {
			set[v] = struct{}{}
		}
		accepted[dim] = set
	}

	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if !filters.Range.Contains(t.Timestamp) {
			continue
		}
		if matchesAll(t, accepted) {
			out = append(out, t)
		}
	}
	return out
}

func matchesAll(t models.Transaction, accepted map[models.FilterDimension]map[string]struct{}) bool {
	for dim, set := range accepted {
		if _, ok := set[dim.ValueOf(t)]; !ok {
			return false
		}
	}
	return true
}
