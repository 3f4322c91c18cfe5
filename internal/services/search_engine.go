package services

import (
	"strings"

	"finance-dashboard/internal/models"
)

// SearchTransactions keeps records whose account or industry contains term,
// ignoring case. An empty term returns records unchanged.
func SearchTransactions(records []models.Transaction, term string) []models.Transaction {
	if term == "" {
		return records
	}

	needle := strings.ToLower(term)
	out := make([]models.Transaction, 0, len(records))
	for _, t := range records {
		if strings.Contains(strings.ToLower(t.Account), needle) ||
			strings.Contains(strings.ToLower(t.Industry), needle) {
			out = append(out, t)
		}
	}
	return out
}
