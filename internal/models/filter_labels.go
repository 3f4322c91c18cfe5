package models

import "strings"

// FilterLabelCatalog maps internal filter keys to display labels, per
// dimension. Dimensions without entries display their raw values.
type FilterLabelCatalog map[FilterDimension]map[string]string

// DefaultFilterLabelCatalog returns the labels shown by the dashboard.
func DefaultFilterLabelCatalog() FilterLabelCatalog {
	return FilterLabelCatalog{
		DimensionTransactionType: {
			string(TransactionTypeDeposit):    "Depósito",
			string(TransactionTypeWithdrawal): "Saque",
		},
		DimensionCurrency: {
			"brl": "Real (BRL)",
			"usd": "Dólar (USD)",
		},
	}
}

// Label returns the display label of key, or key itself when none is known.
func (c FilterLabelCatalog) Label(dim FilterDimension, key string) string {
	if label, ok := c[dim][key]; ok {
		return label
	}
	return key
}

// Resolve maps a value that may be a display label back to its internal key.
// Matching on labels is case-insensitive; unknown values pass through.
func (c FilterLabelCatalog) Resolve(dim FilterDimension, value string) string {
	labels := c[dim]
	if _, ok := labels[value]; ok {
		return value
	}
	for key, label := range labels {
		if strings.EqualFold(label, value) || strings.EqualFold(key, value) {
			return key
		}
	}
	return value
}

// FilterOption is one selectable value of a dimension.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterOptions lists the selectable values per dimension.
type FilterOptions map[FilterDimension][]FilterOption
