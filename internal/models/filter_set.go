package models

import (
	"time"
)

// FilterDimension names a filterable transaction field. The string value is
// also the query parameter name used by the dashboard.
type FilterDimension string

const (
	DimensionAccount         FilterDimension = "account"
	DimensionIndustry        FilterDimension = "industry"
	DimensionState           FilterDimension = "state"
	DimensionTransactionType FilterDimension = "transactionType"
	DimensionCurrency        FilterDimension = "currency"
)

// FilterDimensions lists every dimension in display order.
var FilterDimensions = []FilterDimension{
	DimensionAccount,
	DimensionIndustry,
	DimensionState,
	DimensionTransactionType,
	DimensionCurrency,
}

func (d FilterDimension) IsValid() bool {
	switch d {
	case DimensionAccount, DimensionIndustry, DimensionState, DimensionTransactionType, DimensionCurrency:
		return true
	}
	return false
}

// ValueOf returns the field of t that d filters on.
func (d FilterDimension) ValueOf(t Transaction) string {
	switch d {
	case DimensionAccount:
		return t.Account
	case DimensionIndustry:
		return t.Industry
	case DimensionState:
		return t.State
	case DimensionTransactionType:
		return string(t.Type)
	case DimensionCurrency:
		return t.Currency
	}
	return ""
}

// DateRange is an inclusive millisecond range. A nil bound is open.
type DateRange struct {
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`
}

// NewDateRange builds a closed range.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: &start, End: &end}
}

func (r DateRange) Contains(timestamp int64) bool {
	if r.Start != nil && timestamp < r.Start.UnixMilli() {
		return false
	}
	if r.End != nil && timestamp > r.End.UnixMilli() {
		return false
	}
	return true
}

func (r DateRange) IsBounded() bool {
	return r.Start != nil && r.End != nil
}

func (r DateRange) Equal(other DateRange) bool {
	return sameBound(r.Start, other.Start) && sameBound(r.End, other.End)
}

func sameBound(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// FilterSet holds the accepted values per dimension plus an optional date
// range. An absent or empty value list leaves the dimension unconstrained.
// A FilterSet is replaced wholesale on change; With returns a modified copy.
type FilterSet struct {
	Values map[FilterDimension][]string `json:"values"`
	Range  DateRange                    `json:"range"`
}

func NewFilterSet() FilterSet {
	return FilterSet{Values: make(map[FilterDimension][]string)}
}

// With returns a copy of f with dim accepting values.
func (f FilterSet) With(dim FilterDimension, values ...string) FilterSet {
	out := f.Clone()
	if len(values) == 0 {
		delete(out.Values, dim)
		return out
	}
	out.Values[dim] = append([]string(nil), values...)
	return out
}

// WithRange returns a copy of f restricted to r.
func (f FilterSet) WithRange(r DateRange) FilterSet {
	out := f.Clone()
	out.Range = r
	return out
}

func (f FilterSet) Clone() FilterSet {
	out := FilterSet{Values: make(map[FilterDimension][]string, len(f.Values)), Range: f.Range}
	for dim, values := range f.Values {
		out.Values[dim] = append([]string(nil), values...)
	}
	return out
}

// Accepted returns the accepted values for dim, nil when unconstrained.
func (f FilterSet) Accepted(dim FilterDimension) []string {
	values := f.Values[dim]
	if len(values) == 0 {
		return nil
	}
	return values
}

// IsConstrained reports whether any dimension or date bound narrows the set.
func (f FilterSet) IsConstrained() bool {
	if f.Range.Start != nil || f.Range.End != nil {
		return true
	}
	for _, values := range f.Values {
		if len(values) > 0 {
			return true
		}
	}
	return false
}

// QueryState is the full input of one dashboard query.
type QueryState struct {
	Filters      FilterSet `json:"filters"`
	SearchTerm   string    `json:"searchTerm"`
	Page         int       `json:"page"`
	ItemsPerPage int       `json:"itemsPerPage"`
}
