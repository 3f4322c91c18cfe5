package services

import (
	"finance-dashboard/internal/models"
)

// DefaultPageSize is the number of records per page and per load-more batch.
const DefaultPageSize = 10

// Paginator slices one result set two ways: numbered pages, and a cursor
// that only moves forward as batches are loaded. It is not safe for
// concurrent use.
type Paginator struct {
	pageSize    int
	records     []models.Transaction
	currentPage int
	cursor      int
}

func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{pageSize: pageSize, currentPage: 1}
}

// Reset replaces the result set and rewinds to page 1 with nothing loaded.
func (p *Paginator) Reset(records []models.Transaction) {
	p.records = records
	p.currentPage = 1
	p.cursor = 0
}

// GetPage moves to page n and returns its records. Pages outside
// [1, TotalPages] leave the state untouched and report false; page 1 of an
// empty set is valid.
func (p *Paginator) GetPage(n int) ([]models.Transaction, bool) {
	if n < 1 || n > max(p.TotalPages(), 1) {
		return p.PageItems(), false
	}
	p.currentPage = n
	return p.PageItems(), true
}

// PageItems returns a copy of the current page.
func (p *Paginator) PageItems() []models.Transaction {
	start := min((p.currentPage-1)*p.pageSize, len(p.records))
	end := min(start+p.pageSize, len(p.records))
	return cloneTransactions(p.records[start:end])
}

// LoadMore advances the cursor by one page and returns the newly delivered
// records. It reports false once everything has been delivered.
func (p *Paginator) LoadMore() ([]models.Transaction, bool) {
	if !p.HasMore() {
		return []models.Transaction{}, false
	}
	start := p.cursor
	p.cursor = min(p.cursor+p.pageSize, len(p.records))
	return cloneTransactions(p.records[start:p.cursor]), true
}

// Displayed returns a copy of every record delivered by LoadMore so far.
func (p *Paginator) Displayed() []models.Transaction {
	return cloneTransactions(p.records[:p.cursor])
}

func (p *Paginator) HasMore() bool {
	return p.cursor < len(p.records)
}

func (p *Paginator) TotalPages() int {
	return (len(p.records) + p.pageSize - 1) / p.pageSize
}

func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

func (p *Paginator) Cursor() int {
	return p.cursor
}

func (p *Paginator) Total() int {
	return len(p.records)
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

func cloneTransactions(records []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(records))
	copy(out, records)
	return out
}
