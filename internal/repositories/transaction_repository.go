package repositories

import (
	"context"
	"fmt"
	"sort"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

// memoryTransactionRepository serves an immutable in-process dataset.
type memoryTransactionRepository struct {
	records []models.Transaction
}

// NewMemoryTransactionRepository copies records and orders them by date,
// most recent first. Records sharing a date keep their dataset order.
func NewMemoryTransactionRepository(records []models.Transaction) TransactionRepositoryInterface {
	sorted := make([]models.Transaction, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp > sorted[j].Timestamp
	})

	return &memoryTransactionRepository{records: sorted}
}

// LoadAll returns a fresh slice of the records matching query.
func (r *memoryTransactionRepository) LoadAll(ctx context.Context, query models.RecordQuery) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(r.records))
	for _, t := range r.records {
		if query.Matches(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memoryTransactionRepository) Count(ctx context.Context, query models.RecordQuery) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var n int64
	for _, t := range r.records {
		if query.Matches(t) {
			n++
		}
	}
	return n, nil
}

// transactionRepository reads the transactions table. Insertion order in the
// id column stands in for dataset order on equal dates.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new gorm-backed record store
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) LoadAll(ctx context.Context, query models.RecordQuery) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0)

	if err := r.scoped(ctx, query).
		Order("date DESC").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) Count(ctx context.Context, query models.RecordQuery) (int64, error) {
	var total int64
	if err := r.scoped(ctx, query).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

func (r *transactionRepository) scoped(ctx context.Context, query models.RecordQuery) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.Transaction{})

	if query.Range.Start != nil {
		q = q.Where("date >= ?", query.Range.Start.UnixMilli())
	}
	if query.Range.End != nil {
		q = q.Where("date <= ?", query.Range.End.UnixMilli())
	}
	if len(query.Types) > 0 {
		types := make([]string, len(query.Types))
		for i, t := range query.Types {
			types[i] = string(t)
		}
		q = q.Where("transaction_type IN ?", types)
	}

	return q
}
