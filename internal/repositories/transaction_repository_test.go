package repositories

import (
	"context"
	"testing"
	"time"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func fixtureTransactions() []models.Transaction {
	mk := func(ts int64, typ models.TransactionType, account string) models.Transaction {
		return models.Transaction{
			Timestamp: ts,
			Amount:    decimal.NewFromInt(ts / 100),
			Type:      typ,
			Currency:  "brl",
			Account:   account,
			Industry:  "Airlines",
			State:     "SP",
		}
	}
	return []models.Transaction{
		mk(5000, models.TransactionTypeDeposit, "A"),
		mk(1000, models.TransactionTypeWithdrawal, "B"),
		mk(5000, models.TransactionTypeWithdrawal, "C"),
		mk(3000, models.TransactionTypeDeposit, "D"),
	}
}

func accounts(records []models.Transaction) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Account
	}
	return out
}

func msRange(start, end int64) models.DateRange {
	return models.NewDateRange(time.UnixMilli(start), time.UnixMilli(end))
}

// TransactionRepositorySuite runs the same checks against every store.
type TransactionRepositorySuite struct {
	suite.Suite
	newRepo func(records []models.Transaction) TransactionRepositoryInterface
	repo    TransactionRepositoryInterface
	ctx     context.Context
}

func TestMemoryTransactionRepository(t *testing.T) {
	suite.Run(t, &TransactionRepositorySuite{newRepo: NewMemoryTransactionRepository})
}

func TestGormTransactionRepository(t *testing.T) {
	s := &TransactionRepositorySuite{}
	s.newRepo = func(records []models.Transaction) TransactionRepositoryInterface {
		db := database.SetupTestDB(s.T())
		_, err := db.SeedTransactions(records)
		s.Require().NoError(err)
		return NewTransactionRepository(db.DB)
	}
	suite.Run(t, s)
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo(fixtureTransactions())
}

func (s *TransactionRepositorySuite) TestLoadAll_OrdersMostRecentFirstWithStableTies() {
	records, err := s.repo.LoadAll(s.ctx, models.RecordQuery{})

	s.NoError(err)
	s.Equal([]string{"A", "C", "D", "B"}, accounts(records))
}

func (s *TransactionRepositorySuite) TestLoadAll_InclusiveRange() {
	records, err := s.repo.LoadAll(s.ctx, models.RecordQuery{Range: msRange(1000, 3000)})

	s.NoError(err)
	s.Equal([]string{"D", "B"}, accounts(records))
}

func (s *TransactionRepositorySuite) TestLoadAll_OpenBounds() {
	start := time.UnixMilli(3000)
	records, err := s.repo.LoadAll(s.ctx, models.RecordQuery{Range: models.DateRange{Start: &start}})

	s.NoError(err)
	s.Equal([]string{"A", "C", "D"}, accounts(records))
}

func (s *TransactionRepositorySuite) TestLoadAll_TypeRestriction() {
	records, err := s.repo.LoadAll(s.ctx, models.RecordQuery{Types: []models.TransactionType{models.TransactionTypeWithdrawal}})

	s.NoError(err)
	s.Equal([]string{"C", "B"}, accounts(records))
}

func (s *TransactionRepositorySuite) TestLoadAll_EmptyResultIsNotNil() {
	records, err := s.repo.LoadAll(s.ctx, models.RecordQuery{Range: msRange(6000, 7000)})

	s.NoError(err)
	s.NotNil(records)
	s.Empty(records)
}

func (s *TransactionRepositorySuite) TestLoadAll_IsIdempotentAndIsolated() {
	first, err := s.repo.LoadAll(s.ctx, models.RecordQuery{})
	s.Require().NoError(err)
	first[0].Account = "mutated"

	second, err := s.repo.LoadAll(s.ctx, models.RecordQuery{})
	s.Require().NoError(err)
	s.Equal([]string{"A", "C", "D", "B"}, accounts(second))
}

func (s *TransactionRepositorySuite) TestCount() {
	total, err := s.repo.Count(s.ctx, models.RecordQuery{})
	s.NoError(err)
	s.Equal(int64(4), total)

	deposits, err := s.repo.Count(s.ctx, models.RecordQuery{
		Range: msRange(0, 4000),
		Types: []models.TransactionType{models.TransactionTypeDeposit},
	})
	s.NoError(err)
	s.Equal(int64(1), deposits)
}

func (s *TransactionRepositorySuite) TestLoadAll_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.repo.LoadAll(ctx, models.RecordQuery{})

	s.Error(err)
}
