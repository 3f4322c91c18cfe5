package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("transaction amount must not be negative")
	ErrInvalidCurrency        = errors.New("currency must be a 3-letter code")
	ErrMissingTimestamp       = errors.New("transaction date is required")
)

// ParseTransactionType normalizes s and checks it names a known type.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTransactionType, s)
	}
	return t, nil
}

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeWithdrawal
}

func (t TransactionType) String() string {
	return string(t)
}

// Transaction is one immutable record of the dataset. The JSON layout matches
// the bundled transactions file: date in epoch milliseconds and amount as a
// decimal string.
type Transaction struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"-"`
	Timestamp int64           `gorm:"column:date;not null;index" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type      TransactionType `gorm:"column:transaction_type;type:varchar(20);not null;index" json:"transaction_type"`
	Currency  string          `gorm:"type:varchar(3);not null;index" json:"currency"`
	Account   string          `gorm:"type:varchar(255);not null;index" json:"account"`
	Industry  string          `gorm:"type:varchar(255);not null" json:"industry"`
	State     string          `gorm:"type:varchar(16);not null" json:"state"`
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// Time returns the transaction date in loc.
func (t Transaction) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.UnixMilli(t.Timestamp).In(loc)
}

func (t Transaction) IsDeposit() bool {
	return t.Type == TransactionTypeDeposit
}

func (t Transaction) IsWithdrawal() bool {
	return t.Type == TransactionTypeWithdrawal
}

// Validate checks the record against the dataset schema.
func (t Transaction) Validate() error {
	if t.Timestamp == 0 {
		return ErrMissingTimestamp
	}
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTransactionType, t.Type)
	}
	if t.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if len(t.Currency) != 3 {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, t.Currency)
	}
	return nil
}

// RecordQuery is the prefilter accepted by the record store.
type RecordQuery struct {
	Range DateRange
	Types []TransactionType
}

// Matches reports whether t falls inside the query's range and type set.
func (q RecordQuery) Matches(t Transaction) bool {
	if !q.Range.Contains(t.Timestamp) {
		return false
	}
	if len(q.Types) == 0 {
		return true
	}
	for _, typ := range q.Types {
		if t.Type == typ {
			return true
		}
	}
	return false
}

// Equal reports whether both queries select the same records.
func (q RecordQuery) Equal(other RecordQuery) bool {
	if !q.Range.Equal(other.Range) || len(q.Types) != len(other.Types) {
		return false
	}
	seen := make(map[TransactionType]int, len(q.Types))
	for _, t := range q.Types {
		seen[t]++
	}
	for _, t := range other.Types {
		if seen[t] == 0 {
			return false
		}
		seen[t]--
	}
	return true
}
