package dataset

import (
	"sort"
	"time"

	"finance-dashboard/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	depositShare       = 0.48
	usdShare           = 0.2
	businessHoursStart = 6
	businessHoursEnd   = 23
)

var (
	accountPool = []string{
		"Nubank", "Banco do Brasil", "Itaú Unibanco", "Bradesco", "Santander", "Caixa Econômica",
		"Banco Inter", "C6 Bank", "XP Investimentos", "BTG Pactual", "Mercado Pago", "PicPay",
	}
	industryPool = []string{
		"Food Consumer Products", "Oil and Gas Equipment", "Hotels, Casinos & Resorts", "Airlines",
		"Apparel", "Automotive Retailing", "Computer Software", "Health Care: Pharmacy",
		"Insurance: Life", "Telecommunications", "Utilities: Gas and Electric", "Specialty Retailers",
		"Entertainment", "Real Estate", "Education",
	}
	statePool = []string{"SP", "RJ", "MG", "RS", "PR", "SC", "BA", "PE", "CE", "GO", "DF", "AM", "PA", "ES"}
)

// Generator produces synthetic datasets with the same shape as the bundled
// file. A fixed seed yields the same records on every run.
type Generator struct {
	faker *gofakeit.Faker
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Generate returns count records between start and end, most recent first.
func (g *Generator) Generate(count int, start, end time.Time) []models.Transaction {
	if count <= 0 || !end.After(start) {
		return []models.Transaction{}
	}

	records := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		records = append(records, g.GenerateTransaction(start, end))
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp > records[j].Timestamp
	})

	return records
}

// GenerateTransaction builds one record dated inside [start, end).
func (g *Generator) GenerateTransaction(start, end time.Time) models.Transaction {
	txnType := models.TransactionTypeWithdrawal
	if g.faker.Float64Range(0, 1) < depositShare {
		txnType = models.TransactionTypeDeposit
	}

	currency := "brl"
	if g.faker.Float64Range(0, 1) < usdShare {
		currency = "usd"
	}

	return models.Transaction{
		Timestamp: g.GenerateTimestamp(start, end).UnixMilli(),
		Amount:    g.GenerateAmount(txnType),
		Type:      txnType,
		Currency:  currency,
		Account:   g.faker.RandomString(accountPool),
		Industry:  g.faker.RandomString(industryPool),
		State:     g.faker.RandomString(statePool),
	}
}

// GenerateAmount returns a two-decimal amount; deposits run larger than
// withdrawals.
func (g *Generator) GenerateAmount(txnType models.TransactionType) decimal.Decimal {
	maxValue := 6000.0
	if txnType == models.TransactionTypeDeposit {
		maxValue = 9000.0
	}
	return decimal.NewFromFloat(g.faker.Float64Range(5, maxValue)).Round(2)
}

// GenerateTimestamp picks a day in range and a time during business hours.
func (g *Generator) GenerateTimestamp(start, end time.Time) time.Time {
	day := g.faker.DateRange(start, end)
	ts := time.Date(
		day.Year(), day.Month(), day.Day(),
		g.faker.IntRange(businessHoursStart, businessHoursEnd-1),
		g.faker.IntRange(0, 59),
		g.faker.IntRange(0, 59),
		0,
		start.Location(),
	)

	if ts.Before(start) {
		return start
	}
	if !ts.Before(end) {
		return end.Add(-time.Second)
	}
	return ts
}
