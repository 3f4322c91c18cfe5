package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finance-dashboard/internal/dataset"
	"finance-dashboard/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerate(t *testing.T) {
	now := time.Date(2024, 6, 30, 12, 0, 0, 0, time.UTC)

	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runGenerate(&buf, &generateFlags{Count: 25, Days: 30, Seed: 7, Output: "-"}, now))

		records, err := dataset.Decode(&buf)
		require.NoError(t, err)
		assert.Len(t, records, 25)
		for _, r := range records {
			assert.True(t, r.Timestamp >= now.AddDate(0, 0, -30).UnixMilli())
			assert.True(t, r.Timestamp <= now.UnixMilli())
		}
	})

	t.Run("same seed same file", func(t *testing.T) {
		dir := t.TempDir()
		a := filepath.Join(dir, "a.json")
		b := filepath.Join(dir, "b.json")
		require.NoError(t, runGenerate(&bytes.Buffer{}, &generateFlags{Count: 10, Days: 5, Seed: 3, Output: a}, now))
		require.NoError(t, runGenerate(&bytes.Buffer{}, &generateFlags{Count: 10, Days: 5, Seed: 3, Output: b}, now))

		first, err := os.ReadFile(a)
		require.NoError(t, err)
		second, err := os.ReadFile(b)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects bad counts", func(t *testing.T) {
		assert.Error(t, runGenerate(&bytes.Buffer{}, &generateFlags{Count: 0, Days: 5}, now))
		assert.Error(t, runGenerate(&bytes.Buffer{}, &generateFlags{Count: 5, Days: -1}, now))
	})
}

func TestQueryCmd_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.json")
	require.NoError(t, runGenerate(&bytes.Buffer{}, &generateFlags{Count: 40, Days: 20, Seed: 11, Output: path}, time.Now()))

	t.Setenv("APP_ENV", "testing")
	t.Setenv("JWT_PRIVATE_KEY", "")
	t.Setenv("JWT_PUBLIC_KEY", "")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("DATASET_PATH", path)

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"query", "--json", "--type", "Depósito", "--page", "1"})

	require.NoError(t, root.Execute())

	var resp dto.QueryViewResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, resp.Summary.DepositCount, resp.Pagination.Total)
	assert.Equal(t, 0, resp.Summary.WithdrawalCount)
	assert.Equal(t, []string{"deposit"}, resp.Filters["transactionType"])
	for _, item := range resp.PageItems {
		assert.Equal(t, "Depósito", item.TransactionTypeLabel)
	}
}

func TestRenderView(t *testing.T) {
	resp := dto.QueryViewResponse{
		Summary:     dto.SummaryResponse{TotalBalance: "70.00", Income: "100.00", Expenses: "30.00", TransactionCount: 2},
		Granularity: "daily",
		MoneyFlow:   []dto.MoneyFlowPoint{{Label: "01/06", Deposits: "100.00", Withdrawals: "30.00"}},
		PageItems: []dto.TransactionResponse{
			{DisplayDate: "01/06/2024", TransactionTypeLabel: "Depósito", Amount: "100.00", Account: "Nubank"},
		},
		Pagination: dto.PaginationInfo{CurrentPage: 1, TotalPages: 1, Total: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, renderView(&buf, resp))

	out := buf.String()
	assert.Contains(t, out, "70.00")
	assert.Contains(t, out, "01/06")
	assert.Contains(t, out, "Nubank")
	assert.Contains(t, out, "page 1 of 1")
}

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	for _, name := range []string{"serve", "query", "generate", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
