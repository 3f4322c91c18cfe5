package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/server"
	"finance-dashboard/internal/services"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type queryFlags struct {
	Start      string
	End        string
	Types      []string
	Accounts   []string
	Industries []string
	States     []string
	Currencies []string
	Search     string
	Page       int
	JSON       bool
}

// filterValues maps the flags to the same parameters the HTTP API reads.
func (f *queryFlags) filterValues() url.Values {
	values := url.Values{}
	values[string(models.DimensionTransactionType)] = f.Types
	values[string(models.DimensionAccount)] = f.Accounts
	values[string(models.DimensionIndustry)] = f.Industries
	values[string(models.DimensionState)] = f.States
	values[string(models.DimensionCurrency)] = f.Currencies
	return values
}

type queryRunner struct {
	dashboard services.DashboardServiceInterface
	loc       *time.Location
	flags     *queryFlags
	out       io.Writer
}

func NewQueryCmd() *cobra.Command {
	flags := &queryFlags{}

	cmd := &cobra.Command{
		Use:     "query",
		Aliases: []string{"q"},
		Short:   "Print the dashboard for a range and filter set",
		Long: `Print the dashboard for a range and filter set.

Dates use dd/mm/yyyy; missing or malformed dates fall back to the default
range. Filter flags may be repeated and accept display labels.`,
		Example: `  dashboard query --start 01/01/2024 --end 31/03/2024 --type Saque
  dashboard query --account Nubank --search tech --page 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

			app, err := server.NewApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			runner := &queryRunner{
				dashboard: app.Dashboard,
				loc:       cfg.Query.Location,
				flags:     flags,
				out:       cmd.OutOrStdout(),
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVarP(&flags.Start, "start", "s", "", "range start, dd/mm/yyyy")
	cmd.Flags().StringVarP(&flags.End, "end", "e", "", "range end, dd/mm/yyyy")
	cmd.Flags().StringArrayVarP(&flags.Types, "type", "t", nil, "transaction type (deposit, withdrawal, Depósito, Saque)")
	cmd.Flags().StringArrayVarP(&flags.Accounts, "account", "a", nil, "account")
	cmd.Flags().StringArrayVar(&flags.Industries, "industry", nil, "industry")
	cmd.Flags().StringArrayVar(&flags.States, "state", nil, "state")
	cmd.Flags().StringArrayVar(&flags.Currencies, "currency", nil, "currency")
	cmd.Flags().StringVar(&flags.Search, "search", "", "match account or industry")
	cmd.Flags().IntVarP(&flags.Page, "page", "p", 1, "page to list")
	cmd.Flags().BoolVar(&flags.JSON, "json", false, "print the API response body instead of tables")

	return cmd
}

func (r *queryRunner) Run(cmd *cobra.Command) error {
	catalog := r.dashboard.Catalog()
	rng := r.dashboard.ResolveRange(r.flags.Start, r.flags.End)
	filters := services.ParseFilterSet(r.flags.filterValues(), catalog).WithRange(rng)

	view, err := r.dashboard.GetDashboard(cmd.Context(), services.DashboardRequest{
		Filters:    filters,
		SearchTerm: r.flags.Search,
		Page:       r.flags.Page,
	})
	if err != nil {
		return fmt.Errorf("failed to load dashboard: %w", err)
	}

	resp := dto.NewQueryViewResponse(view, r.loc, catalog)
	if r.flags.JSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	return renderView(r.out, resp)
}

func renderView(out io.Writer, resp dto.QueryViewResponse) error {
	section := pterm.DefaultSection.WithWriter(out)
	table := pterm.DefaultTable.WithWriter(out)

	section.Printf("Summary %s - %s", resp.Range.StartDate, resp.Range.EndDate)
	if err := table.WithHasHeader().WithData(summaryTable(resp.Summary)).Render(); err != nil {
		return err
	}

	section.Printf("Money flow (%s)", resp.Granularity)
	if len(resp.MoneyFlow) == 0 {
		pterm.Info.WithWriter(out).Println("No transactions in range")
	} else if err := table.WithHasHeader().WithData(moneyFlowTable(resp.MoneyFlow)).Render(); err != nil {
		return err
	}

	section.Printf("Transactions, page %d of %d (%d total)",
		resp.Pagination.CurrentPage, resp.Pagination.TotalPages, resp.Pagination.Total)
	if len(resp.PageItems) == 0 {
		pterm.Info.WithWriter(out).Println("No transactions match the filters")
		return nil
	}
	return table.WithHasHeader().WithData(transactionTable(resp.PageItems)).Render()
}

func summaryTable(s dto.SummaryResponse) pterm.TableData {
	return pterm.TableData{
		{"Balance", "Income", "Expenses", "Transactions", "Deposits", "Withdrawals"},
		{
			s.TotalBalance,
			s.Income,
			s.Expenses,
			fmt.Sprint(s.TransactionCount),
			fmt.Sprint(s.DepositCount),
			fmt.Sprint(s.WithdrawalCount),
		},
	}
}

func moneyFlowTable(points []dto.MoneyFlowPoint) pterm.TableData {
	data := pterm.TableData{{"Period", "Deposits", "Withdrawals"}}
	for _, p := range points {
		data = append(data, []string{p.Label, p.Deposits, p.Withdrawals})
	}
	return data
}

func transactionTable(items []dto.TransactionResponse) pterm.TableData {
	data := pterm.TableData{{"Date", "Type", "Amount", "Currency", "Account", "Industry", "State"}}
	for _, t := range items {
		data = append(data, []string{
			t.DisplayDate,
			t.TransactionTypeLabel,
			t.Amount,
			t.Currency,
			t.Account,
			t.Industry,
			t.State,
		})
	}
	return data
}
