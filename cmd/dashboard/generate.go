package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"finance-dashboard/internal/dataset"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	Count  int
	Days   int
	Seed   uint64
	Output string
}

func NewGenerateCmd() *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic transaction dataset",
		Long: `Write a synthetic transaction dataset in the layout read by DATASET_PATH.

Records are spread over the last --days days. The same --seed always yields
the same file.`,
		Example: `  dashboard generate --count 5000 --days 365 -o data/transactions.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), flags, time.Now())
		},
	}

	cmd.Flags().IntVarP(&flags.Count, "count", "n", 1000, "number of records")
	cmd.Flags().IntVar(&flags.Days, "days", 365, "span in days ending now")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "-", "output file, - for stdout")

	return cmd
}

func runGenerate(stdout io.Writer, flags *generateFlags, now time.Time) error {
	if flags.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", flags.Count)
	}
	if flags.Days <= 0 {
		return fmt.Errorf("days must be positive, got %d", flags.Days)
	}

	start := now.AddDate(0, 0, -flags.Days)
	records := dataset.NewGenerator(flags.Seed).Generate(flags.Count, start, now)

	if flags.Output == "-" {
		return dataset.Encode(stdout, records)
	}

	f, err := os.Create(flags.Output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", flags.Output, err)
	}
	if err := dataset.Encode(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	pterm.Success.Printf("Wrote %d transactions to %s\n", len(records), flags.Output)
	return nil
}
