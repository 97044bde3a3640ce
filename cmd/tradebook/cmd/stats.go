package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/metrics"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Compute performance statistics from stored trades",
	Long: `Recompute the full statistics bundle (win rate, drawdown, streaks,
profit factor, time/day/symbol breakdowns) from stored trades.

Examples:
  tradebook stats
  tradebook stats --import 01HWZ...
  tradebook stats --from 2024-01-01 --to 2024-02-01
  tradebook stats --json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsImportID string
	statsFrom     string
	statsTo       string
	statsJSON     bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsImportID, "import", "", "restrict to one import batch")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "start date YYYY-MM-DD (inclusive)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "end date YYYY-MM-DD (exclusive)")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit the bundle as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	trades, err := selectTrades(store)
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		return fmt.Errorf("no trades found; run 'tradebook import' first")
	}

	bundle := metrics.Compute(trades)

	if statsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}
	metrics.WriteReport(os.Stdout, bundle)
	return nil
}

func selectTrades(store *journal.SQLite) ([]journal.Trade, error) {
	if statsImportID != "" {
		return store.ListTradesByImport(statsImportID)
	}
	if statsFrom != "" || statsTo != "" {
		start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Now().UTC().Add(24 * time.Hour)
		var err error
		if statsFrom != "" {
			if start, err = time.Parse("2006-01-02", statsFrom); err != nil {
				return nil, fmt.Errorf("bad --from date: %w", err)
			}
		}
		if statsTo != "" {
			if end, err = time.Parse("2006-01-02", statsTo); err != nil {
				return nil, fmt.Errorf("bad --to date: %w", err)
			}
		}
		return store.ListTradesBetween(start, end)
	}
	return store.ListTrades()
}
