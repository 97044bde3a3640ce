package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/insight"
	"github.com/rustyeddy/tradebook/journal"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Ask the configured AI service for free-text trading insights",
	Long: `Hand stored trades (a capped prefix, see insight.max_trades) to the
configured text-generation service and print whatever it says. The service
contract is free text; nothing is parsed or validated.

Requires ANTHROPIC_API_KEY; without it a placeholder message is printed.`,
	Args: cobra.NoArgs,
	RunE: runInsights,
}

var insightsImportID string

func init() {
	rootCmd.AddCommand(insightsCmd)

	insightsCmd.Flags().StringVar(&insightsImportID, "import", "", "restrict to one import batch")
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var trades []journal.Trade
	if insightsImportID != "" {
		trades, err = store.ListTradesByImport(insightsImportID)
	} else {
		trades, err = store.ListTrades()
	}
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		return fmt.Errorf("no trades found; run 'tradebook import' first")
	}

	var gen insight.Generator = insight.Noop{}
	if os.Getenv("ANTHROPIC_API_KEY") != "" {
		gen = insight.NewAnthropic(cfg.Insight.Model, cfg.Insight.Endpoint, cfg.Insight.MaxTrades)
	}

	text, err := gen.Insights(cmd.Context(), trades)
	if err != nil {
		return fmt.Errorf("generate insights: %w", err)
	}
	fmt.Println(text)
	return nil
}
