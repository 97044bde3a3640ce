package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write stored trades back out as canonical CSV",
	Long: `Export normalized trades with the fixed canonical header. The output
reimports cleanly, so it doubles as a broker-independent archive format.

Examples:
  tradebook export -o trades.csv
  tradebook export --import 01HWZ... -o batch.csv`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportImportID string
	exportOutput   string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportImportID, "import", "", "restrict to one import batch")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
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
	if exportImportID != "" {
		trades, err = store.ListTradesByImport(exportImportID)
	} else {
		trades, err = store.ListTrades()
	}
	if err != nil {
		return err
	}
	if len(trades) == 0 {
		return fmt.Errorf("no trades found; run 'tradebook import' first")
	}

	out := os.Stdout
	if exportOutput != "" {
		f, err := os.Create(exportOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return journal.ExportCSV(out, trades)
}
