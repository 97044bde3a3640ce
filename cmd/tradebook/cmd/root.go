package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/internal/logger"
	"github.com/rustyeddy/tradebook/journal"
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "Normalize broker trade exports and analyze trading performance",
	Long: `Tradebook ingests broker-exported trade logs (CSV) in whatever shape
your broker produces, normalizes them into canonical trade records, and
derives the standard set of trading-performance statistics.

Typical workflow:
  tradebook map export.csv -o mapping.yaml   # inspect/confirm column mapping
  tradebook import export.csv                # normalize and store trades
  tradebook stats                            # performance report`,
}

var (
	cfgFile string
	dbPath  string
	verbose bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite journal DB (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if dbPath != "" {
		cfg.Journal.DBPath = dbPath
	}
	return cfg, nil
}

func newLogger() (*zap.SugaredLogger, error) {
	return logger.New(verbose)
}

func openStore(cfg *config.Config) (*journal.SQLite, error) {
	s, err := journal.NewSQLite(cfg.Journal.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open journal db %s: %w", cfg.Journal.DBPath, err)
	}
	return s, nil
}

// formatReasons renders a drop-reason count map deterministically, e.g.
// "bad_number=2 bad_time=1".
func formatReasons(reasons map[journal.DropReason]int) string {
	keys := make([]string, 0, len(reasons))
	for r := range reasons {
		keys = append(keys, string(r))
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, reasons[journal.DropReason(k)])
	}
	return strings.Join(parts, " ")
}
