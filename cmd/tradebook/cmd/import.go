package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/mapping"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Normalize a broker CSV export and store the trades",
	Long: `Read a broker CSV export, guess (or load) the column mapping, normalize
every row into a canonical trade record and store the result under a new
import batch id.

Rows that cannot be normalized (unparseable numbers, bad timestamps, no
resolvable side) are dropped and counted; they never become zero-filled
trades.

Examples:
  tradebook import export.csv
  tradebook import export.csv --mapping mapping.yaml
  tradebook import export.csv --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var (
	importMappingFile string
	importDryRun      bool
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&importMappingFile, "mapping", "m", "", "saved mapping YAML to use as confirmed mapping")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "normalize and report, store nothing")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	path := args[0]
	headers, rows, err := journal.ReadCSVFile(path)
	if err != nil {
		return err
	}
	log.Debugw("csv decoded", "file", path, "headers", len(headers), "rows", len(rows))

	var prior mapping.Mapping
	mappingFile := importMappingFile
	if mappingFile == "" {
		mappingFile = cfg.Mapping.File
	}
	if mappingFile != "" {
		if prior, err = mapping.LoadFile(mappingFile); err != nil {
			return err
		}
	}

	m := mapping.Propose(headers, prior)
	if err := mapping.Validate(m); err != nil {
		return fmt.Errorf("%w\n\nRun 'tradebook map %s -o mapping.yaml', fill in the missing fields and retry with --mapping", err, path)
	}

	trades, rep, err := journal.Materialize(rows, m, time.Now().UTC())
	if err != nil {
		return err
	}
	if rep.Kept == 0 {
		return fmt.Errorf("no valid rows: all %d rows dropped (%s)", rep.Dropped, formatReasons(rep.Reasons))
	}

	log.Infow("rows normalized", "kept", rep.Kept, "dropped", rep.Dropped)
	if rep.Dropped > 0 {
		log.Debugw("drop reasons", "counts", formatReasons(rep.Reasons))
	}

	if importDryRun {
		fmt.Printf("%s: %d trades would be imported, %d rows dropped\n", path, rep.Kept, rep.Dropped)
		return nil
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	batch, err := store.SaveImport(journal.ImportBatch{
		Source:  filepath.Base(path),
		Kept:    rep.Kept,
		Dropped: rep.Dropped,
	}, trades)
	if err != nil {
		return fmt.Errorf("store import: %w", err)
	}

	fmt.Printf("Imported %d trades (%d rows dropped) as batch %s\n", rep.Kept, rep.Dropped, batch.ImportID)
	if rep.Dropped > 0 {
		fmt.Printf("Dropped rows: %s\n", formatReasons(rep.Reasons))
	}
	return nil
}
