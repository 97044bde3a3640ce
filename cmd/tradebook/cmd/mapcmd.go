package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/mapping"
)

var mapCmd = &cobra.Command{
	Use:   "map <file.csv>",
	Short: "Propose a column mapping for a broker CSV export",
	Long: `Read the header row of a CSV export and print the proposed mapping from
canonical trade fields to raw headers. Fields with no matching header are
left out; edit the saved file to fill them in manually.

Examples:
  tradebook map export.csv
  tradebook map export.csv -o mapping.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runMap,
}

var mapOutput string

func init() {
	rootCmd.AddCommand(mapCmd)

	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "", "write the mapping to a YAML file")
}

func runMap(cmd *cobra.Command, args []string) error {
	headers, _, err := journal.ReadCSVFile(args[0])
	if err != nil {
		return err
	}

	m := mapping.Propose(headers, nil)

	if mapOutput != "" {
		if err := m.SaveFile(mapOutput); err != nil {
			return err
		}
		fmt.Printf("Wrote mapping to %s\n", mapOutput)
	} else {
		data, err := yaml.Marshal(m)
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	}

	if missing := m.MissingRequired(); len(missing) > 0 {
		fmt.Printf("\nUnmapped required fields: %v\n", missing)
		fmt.Println("Imports will fail until these are filled in.")
	}
	return nil
}
