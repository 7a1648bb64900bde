package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
	"github.com/xolan/fuel/internal/service"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the fuel log with a JSON or CSV file",
	Long: `Replace the fuel log of the current vehicle with the contents of a file.

JSON files hold an array of entries with date, odometerReading, fuel and
price fields. CSV files need a header row naming those columns. Rows
without a date or with non-numeric values are skipped.

The current log is replaced, so you will be asked to confirm unless
--yes is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.ImportEntries(cli.GetDeps(), vehicleFlag, args[0], yes)
	},
}

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <log|stats|series>",
	Short: "Export the log, statistics or chart series",
	Long: `Export data of the current vehicle to stdout or a file.

Usage:
  fuel export log                          Print the raw log as JSON
  fuel export log --format csv             Print the raw log as CSV
  fuel export stats --output stats.json    Write the statistics report to a file
  fuel export series --format csv          Print the chart series as CSV

Series are always exported as CSV.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{handlers.ExportLog, handlers.ExportStats, handlers.ExportSeries},
	Run: func(cmd *cobra.Command, args []string) {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		handlers.Export(cli.GetDeps(), vehicleFlag, args[0], format, output)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)

	importCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	exportCmd.Flags().String("format", service.FormatJSON, "Output format: json or csv")
	exportCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}
