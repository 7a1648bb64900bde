package cmd

import (
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
	"github.com/xolan/fuel/internal/stats"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show fuel statistics",
	Long: `Show statistics derived from the fuel log of the current vehicle.

Statistics are grouped into the categories Primary, Time-Based, Distance,
Fuel & Cost, Efficiency and Volatility. Entries with invalid data are
excluded. At least two valid entries are needed.

Usage:
  fuel stats                          Show every category
  fuel stats --category distance      Show one category
  fuel stats --json                   Print the report as JSON`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		asJSON, _ := cmd.Flags().GetBool("json")
		handlers.ShowStats(cli.GetDeps(), vehicleFlag, category, asJSON)
	},
}

// ownershipCmd represents the ownership command
var ownershipCmd = &cobra.Command{
	Use:   "ownership",
	Short: "Show the cost of owning the vehicle",
	Long: `Show the purchase price, fuel spend and total cost of ownership per
distance and per day. Requires a purchase price on the vehicle.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowOwnership(cli.GetDeps(), vehicleFlag)
	},
}

// noticesCmd represents the notices command
var noticesCmd = &cobra.Command{
	Use:   "notices",
	Short: "Explain missing statistics and invalid entries",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowNotices(cli.GetDeps(), vehicleFlag)
	},
}

// seriesCmd represents the series command
var seriesCmd = &cobra.Command{
	Use:   "series [name]",
	Short: "Show chart series",
	Long: `Show the time series used for charts as bar rows.

Series: ` + strings.Join(stats.SeriesNames, ", "),
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: slices.Clone(stats.SeriesNames),
	Run: func(cmd *cobra.Command, args []string) {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		handlers.ShowSeries(cli.GetDeps(), vehicleFlag, name)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(ownershipCmd)
	rootCmd.AddCommand(noticesCmd)
	rootCmd.AddCommand(seriesCmd)

	statsCmd.Flags().StringP("category", "c", "", "Only show one category")
	statsCmd.Flags().Bool("json", false, "Print the report as JSON")
}
