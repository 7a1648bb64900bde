package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
	"github.com/xolan/fuel/internal/entry"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a fill-up",
	Long: `Log a fill-up for the current vehicle.

Usage:
  fuel add --odometer 12345 --fuel 40.5 --price 1.59
  fuel add --date 2024-01-31 --odometer 12345 --fuel 40.5 --price 1.59
  fuel add --date 31/01/2024 --odometer 12345 --fuel 40.5 --price 1.59

The odometer is the total reading, fuel is the amount filled and price is
the price per unit of fuel, all in the current unit system. The date
defaults to today.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		in := entry.Input{}
		in.Date, _ = cmd.Flags().GetString("date")
		in.Odometer, _ = cmd.Flags().GetString("odometer")
		in.Fuel, _ = cmd.Flags().GetString("fuel")
		in.Price, _ = cmd.Flags().GetString("price")
		if in.Date == "" {
			in.Date = deps.Now().Format(entry.DateLayout)
		}
		handlers.AddEntry(deps, vehicleFlag, in)
	},
}

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the fuel log",
	Long: `Show the processed fuel log of the current vehicle.

Usage:
  fuel log                      Show the log in the saved order
  fuel log --sort odometer      Sort by odometer reading, ascending
  fuel log --sort fuel --desc   Sort by fuel amount, descending
  fuel log --sort date --toggle Flip the direction when already sorted by date

Entries marked ! have invalid data and are excluded from statistics.
The entry marked * is the first fill-up, which only sets the starting
odometer reading. The chosen order is remembered.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := handlers.LogOptions{}
		opts.Sort, _ = cmd.Flags().GetString("sort")
		opts.Desc, _ = cmd.Flags().GetBool("desc")
		opts.Toggle, _ = cmd.Flags().GetBool("toggle")
		handlers.ShowLog(cli.GetDeps(), vehicleFlag, opts)
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a log entry",
	Long: `Delete an entry from the fuel log.

The index refers to the entry number shown by 'fuel log' (starting from 1).
You will be asked to confirm unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteEntry(cli.GetDeps(), vehicleFlag, args[0], yes)
	},
}

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every entry of a vehicle",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.ClearEntries(cli.GetDeps(), vehicleFlag, yes)
	},
}

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit --file <entries.json>",
	Short: "Replace the log with an edited JSON array",
	Long: `Replace the whole fuel log with a JSON array of entries.

Export the log with 'fuel export log', edit the file and load it back:
  fuel export log --output log.json
  fuel edit --file log.json

Every entry needs a date, odometerReading, fuel and price. Nothing is
saved when one of them is missing.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("file")
		handlers.EditEntries(cli.GetDeps(), vehicleFlag, path)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(editCmd)

	addCmd.Flags().String("date", "", "Date of the fill-up (YYYY-MM-DD or DD/MM/YYYY)")
	addCmd.Flags().String("odometer", "", "Odometer reading")
	addCmd.Flags().String("fuel", "", "Amount of fuel filled")
	addCmd.Flags().String("price", "", "Price per unit of fuel")

	logCmd.Flags().String("sort", "", "Sort key: date, odometerReading, distanceTraveled, fuel, price or totalSpend")
	logCmd.Flags().Bool("desc", false, "Sort in descending order")
	logCmd.Flags().Bool("toggle", false, "Flip the direction when the sort key is unchanged")

	deleteCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
	clearCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")

	editCmd.Flags().StringP("file", "f", "", "JSON file with the edited entries")
	_ = editCmd.MarkFlagRequired("file")
}
