package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
	"github.com/xolan/fuel/internal/units"
)

// unitsCmd represents the units command
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "Show or change the unit system",
	Long: `Show or change the unit system used for every vehicle.

Metric uses kilometres and litres. Imperial uses miles and US gallons.

Usage:
  fuel units                                    Show the current unit system
  fuel units set imperial                       Switch and convert all entries
  fuel units convert --from metric --to imperial --odometer 100 --fuel 40 --price 1.5`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		sys := deps.Services.Units.Current()
		_, _ = fmt.Fprintf(deps.Stdout, "Unit system: %s (%s, %s)\n", sys, sys.DistanceUnit(), sys.VolumeUnit())
	},
}

var unitsSetCmd = &cobra.Command{
	Use:       "set <metric|imperial>",
	Short:     "Switch the unit system and convert every stored entry",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(units.Metric), string(units.Imperial)},
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetUnits(cli.GetDeps(), args[0])
	},
}

var unitsConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one set of readings between unit systems",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		odo, _ := cmd.Flags().GetFloat64("odometer")
		fuel, _ := cmd.Flags().GetFloat64("fuel")
		price, _ := cmd.Flags().GetFloat64("price")
		handlers.ConvertUnits(cli.GetDeps(), from, to, odo, fuel, price)
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
	unitsCmd.AddCommand(unitsSetCmd)
	unitsCmd.AddCommand(unitsConvertCmd)

	unitsConvertCmd.Flags().String("from", string(units.Metric), "Unit system of the readings")
	unitsConvertCmd.Flags().String("to", string(units.Imperial), "Unit system to convert to")
	unitsConvertCmd.Flags().Float64("odometer", 0, "Odometer reading")
	unitsConvertCmd.Flags().Float64("fuel", 0, "Amount of fuel")
	unitsConvertCmd.Flags().Float64("price", 0, "Price per unit of fuel")
}
