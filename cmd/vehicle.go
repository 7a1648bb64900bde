package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
	"github.com/xolan/fuel/internal/service"
)

// vehicleCmd represents the vehicle command
var vehicleCmd = &cobra.Command{
	Use:     "vehicle",
	Aliases: []string{"vehicles"},
	Short:   "Manage vehicles",
	Long: `Add, rename, delete and select vehicles. Each vehicle has its own fuel log.

Usage:
  fuel vehicle                                  List vehicles
  fuel vehicle add <name> [--price 20000]       Add a vehicle
  fuel vehicle edit <name> --name <new>         Rename a vehicle
  fuel vehicle edit <name> --price 18000        Change the purchase price
  fuel vehicle edit <name> --clear-price        Remove the purchase price
  fuel vehicle delete <name>                    Delete a vehicle and its log
  fuel vehicle use <name>                       Select the current vehicle

The purchase price is used for the ownership cost report.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListVehicles(cli.GetDeps())
	},
}

var vehicleAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a vehicle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.AddVehicle(cli.GetDeps(), args[0], floatFlag(cmd, "price"))
	},
}

var vehicleEditCmd = &cobra.Command{
	Use:   "edit <name>",
	Short: "Rename a vehicle or change its purchase price",
	Long: `Rename a vehicle or change its purchase price.

At least one of --name, --price or --clear-price is required.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deps := cli.GetDeps()
		upd := service.VehicleUpdate{Price: floatFlag(cmd, "price")}
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			upd.Name = &name
		}
		upd.ClearPrice, _ = cmd.Flags().GetBool("clear-price")
		if upd.Name == nil && upd.Price == nil && !upd.ClearPrice {
			deps.Fail("At least one flag (--name, --price or --clear-price) is required", nil,
				"Usage: fuel vehicle edit <name> --name <new name>")
			return
		}
		if upd.Price != nil && upd.ClearPrice {
			deps.Fail("--price and --clear-price cannot be combined", nil, "")
			return
		}
		handlers.EditVehicle(deps, args[0], upd)
	},
}

var vehicleDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a vehicle and its fuel log",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.DeleteVehicle(cli.GetDeps(), args[0], yes)
	},
}

var vehicleListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List vehicles",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ListVehicles(cli.GetDeps())
	},
}

var vehicleUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Select the current vehicle",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.UseVehicle(cli.GetDeps(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(vehicleCmd)
	vehicleCmd.AddCommand(vehicleAddCmd)
	vehicleCmd.AddCommand(vehicleEditCmd)
	vehicleCmd.AddCommand(vehicleDeleteCmd)
	vehicleCmd.AddCommand(vehicleListCmd)
	vehicleCmd.AddCommand(vehicleUseCmd)

	vehicleAddCmd.Flags().Float64("price", 0, "Purchase price of the vehicle")
	vehicleEditCmd.Flags().String("name", "", "New name for the vehicle")
	vehicleEditCmd.Flags().Float64("price", 0, "New purchase price")
	vehicleEditCmd.Flags().Bool("clear-price", false, "Remove the purchase price")
	vehicleDeleteCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

// floatFlag returns the flag value, or nil when the flag was not given.
func floatFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}
