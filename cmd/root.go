package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
)

var (
	vehicleFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fuel",
	Short: "A fuel consumption log for your vehicles",
	Long: `fuel keeps a log of fill-ups per vehicle and derives consumption,
distance and cost statistics from it.

Usage:
  fuel                                          Show the log of the current vehicle
  fuel vehicle add <name> [--price 20000]       Add a vehicle (price is the purchase price)
  fuel vehicle use <name>                       Select the current vehicle
  fuel add --odometer 12345 --fuel 40.5 --price 1.59
                                                Log a fill-up (date defaults to today)
  fuel log [--sort <key>] [--desc]              Show the processed log
  fuel delete <index>                           Delete an entry (with confirmation)
  fuel stats [--category Distance]              Show statistics
  fuel series [name]                            Show a time series
  fuel import <file.json|file.csv>              Replace the log with a file
  fuel export log|stats|series                  Export data as JSON or CSV
  fuel units set metric|imperial                Switch units and convert all entries
  fuel validate                                 Check storage file health
  fuel restore [n]                              Restore from backup (default: most recent)

Dates are written as YYYY-MM-DD or DD/MM/YYYY. Use --vehicle to act on a
vehicle other than the current one.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cli.GetDeps().Init(verboseFlag)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if CheckTUIFlag(cmd) {
			return
		}
		handlers.ShowLog(cli.GetDeps(), vehicleFlag, handlers.LogOptions{})
	},
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check storage file health",
	Long:  `Validate the storage file and report on its health status, including entries with invalid data and records in the legacy layout.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ValidateStorage(cli.GetDeps())
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore [n]",
	Short: "Restore storage from a backup",
	Long: `Restore the storage file from one of the automatic backups.

A backup is taken before every write. Backup 1 is the most recent.

Usage:
  fuel restore          Restore from the most recent backup
  fuel restore 2        Restore from backup 2
  fuel restore 2 -y     Restore without confirmation`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		arg := ""
		if len(args) == 1 {
			arg = args[0]
		}
		yes, _ := cmd.Flags().GetBool("yes")
		handlers.RestoreBackup(cli.GetDeps(), arg, yes)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vehicleFlag, "vehicle", "V", "", "Vehicle to act on (default: the current vehicle)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(restoreCmd)

	restoreCmd.Flags().BoolP("yes", "y", false, "Skip confirmation prompt")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"fuel version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	defer cli.GetDeps().Close()
	return rootCmd.Execute()
}
