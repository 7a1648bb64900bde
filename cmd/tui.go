package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	Long: `Launch the interactive Terminal User Interface for fuel.

Views available:
  - Log: Browse the processed log and change its order
  - Stats: Statistics by category
  - Ownership: Cost of ownership
  - Series: Chart series as bars
  - Config: Settings and theme picker

Keyboard shortcuts:
  - Tab/Shift+Tab: Navigate between views
  - 1-5: Jump to specific view
  - j/k or arrows: Navigate within lists
  - v: Cycle through vehicles
  - s: Change the sort column (Log view)
  - ?: Show help
  - q: Quit`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

var tuiFlag bool

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Add --tui flag to root command for quick access
	rootCmd.PersistentFlags().BoolVar(&tuiFlag, "tui", false, "Launch interactive terminal UI")
}

// runTUI runs the TUI on the initialized services
func runTUI() {
	deps := cli.GetDeps()
	if err := tui.Run(deps.Services, vehicleFlag); err != nil {
		deps.Fail("Failed to run TUI", err, "")
	}
}

// CheckTUIFlag checks if the --tui flag is set and runs the TUI if so.
// Returns true if the TUI was launched, false otherwise.
func CheckTUIFlag(cmd *cobra.Command) bool {
	if tuiFlag {
		runTUI()
		return true
	}
	return false
}
