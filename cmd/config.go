package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective configuration settings for fuel.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file, FUEL_* environment
variables and defaults.

By default, fuel works without any configuration file. All settings have defaults:
  - unit_system: metric
  - currency_symbol: $
  - theme: dracula
  - storage_backend: json
  - log_level: warn

Examples:
  fuel config                         Show all current settings
  fuel config init                    Create a sample config file
  fuel config set currency_symbol €   Change one setting

Configuration file location:
  ~/.config/fuel/config.toml          Linux/macOS
  %APPDATA%\fuel\config.toml          Windows`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.ShowConfig(cli.GetDeps())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.InitConfig(cli.GetDeps())
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting and save the config file.

Keys: currency_symbol, theme, storage_backend, log_level.
The unit system is changed with 'fuel units set'.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		handlers.SetConfig(cli.GetDeps(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
}
