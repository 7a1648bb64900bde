package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xolan/fuel/internal/cli"
	"github.com/xolan/fuel/internal/cli/handlers"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish statistics to an MQTT broker",
	Long: `Publish the summary and primary statistics of the current vehicle to
the MQTT broker configured under [mqtt] in the config file.

Messages go to <topic_prefix>/<vehicle>/summary as JSON and to one retained
topic per primary statistic.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handlers.Publish(cli.GetDeps(), vehicleFlag)
	},
}

func init() {
	rootCmd.AddCommand(publishCmd)
}
