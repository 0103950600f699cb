package riskstats

import (
	"github.com/mwiater/riskstats/internal/appconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd displays the effective configuration after flags are applied.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		appconfig.ShowConfig(cmd.OutOrStdout(), viper.ConfigFileUsed(), GetConfig())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
