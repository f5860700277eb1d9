package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/axes/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize axes configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the page and writes the config file (.axes.yml unless --config is given).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
