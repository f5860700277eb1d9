package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/axes/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "axes",
	Short: "Arabic axes page: label matching, live shell and static site",
	Long: `Axes serves a single Arabic page of thematic sections ("axes"). Intro
labels are matched to section headings regardless of whitespace and common
Alef/Yeh spelling variants. The page can be served live over a websocket
shell, built as a static site, or queried by AI agents via MCP.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
