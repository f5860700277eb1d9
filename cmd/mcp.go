package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/axes/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the match_axis, list_sections and filter_category tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source, closeSource, err := openSource(cfg)
		if err != nil {
			return err
		}
		defer closeSource()

		page, err := source.Page(context.Background())
		if err != nil {
			// Continue: the tools report the error on each call.
			fmt.Fprintf(os.Stderr, "Warning: could not load content: %v\n", err)
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		if page != nil {
			fmt.Fprintf(os.Stderr, "axes MCP server started on stdio (sections=%d)\n", len(page.Sections))
		}

		srv := mcpserver.NewServer(source, shellOptions(cfg.Shell))
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
