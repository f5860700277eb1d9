package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/axes/internal/matcher"
)

var matchCmd = &cobra.Command{
	Use:   "match <label>",
	Short: "Find the section an axis label navigates to",
	Long: `Normalizes the label and prints the first section whose heading is
equivalent. Prints "no match" when none is; both outcomes exit 0.`,
	Args: cobra.ExactArgs(1),
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
			return fmt.Errorf("loading content: %w", err)
		}

		label := args[0]
		canonical := matcher.Normalize(label)
		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "canonical: %s\n", canonical)
		}

		section, ok := page.MatchAxis(label)
		if canonical == "" || !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no match")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", section.ID, section.Heading)
		return nil
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>",
	Short: "Print the canonical form of a label",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), matcher.Normalize(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(normalizeCmd)
}
