package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/axes/internal/progress"
	"github.com/ziadkadry99/axes/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the page as a static website",
	Long: `Generates a self-contained static site: index.html, one prerendered page
per category, style.css, script.js and axes-index.json.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	buildCmd.Flags().Bool("serve", false, "serve the page after building")
	buildCmd.Flags().Int("port", 0, "port for --serve (defaults to port from config)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	source, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()
	pageSource := withPageDefaults{Source: source, cfg: cfg}

	page, err := pageSource.Page(context.Background())
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	for _, group := range page.DuplicateHeadings() {
		fmt.Fprintf(os.Stderr, "Warning: sections %s share a heading; labels will match %s\n",
			strings.Join(group, ", "), group[0])
	}
	for label, target := range page.AxisTargets() {
		if target == "" && verbose {
			fmt.Fprintf(os.Stderr, "Note: intro label %q matches no section\n", label)
		}
	}

	renderer, err := site.NewRenderer(rendererOptions(cfg))
	if err != nil {
		return err
	}

	generator := site.NewSiteGenerator(renderer, outputDir)
	generator.Reporter = progress.NewReporter()
	pageCount, err := generator.Generate(page)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Static site generated: %s (%d pages)\n", outputDir, pageCount)

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Port = port
		}
		return runServer(cfg, pageSource, true)
	}

	return nil
}
