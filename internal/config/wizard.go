package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to axes! Let's configure your page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Page title.
	titlePrompt := promptui.Prompt{
		Label:   "Page title",
		Default: cfg.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	cfg.Title = strings.TrimSpace(title)

	// 2. Welcome overlay.
	welcomePrompt := promptui.Prompt{
		Label:   "Welcome message",
		Default: cfg.Welcome,
	}
	welcome, err := welcomePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("welcome: %w", err)
	}
	cfg.Welcome = strings.TrimSpace(welcome)

	// 3. Content files.
	contentPrompt := promptui.Prompt{
		Label:   "Content files (comma-separated globs)",
		Default: strings.Join(cfg.Content, ","),
	}
	contentStr, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content patterns: %w", err)
	}
	if patterns := splitAndTrim(contentStr); len(patterns) > 0 {
		cfg.Content = patterns
	}

	// 4. Content source.
	sourcePrompt := promptui.Select{
		Label: "Serve content from",
		Items: []string{
			"files  - read the YAML files on every request",
			"sqlite - import the YAML files into a database",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	if sourceIdx == 1 {
		dbPrompt := promptui.Prompt{
			Label:   "Database path",
			Default: ".axes/content.db",
		}
		dbPath, err := dbPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
		cfg.Database = strings.TrimSpace(dbPath)
	}

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	// 6. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("\nOverwriting existing %s\n", path)
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	if cfg.Database != "" {
		fmt.Println("Run `axes import` to load the content into the database.")
	}
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
