package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ziadkadry99/axes/internal/config"
	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/db"
	"github.com/ziadkadry99/axes/internal/shell"
	"github.com/ziadkadry99/axes/internal/site"
	"github.com/ziadkadry99/axes/internal/starfield"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `axes init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openSource returns the configured content source. With a database set,
// content is read from sqlite; otherwise from the content YAML files. The
// returned close func releases the database, if any.
func openSource(cfg *config.Config) (content.Source, func() error, error) {
	if cfg.Database == "" {
		return content.NewFileSource(cfg.Content...), func() error { return nil }, nil
	}

	database, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return content.NewSQLStore(database), database.Close, nil
}

// withPageDefaults fills the title and welcome text from the config when the
// content leaves them empty.
type withPageDefaults struct {
	content.Source
	cfg *config.Config
}

func (s withPageDefaults) Page(ctx context.Context) (*content.Page, error) {
	page, err := s.Source.Page(ctx)
	if err != nil {
		return nil, err
	}
	p := *page
	if p.Title == "" {
		p.Title = s.cfg.Title
	}
	if p.Welcome == "" {
		p.Welcome = s.cfg.Welcome
	}
	return &p, nil
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// shellOptions converts the shell config block into controller options.
func shellOptions(sc config.ShellConfig) shell.Options {
	return shell.Options{
		OverlayDelay:        ms(sc.OverlayDelayMS),
		OverlayFade:         ms(sc.OverlayFadeMS),
		BackFade:            ms(sc.BackFadeMS),
		Zoom:                ms(sc.ZoomMS),
		CardRevealBase:      ms(sc.CardRevealBaseMS),
		CardRevealStep:      ms(sc.CardRevealStepMS),
		ScrollTopThreshold:  sc.ScrollTopThreshold,
		StickyThreshold:     sc.StickyThreshold,
		FilteredTitlePrefix: sc.FilteredTitlePrefix,
	}
}

// rendererOptions converts the config into page renderer options.
func rendererOptions(cfg *config.Config) site.Options {
	sc := cfg.Shell
	labels := site.DefaultLabels()
	if sc.BackLabel != "" {
		labels.Back = sc.BackLabel
	}
	if sc.ScrollTopLabel != "" {
		labels.ScrollTop = sc.ScrollTopLabel
	}
	if sc.CategoryPrompt != "" {
		labels.CategoryPrompt = sc.CategoryPrompt
	}
	return site.Options{
		Shell: shellOptions(sc),
		Stars: starfield.Options{
			Count:      sc.StarCount,
			MaxDelay:   sc.StarMaxDelayS,
			MaxOpacity: sc.StarMaxOpacity,
		},
		Labels: labels,
	}
}
