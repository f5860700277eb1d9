package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".axes.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (AXES_*). Nested keys use a double
// underscore: AXES_SHELL__ZOOM_MS -> shell.zoom_ms.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("AXES_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "AXES_"))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if len(c.Content) == 0 && c.Database == "" {
		return fmt.Errorf("content or database is required")
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}

	return c.Shell.Validate()
}

// Validate checks the presentation settings.
func (s ShellConfig) Validate() error {
	durations := map[string]int{
		"overlay_delay_ms":    s.OverlayDelayMS,
		"overlay_fade_ms":     s.OverlayFadeMS,
		"back_fade_ms":        s.BackFadeMS,
		"zoom_ms":             s.ZoomMS,
		"card_reveal_base_ms": s.CardRevealBaseMS,
		"card_reveal_step_ms": s.CardRevealStepMS,
	}
	for name, v := range durations {
		if v < 0 {
			return fmt.Errorf("shell.%s must be non-negative", name)
		}
	}

	if s.ScrollTopThreshold < 0 || s.StickyThreshold < 0 {
		return fmt.Errorf("shell scroll thresholds must be non-negative")
	}

	if s.StarCount < 0 {
		return fmt.Errorf("shell.star_count must be non-negative")
	}

	if s.StarMaxDelayS < 0 {
		return fmt.Errorf("shell.star_max_delay_s must be non-negative")
	}

	if s.StarMaxOpacity < 0 || s.StarMaxOpacity > 1 {
		return fmt.Errorf("shell.star_max_opacity must be between 0 and 1")
	}

	return nil
}
