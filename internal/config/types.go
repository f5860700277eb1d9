package config

// Config is the top-level axes configuration, corresponding to .axes.yml.
type Config struct {
	Title           string      `yaml:"title" koanf:"title"`
	Welcome         string      `yaml:"welcome" koanf:"welcome"`
	Content         []string    `yaml:"content" koanf:"content"`
	Database        string      `yaml:"database,omitempty" koanf:"database"`
	OutputDir       string      `yaml:"output_dir" koanf:"output_dir"`
	Port            int         `yaml:"port" koanf:"port"`
	AllowAllOrigins bool        `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Shell           ShellConfig `yaml:"shell" koanf:"shell"`
}

// ShellConfig holds the presentation timings, thresholds and labels of the
// page.
type ShellConfig struct {
	OverlayDelayMS      int     `yaml:"overlay_delay_ms" koanf:"overlay_delay_ms"`
	OverlayFadeMS       int     `yaml:"overlay_fade_ms" koanf:"overlay_fade_ms"`
	BackFadeMS          int     `yaml:"back_fade_ms" koanf:"back_fade_ms"`
	ZoomMS              int     `yaml:"zoom_ms" koanf:"zoom_ms"`
	CardRevealBaseMS    int     `yaml:"card_reveal_base_ms" koanf:"card_reveal_base_ms"`
	CardRevealStepMS    int     `yaml:"card_reveal_step_ms" koanf:"card_reveal_step_ms"`
	ScrollTopThreshold  float64 `yaml:"scroll_top_threshold" koanf:"scroll_top_threshold"`
	StickyThreshold     float64 `yaml:"sticky_threshold" koanf:"sticky_threshold"`
	StarCount           int     `yaml:"star_count" koanf:"star_count"`
	StarMaxDelayS       float64 `yaml:"star_max_delay_s" koanf:"star_max_delay_s"`
	StarMaxOpacity      float64 `yaml:"star_max_opacity" koanf:"star_max_opacity"`
	FilteredTitlePrefix string  `yaml:"filtered_title_prefix" koanf:"filtered_title_prefix"`
	BackLabel           string  `yaml:"back_label" koanf:"back_label"`
	ScrollTopLabel      string  `yaml:"scroll_top_label" koanf:"scroll_top_label"`
	CategoryPrompt      string  `yaml:"category_prompt" koanf:"category_prompt"`
}
