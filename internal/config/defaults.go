package config

// DefaultContent is the content glob used when none is configured.
var DefaultContent = []string{"content/*.yml"}

// DefaultShell returns the timings and labels of the original page.
func DefaultShell() ShellConfig {
	return ShellConfig{
		OverlayDelayMS:      2000,
		OverlayFadeMS:       1000,
		BackFadeMS:          400,
		ZoomMS:              1000,
		CardRevealBaseMS:    300,
		CardRevealStepMS:    250,
		ScrollTopThreshold:  300,
		StickyThreshold:     80,
		StarCount:           50,
		StarMaxDelayS:       6,
		StarMaxOpacity:      0.6,
		FilteredTitlePrefix: "عرض محور: ",
		BackLabel:           "الرجوع إلى الرئيسية",
		ScrollTopLabel:      "الانتقال للأعلى",
		CategoryPrompt:      "كل المحاور",
	}
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Title:     "منصة المحاور",
		Welcome:   "مرحبًا بكم في منصة المحاور",
		Content:   append([]string(nil), DefaultContent...),
		OutputDir: "site",
		Port:      8080,
		Shell:     DefaultShell(),
	}
}
