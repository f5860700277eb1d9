package site

import (
	"encoding/json"
	"os"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/matcher"
)

// AxisEntry maps an intro label to the section it navigates to.
type AxisEntry struct {
	Label     string `json:"label"`
	Canonical string `json:"canonical"`
	SectionID string `json:"section_id,omitempty"`
}

// BuildAxisIndex resolves every intro label of the page. Labels without a
// counterpart keep an empty SectionID.
func BuildAxisIndex(page *content.Page) []AxisEntry {
	targets := page.AxisTargets()
	entries := make([]AxisEntry, 0, len(page.Intro.Axes))
	for _, label := range page.Intro.Axes {
		entries = append(entries, AxisEntry{
			Label:     label,
			Canonical: matcher.Normalize(label),
			SectionID: targets[label],
		})
	}
	return entries
}

// WriteAxisIndex writes the axis index as JSON to the given path.
func WriteAxisIndex(entries []AxisEntry, outputPath string) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
