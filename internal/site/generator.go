package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/progress"
)

// SiteGenerator writes the page as a self-contained static site.
type SiteGenerator struct {
	Renderer  *Renderer
	OutputDir string
	Reporter  progress.Reporter
}

// NewSiteGenerator creates a SiteGenerator writing to outputDir.
func NewSiteGenerator(renderer *Renderer, outputDir string) *SiteGenerator {
	return &SiteGenerator{
		Renderer:  renderer,
		OutputDir: outputDir,
		Reporter:  progress.Nop{},
	}
}

// Generate builds the static site: index.html, one prerendered filtered page
// per category, the stylesheet, the script and the axis index. Returns the
// number of HTML pages written.
func (g *SiteGenerator) Generate(page *content.Page) (int, error) {
	if err := page.Validate(); err != nil {
		return 0, fmt.Errorf("invalid content: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(g.OutputDir, "category"), 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "script.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}
	if err := WriteAxisIndex(BuildAxisIndex(page), filepath.Join(g.OutputDir, "axes-index.json")); err != nil {
		return 0, fmt.Errorf("writing axis index: %w", err)
	}

	total := 1 + len(page.Categories)
	g.Reporter.Start(total)

	if err := g.renderPage(page, "index.html", View{}); err != nil {
		return 0, fmt.Errorf("rendering index: %w", err)
	}
	g.Reporter.Page(1, "index.html", "")

	for i, c := range page.Categories {
		rel := CategoryPath(c.Value)
		view := View{Category: c.Value, BasePath: basePath(rel)}
		if err := g.renderPage(page, rel, view); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", rel, err)
		}
		g.Reporter.Page(i+2, rel, page.CategoryLabel(c.Value))
	}

	g.Reporter.Finish(summarize(page, total))
	return total, nil
}

func summarize(page *content.Page, pages int) progress.Build {
	b := progress.Build{
		Pages:    pages,
		Sections: len(page.Sections),
		Axes:     len(page.Intro.Axes),
	}
	targets := page.AxisTargets()
	for _, label := range page.Intro.Axes {
		if targets[label] == "" {
			b.Unmatched++
		}
	}
	return b
}

func (g *SiteGenerator) renderPage(page *content.Page, relPath string, view View) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return g.Renderer.RenderPage(f, page, view)
}

// basePath returns the relative prefix that leads from relPath back to the
// site root.
func basePath(relPath string) string {
	return strings.Repeat("../", strings.Count(relPath, "/"))
}
