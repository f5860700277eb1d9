package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Build summarizes a finished site build.
type Build struct {
	Pages     int
	Sections  int
	Axes      int
	Unmatched int
}

func (b Build) String() string {
	return fmt.Sprintf("%d pages, %d sections, %d intro axes (%d unmatched)",
		b.Pages, b.Sections, b.Axes, b.Unmatched)
}

// Reporter follows a site build page by page. category is the label of the
// filtered view a page renders, empty for the main page.
type Reporter interface {
	Start(pages int)
	Page(n int, path, category string)
	Finish(b Build)
}

// NewReporter returns a TerminalReporter, or a CIReporter when CI or
// GITHUB_ACTIONS is set.
func NewReporter() Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{}
}

func describe(path, category string) string {
	if category == "" {
		return path
	}
	return fmt.Sprintf("%s (%s)", path, category)
}

// TerminalReporter draws a progress bar on stderr.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(pages int) {
	r.bar = progressbar.NewOptions(pages,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Rendering axes"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Page(n int, path, category string) {
	if r.bar == nil {
		return
	}
	r.bar.Describe(describe(path, category))
	_ = r.bar.Set(n)
}

func (r *TerminalReporter) Finish(b Build) {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
	fmt.Fprintf(os.Stderr, "Rendered %s\n", b)
}

// CIReporter writes one line per page.
type CIReporter struct {
	Out   io.Writer
	pages int
}

func (r *CIReporter) Start(pages int) {
	r.pages = pages
	fmt.Fprintf(r.Out, "Rendering main page and %d category pages\n", pages-1)
}

func (r *CIReporter) Page(n int, path, category string) {
	fmt.Fprintf(r.Out, "[%d/%d] %s\n", n, r.pages, describe(path, category))
}

func (r *CIReporter) Finish(b Build) {
	fmt.Fprintf(r.Out, "Rendered %s\n", b)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)                {}
func (Nop) Page(int, string, string) {}
func (Nop) Finish(Build)             {}
