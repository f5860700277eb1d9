package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/shell"
	"github.com/ziadkadry99/axes/internal/starfield"
)

// Labels are the fixed UI strings of the page.
type Labels struct {
	Back           string
	ScrollTop      string
	CategoryPrompt string
}

// DefaultLabels returns the Arabic labels of the original page.
func DefaultLabels() Labels {
	return Labels{
		Back:           "الرجوع إلى الرئيسية",
		ScrollTop:      "الانتقال للأعلى",
		CategoryPrompt: "كل المحاور",
	}
}

// Options configures a Renderer.
type Options struct {
	Shell  shell.Options
	Stars  starfield.Options
	Labels Labels
	// Rand seeds the starfield. Nil uses the global source.
	Rand *rand.Rand
}

// Renderer turns page content into HTML.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer parses the page template and sets up markdown rendering.
func NewRenderer(opts Options) (*Renderer, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &Renderer{opts: opts, md: md, tmpl: tmpl}, nil
}

// Options returns the renderer configuration.
func (r *Renderer) Options() Options { return r.opts }

// RenderCard converts a card's markdown body to HTML.
func (r *Renderer) RenderCard(card content.Card) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(card.Body), &buf); err != nil {
		return "", fmt.Errorf("converting card %q: %w", card.Title, err)
	}
	return buf.String(), nil
}

// View selects what a rendered page shows.
type View struct {
	// Category, when set, renders the filtered view of that category.
	Category string
	// BasePath prefixes asset and page links ("", "../" or "/").
	BasePath string
	// Live makes the page connect to the websocket shell.
	Live bool
}

type pageData struct {
	Title          string
	Welcome        string
	IntroHeading   string
	IntroText      string
	IntroItems     []introItem
	Categories     []categoryOption
	Sections       []sectionView
	Filtered       *filteredView
	Stars          []template.CSS
	Labels         Labels
	BasePath       string
	Live           bool
	OverlayDelayMS int64
	OverlayFadeMS  int64
	BackFadeMS     int64
	ZoomMS         int64
	ScrollTopAt    float64
	StickyAt       float64
}

type introItem struct {
	Label  string
	Target string
}

type categoryOption struct {
	Value    string
	Label    string
	Href     string
	Selected bool
}

type sectionView struct {
	ID       string
	Category string
	Heading  string
	Cards    []cardView
}

type cardView struct {
	Title   string
	HTML    template.HTML
	Link    string
	DelayMS int64
}

type filteredView struct {
	Title string
	Cards []cardView
}

// RenderPage writes the full page for the given view.
func (r *Renderer) RenderPage(w io.Writer, page *content.Page, view View) error {
	data, err := r.pageData(page, view)
	if err != nil {
		return err
	}
	return r.tmpl.Execute(w, data)
}

func (r *Renderer) pageData(page *content.Page, view View) (*pageData, error) {
	so := r.opts.Shell
	data := &pageData{
		Title:          page.Title,
		Welcome:        page.Welcome,
		IntroHeading:   page.Intro.Heading,
		IntroText:      page.Intro.Text,
		Labels:         r.opts.Labels,
		BasePath:       view.BasePath,
		Live:           view.Live,
		OverlayDelayMS: so.OverlayDelay.Milliseconds(),
		OverlayFadeMS:  so.OverlayFade.Milliseconds(),
		BackFadeMS:     so.BackFade.Milliseconds(),
		ZoomMS:         so.Zoom.Milliseconds(),
		ScrollTopAt:    so.ScrollTopThreshold,
		StickyAt:       so.StickyThreshold,
	}

	targets := page.AxisTargets()
	for _, label := range page.Intro.Axes {
		data.IntroItems = append(data.IntroItems, introItem{Label: label, Target: targets[label]})
	}

	selected := strings.TrimSpace(view.Category)
	for _, c := range page.Categories {
		data.Categories = append(data.Categories, categoryOption{
			Value:    c.Value,
			Label:    c.Label,
			Href:     CategoryPath(c.Value),
			Selected: c.Value == selected,
		})
	}

	for _, s := range page.Sections {
		sv := sectionView{ID: s.ID, Category: s.Category, Heading: s.Heading}
		for _, card := range s.Cards {
			cv, err := r.cardView(card, 0)
			if err != nil {
				return nil, err
			}
			sv.Cards = append(sv.Cards, cv)
		}
		data.Sections = append(data.Sections, sv)
	}

	if selected != "" {
		fv := &filteredView{}
		if s, err := page.SectionByCategory(selected); err == nil {
			fv.Title = so.FilteredTitlePrefix + s.Heading
			for i, card := range s.Cards {
				cv, err := r.cardView(card, so.RevealDelay(i).Milliseconds())
				if err != nil {
					return nil, err
				}
				fv.Cards = append(fv.Cards, cv)
			}
		}
		data.Filtered = fv
	}

	for _, star := range starfield.Generate(r.opts.Stars, r.opts.Rand) {
		data.Stars = append(data.Stars, template.CSS(star.Style()))
	}

	return data, nil
}

func (r *Renderer) cardView(card content.Card, delayMS int64) (cardView, error) {
	html, err := r.RenderCard(card)
	if err != nil {
		return cardView{}, err
	}
	return cardView{
		Title:   card.Title,
		HTML:    template.HTML(html),
		Link:    card.Link,
		DelayMS: delayMS,
	}, nil
}

// CategoryPath is the page of a category's filtered view, relative to the
// site root.
func CategoryPath(value string) string {
	return "category/" + content.Slug(value) + ".html"
}
