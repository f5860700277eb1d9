// Package content defines the page model: an intro listing the axes, a set of
// categorized sections, and the cards inside each section.
package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ziadkadry99/axes/internal/matcher"
)

// ErrNotFound is returned by lookups that target a missing section or category.
var ErrNotFound = errors.New("not found")

// Page is the full content of the axes page.
type Page struct {
	Title      string     `yaml:"title" json:"title"`
	Welcome    string     `yaml:"welcome" json:"welcome"`
	Intro      Intro      `yaml:"intro" json:"intro"`
	Categories []Category `yaml:"categories" json:"categories"`
	Sections   []Section  `yaml:"sections" json:"sections"`
}

// Intro is the lead-in block whose list entries point at sections.
type Intro struct {
	Heading string   `yaml:"heading" json:"heading"`
	Text    string   `yaml:"text" json:"text,omitempty"`
	Axes    []string `yaml:"axes" json:"axes"`
}

// Category is one option of the category filter.
type Category struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Section is one axis of the page.
type Section struct {
	ID       string `yaml:"id" json:"id"`
	Category string `yaml:"category" json:"category"`
	Heading  string `yaml:"heading" json:"heading"`
	Cards    []Card `yaml:"cards" json:"cards"`
}

// Card is an opaque content block. Body is markdown.
type Card struct {
	Title    string `yaml:"title" json:"title"`
	Body     string `yaml:"body" json:"body"`
	Category string `yaml:"category" json:"category,omitempty"`
	Link     string `yaml:"link" json:"link,omitempty"`
}

// Source provides the page content.
type Source interface {
	Page(ctx context.Context) (*Page, error)
}

// sectionHeading is the heading accessor used by the matcher.
func sectionHeading(s Section) string { return s.Heading }

// MatchAxis returns the first section whose heading is equivalent to label.
func (p *Page) MatchAxis(label string) (Section, bool) {
	return matcher.FindMatchingSection(label, p.Sections, sectionHeading)
}

// SectionByID returns the section with the given id.
func (p *Page) SectionByID(id string) (Section, error) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("section %q: %w", id, ErrNotFound)
}

// SectionByCategory returns the first section tagged with the given category.
func (p *Page) SectionByCategory(value string) (Section, error) {
	value = strings.TrimSpace(value)
	for _, s := range p.Sections {
		if s.Category == value {
			return s, nil
		}
	}
	return Section{}, fmt.Errorf("category %q: %w", value, ErrNotFound)
}

// CategoryLabel returns the display label of a category value, falling back
// to the value itself.
func (p *Page) CategoryLabel(value string) string {
	for _, c := range p.Categories {
		if c.Value == value && c.Label != "" {
			return c.Label
		}
	}
	return value
}

// DuplicateHeadings groups section ids whose headings share a canonical form.
// Only groups with more than one member are returned, in page order.
func (p *Page) DuplicateHeadings() [][]string {
	groups := make(map[string][]string)
	var order []string
	for _, s := range p.Sections {
		key := matcher.Normalize(s.Heading)
		if key == "" {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], s.ID)
	}

	var dups [][]string
	for _, key := range order {
		if len(groups[key]) > 1 {
			dups = append(dups, groups[key])
		}
	}
	return dups
}

// AxisTargets resolves every intro entry to a section id. Entries without a
// matching section map to "".
func (p *Page) AxisTargets() map[string]string {
	targets := make(map[string]string, len(p.Intro.Axes))
	for _, label := range p.Intro.Axes {
		if s, ok := p.MatchAxis(label); ok && matcher.Normalize(label) != "" {
			targets[label] = s.ID
		} else {
			targets[label] = ""
		}
	}
	return targets
}

// Validate checks structural invariants of the page.
func (p *Page) Validate() error {
	ids := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d: id is required", i)
		}
		if ids[s.ID] {
			return fmt.Errorf("section %d: duplicate id %q", i, s.ID)
		}
		ids[s.ID] = true
	}

	if len(p.Categories) == 0 {
		return nil
	}
	known := make(map[string]bool, len(p.Categories))
	slugs := make(map[string]string, len(p.Categories))
	for _, c := range p.Categories {
		if strings.TrimSpace(c.Value) == "" {
			return fmt.Errorf("category with label %q has an empty value", c.Label)
		}
		if known[c.Value] {
			return fmt.Errorf("duplicate category value %q", c.Value)
		}
		known[c.Value] = true
		slug := Slug(c.Value)
		if other, ok := slugs[slug]; ok {
			return fmt.Errorf("categories %q and %q share the slug %q", other, c.Value, slug)
		}
		slugs[slug] = c.Value
	}
	for _, s := range p.Sections {
		if s.Category != "" && !known[s.Category] {
			return fmt.Errorf("section %q: unknown category %q", s.ID, s.Category)
		}
	}
	return nil
}

// Slug turns a category value into a path segment. Letters, digits, '-' and
// '_' are kept and everything else becomes '-'.
func Slug(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "_"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r == '-' || r == '_':
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// assignIDs fills in missing section ids from their position.
func (p *Page) assignIDs() {
	for i := range p.Sections {
		if p.Sections[i].ID == "" {
			p.Sections[i].ID = fmt.Sprintf("axis-%d", i+1)
		}
	}
}
