package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Load reads a single YAML content file.
func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("parsing content %s: %w", path, err)
	}
	page.assignIDs()
	return &page, nil
}

// LoadGlob reads every file matched by the given doublestar patterns and
// merges them into one page. Files are read in lexical order; sections are
// appended while title, welcome and intro come from the first file that sets
// them.
func LoadGlob(patterns []string) (*Page, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad content pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no content files match %v", patterns)
	}
	sort.Strings(paths)

	merged := &Page{}
	for _, path := range paths {
		var part Page
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &part); err != nil {
			return nil, fmt.Errorf("parsing content %s: %w", filepath.ToSlash(path), err)
		}
		merge(merged, &part)
	}
	merged.assignIDs()
	return merged, nil
}

func merge(dst, src *Page) {
	if dst.Title == "" {
		dst.Title = src.Title
	}
	if dst.Welcome == "" {
		dst.Welcome = src.Welcome
	}
	if dst.Intro.Heading == "" && len(dst.Intro.Axes) == 0 {
		dst.Intro = src.Intro
	}
	for _, c := range src.Categories {
		if !hasCategory(dst.Categories, c.Value) {
			dst.Categories = append(dst.Categories, c)
		}
	}
	dst.Sections = append(dst.Sections, src.Sections...)
}

func hasCategory(cats []Category, value string) bool {
	for _, c := range cats {
		if c.Value == value {
			return true
		}
	}
	return false
}

// FileSource serves a page read from YAML files on every call, so edits show
// up without a restart.
type FileSource struct {
	Patterns []string
}

// NewFileSource creates a FileSource over the given glob patterns.
func NewFileSource(patterns ...string) *FileSource {
	return &FileSource{Patterns: patterns}
}

// Page loads and validates the content.
func (f *FileSource) Page(_ context.Context) (*Page, error) {
	page, err := LoadGlob(f.Patterns)
	if err != nil {
		return nil, err
	}
	if err := page.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return page, nil
}

// StaticSource serves a fixed page. Useful for tests and for callers that
// already hold a loaded page.
type StaticSource struct {
	P *Page
}

// Page returns the wrapped page.
func (s StaticSource) Page(_ context.Context) (*Page, error) {
	if s.P == nil {
		return nil, fmt.Errorf("page: %w", ErrNotFound)
	}
	return s.P, nil
}
