package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func samplePage() *Page {
	return &Page{
		Title: "منصة المحاور",
		Intro: Intro{Axes: []string{"الثقافة", "الإقتصاد", "الجغرافيا", "  "}},
		Categories: []Category{
			{Value: "culture", Label: "الثقافة"},
			{Value: "economy", Label: "الاقتصاد"},
		},
		Sections: []Section{
			{ID: "culture", Category: "culture", Heading: "الثقافة"},
			{ID: "economy", Category: "economy", Heading: "الاقتصاد", Cards: []Card{{Title: "التجارة"}}},
		},
	}
}

func TestMatchAxis(t *testing.T) {
	p := samplePage()

	s, ok := p.MatchAxis("الأقتصاد")
	if !ok || s.ID != "economy" {
		t.Errorf("MatchAxis = %+v (ok=%v), want economy", s, ok)
	}

	if _, ok := p.MatchAxis("الجغرافيا"); ok {
		t.Error("expected no match for unknown axis")
	}
}

func TestAxisTargets(t *testing.T) {
	targets := samplePage().AxisTargets()

	want := map[string]string{
		"الثقافة":   "culture",
		"الإقتصاد":  "economy",
		"الجغرافيا": "",
		"  ":        "",
	}
	for label, id := range want {
		if got := targets[label]; got != id {
			t.Errorf("target[%q] = %q, want %q", label, got, id)
		}
	}
}

func TestSectionByCategory(t *testing.T) {
	p := samplePage()

	s, err := p.SectionByCategory(" economy ")
	if err != nil {
		t.Fatalf("SectionByCategory: %v", err)
	}
	if s.ID != "economy" {
		t.Errorf("got %q, want economy", s.ID)
	}

	if _, err := p.SectionByCategory("sports"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSectionByID(t *testing.T) {
	p := samplePage()
	if _, err := p.SectionByID("culture"); err != nil {
		t.Errorf("SectionByID(culture): %v", err)
	}
	if _, err := p.SectionByID("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCategoryLabel(t *testing.T) {
	p := samplePage()
	if got := p.CategoryLabel("culture"); got != "الثقافة" {
		t.Errorf("CategoryLabel(culture) = %q", got)
	}
	if got := p.CategoryLabel("unknown"); got != "unknown" {
		t.Errorf("CategoryLabel(unknown) = %q, want fallback to value", got)
	}
}

func TestDuplicateHeadings(t *testing.T) {
	p := &Page{Sections: []Section{
		{ID: "a", Heading: "أدب"},
		{ID: "b", Heading: "علوم"},
		{ID: "c", Heading: "ا د ب"},
		{ID: "d"},
		{ID: "e"},
	}}

	dups := p.DuplicateHeadings()
	if len(dups) != 1 {
		t.Fatalf("got %d duplicate groups, want 1: %v", len(dups), dups)
	}
	if len(dups[0]) != 2 || dups[0][0] != "a" || dups[0][1] != "c" {
		t.Errorf("duplicate group = %v, want [a c]", dups[0])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Page)
		wantErr bool
	}{
		{"valid", func(p *Page) {}, false},
		{"missing id", func(p *Page) { p.Sections[0].ID = "" }, true},
		{"duplicate id", func(p *Page) { p.Sections[1].ID = "culture" }, true},
		{"unknown category", func(p *Page) { p.Sections[0].Category = "sports" }, true},
		{"empty category value", func(p *Page) { p.Categories[0].Value = " " }, true},
		{"no category list", func(p *Page) { p.Categories = nil; p.Sections[0].Category = "anything" }, false},
		{"duplicate category value", func(p *Page) {
			p.Categories = append(p.Categories, Category{Value: p.Categories[0].Value, Label: "again"})
		}, true},
		{"colliding category slugs", func(p *Page) {
			p.Categories = append(p.Categories, Category{Value: "a b"}, Category{Value: "a-b"})
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := samplePage()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"history", "history"},
		{" aqsa ", "aqsa"},
		{"the economy", "the-economy"},
		{"الأقصى", "الأقصى"},
		{"a/b", "a-b"},
		{"", "_"},
	}
	for _, tt := range tests {
		if got := Slug(tt.input); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestValidateNamesCollidingCategories(t *testing.T) {
	p := samplePage()
	p.Categories = append(p.Categories, Category{Value: "a b"}, Category{Value: "a-b"})
	err := p.Validate()
	if err == nil {
		t.Fatal("expected error for colliding slugs")
	}
	for _, want := range []string{`"a b"`, `"a-b"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name %s", err.Error(), want)
		}
	}
}

func TestLoad(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "01-main.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Title != "منصة المحاور" {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Intro.Axes) != 3 {
		t.Errorf("intro axes = %d, want 3", len(p.Intro.Axes))
	}
	if len(p.Sections) != 1 || p.Sections[0].ID != "history" {
		t.Errorf("sections = %+v", p.Sections)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("sections: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadGlobMerges(t *testing.T) {
	p, err := LoadGlob([]string{filepath.Join("testdata", "*.yml")})
	if err != nil {
		t.Fatalf("LoadGlob: %v", err)
	}

	if p.Title != "منصة المحاور" {
		t.Errorf("title should come from the first file, got %q", p.Title)
	}
	if len(p.Categories) != 2 {
		t.Errorf("categories = %d, want 2 (duplicate value skipped)", len(p.Categories))
	}
	if len(p.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(p.Sections))
	}
	if p.Sections[1].ID != "axis-2" {
		t.Errorf("generated id = %q, want axis-2", p.Sections[1].ID)
	}

	s, ok := p.MatchAxis("الأقصى")
	if !ok || s.ID != "axis-2" {
		t.Errorf("MatchAxis(الأقصى) = %+v (ok=%v), want axis-2", s, ok)
	}
}

func TestLoadGlobNoMatches(t *testing.T) {
	if _, err := LoadGlob([]string{filepath.Join(t.TempDir(), "*.yml")}); err == nil {
		t.Error("expected error when no files match")
	}
}

func TestFileSource(t *testing.T) {
	src := NewFileSource(filepath.Join("testdata", "*.yml"))
	p, err := src.Page(context.Background())
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if len(p.Sections) != 2 {
		t.Errorf("sections = %d, want 2", len(p.Sections))
	}
}

func TestStaticSource(t *testing.T) {
	if _, err := (StaticSource{}).Page(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound from empty StaticSource, got %v", err)
	}
	p := samplePage()
	got, err := StaticSource{P: p}.Page(context.Background())
	if err != nil || got != p {
		t.Errorf("StaticSource returned %p, %v", got, err)
	}
}
