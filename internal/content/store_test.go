package content

import (
	"context"
	"strings"
	"testing"

	"github.com/ziadkadry99/axes/internal/db"
)

func openStore(t *testing.T) *SQLStore {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewSQLStore(database)
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	page := samplePage()
	page.Welcome = "مرحبًا"
	page.Intro.Heading = "المحاور"
	page.Sections[1].Cards = []Card{
		{Title: "التجارة", Body: "**الأسواق**", Link: "https://example.com"},
		{Title: "الصناعة", Body: "نص"},
	}

	if err := store.Import(ctx, page); err != nil {
		t.Fatalf("Import: %v", err)
	}

	got, err := store.Page(ctx)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}

	if got.Title != page.Title || got.Welcome != page.Welcome || got.Intro.Heading != page.Intro.Heading {
		t.Errorf("meta mismatch: %+v", got)
	}
	if len(got.Intro.Axes) != len(page.Intro.Axes) {
		t.Errorf("intro axes = %d, want %d", len(got.Intro.Axes), len(page.Intro.Axes))
	}
	if len(got.Categories) != 2 || got.Categories[1].Value != "economy" {
		t.Errorf("categories = %+v", got.Categories)
	}
	if len(got.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(got.Sections))
	}
	if got.Sections[0].ID != "culture" || got.Sections[1].ID != "economy" {
		t.Errorf("section order = %s, %s", got.Sections[0].ID, got.Sections[1].ID)
	}
	cards := got.Sections[1].Cards
	if len(cards) != 2 || cards[0].Title != "التجارة" || cards[1].Title != "الصناعة" {
		t.Errorf("cards = %+v", cards)
	}
	if cards[0].Link != "https://example.com" {
		t.Errorf("card link = %q", cards[0].Link)
	}
}

func TestSQLStoreImportReplaces(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	if err := store.Import(ctx, samplePage()); err != nil {
		t.Fatalf("first Import: %v", err)
	}

	smaller := &Page{Sections: []Section{{ID: "only", Heading: "وحيد"}}}
	if err := store.Import(ctx, smaller); err != nil {
		t.Fatalf("second Import: %v", err)
	}

	n, err := store.SectionCount(ctx)
	if err != nil {
		t.Fatalf("SectionCount: %v", err)
	}
	if n != 1 {
		t.Errorf("SectionCount = %d, want 1", n)
	}

	got, err := store.Page(ctx)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if got.Title != "" || len(got.Categories) != 0 {
		t.Errorf("old content survived: %+v", got)
	}
}

func TestSQLStoreRejectsInvalid(t *testing.T) {
	store := openStore(t)
	bad := &Page{Sections: []Section{{ID: "a"}, {ID: "a"}}}
	if err := store.Import(context.Background(), bad); err == nil {
		t.Error("expected validation error")
	}
}

func TestSQLStoreMatchesAfterImport(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()
	if err := store.Import(ctx, samplePage()); err != nil {
		t.Fatalf("Import: %v", err)
	}
	p, err := store.Page(ctx)
	if err != nil {
		t.Fatalf("Page: %v", err)
	}
	if s, ok := p.MatchAxis("ال ثقافة"); !ok || s.ID != "culture" {
		t.Errorf("MatchAxis = %+v (ok=%v), want culture", s, ok)
	}
}

func TestSQLStoreImportDuplicateCategory(t *testing.T) {
	store := openStore(t)

	page := samplePage()
	page.Categories = append(page.Categories, Category{Value: "culture", Label: "مكرر"})
	err := store.Import(context.Background(), page)
	if err == nil {
		t.Fatal("Import should reject duplicate category values")
	}
	if !strings.Contains(err.Error(), `duplicate category value "culture"`) {
		t.Errorf("error = %q, want the validation error", err.Error())
	}
}
