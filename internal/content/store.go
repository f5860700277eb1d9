package content

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/ziadkadry99/axes/internal/db"
)

// SQLStore keeps the page content in SQLite.
type SQLStore struct {
	db *db.DB
}

// NewSQLStore creates a SQLStore backed by the given database.
func NewSQLStore(database *db.DB) *SQLStore {
	return &SQLStore{db: database}
}

// Import replaces the stored content with page in a single transaction.
func (s *SQLStore) Import(ctx context.Context, page *Page) error {
	if err := page.Validate(); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"cards", "sections", "categories", "intro_axes", "page_meta"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	meta := map[string]string{
		"title":         page.Title,
		"welcome":       page.Welcome,
		"intro_heading": page.Intro.Heading,
		"intro_text":    page.Intro.Text,
	}
	for k, v := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO page_meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("inserting page meta %s: %w", k, err)
		}
	}

	for i, label := range page.Intro.Axes {
		if _, err := tx.ExecContext(ctx, `INSERT INTO intro_axes (position, label) VALUES (?, ?)`, i, label); err != nil {
			return fmt.Errorf("inserting intro axis: %w", err)
		}
	}

	for i, c := range page.Categories {
		if _, err := tx.ExecContext(ctx, `INSERT INTO categories (position, value, label) VALUES (?, ?, ?)`, i, c.Value, c.Label); err != nil {
			return fmt.Errorf("inserting category %q: %w", c.Value, err)
		}
	}

	for i, sec := range page.Sections {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sections (id, position, category, heading) VALUES (?, ?, ?, ?)`,
			sec.ID, i, sec.Category, sec.Heading,
		); err != nil {
			return fmt.Errorf("inserting section %q: %w", sec.ID, err)
		}
		for j, card := range sec.Cards {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO cards (id, section_id, position, title, body, category, link)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				uuid.New().String(), sec.ID, j, card.Title, card.Body, card.Category, card.Link,
			); err != nil {
				return fmt.Errorf("inserting card %d of %q: %w", j, sec.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing import: %w", err)
	}
	return nil
}

// Page reads the stored content back into a Page.
func (s *SQLStore) Page(ctx context.Context) (*Page, error) {
	page := &Page{}

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM page_meta`)
	if err != nil {
		return nil, fmt.Errorf("querying page meta: %w", err)
	}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning page meta: %w", err)
		}
		switch k {
		case "title":
			page.Title = v
		case "welcome":
			page.Welcome = v
		case "intro_heading":
			page.Intro.Heading = v
		case "intro_text":
			page.Intro.Text = v
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if page.Intro.Axes, err = s.intro(ctx); err != nil {
		return nil, err
	}
	if page.Categories, err = s.categories(ctx); err != nil {
		return nil, err
	}
	if page.Sections, err = s.sections(ctx); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *SQLStore) intro(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT label FROM intro_axes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying intro axes: %w", err)
	}
	defer rows.Close()

	var axes []string
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scanning intro axis: %w", err)
		}
		axes = append(axes, label)
	}
	return axes, rows.Err()
}

func (s *SQLStore) categories(ctx context.Context) ([]Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT value, label FROM categories ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Value, &c.Label); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *SQLStore) sections(ctx context.Context) ([]Section, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, category, heading FROM sections ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying sections: %w", err)
	}
	var sections []Section
	for rows.Next() {
		var sec Section
		if err := rows.Scan(&sec.ID, &sec.Category, &sec.Heading); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, sec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Cards are read after the section cursor is closed; the in-memory
	// database runs on a single connection.
	for i := range sections {
		cards, err := s.Cards(ctx, sections[i].ID)
		if err != nil {
			return nil, err
		}
		sections[i].Cards = cards
	}
	return sections, nil
}

// Cards returns the cards of one section in display order.
func (s *SQLStore) Cards(ctx context.Context, sectionID string) ([]Card, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, body, category, link FROM cards
		WHERE section_id = ? ORDER BY position`, sectionID)
	if err != nil {
		return nil, fmt.Errorf("querying cards of %q: %w", sectionID, err)
	}
	defer rows.Close()

	var cards []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.Title, &c.Body, &c.Category, &c.Link); err != nil {
			return nil, fmt.Errorf("scanning card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// SectionCount returns the number of stored sections.
func (s *SQLStore) SectionCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sections`).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}
