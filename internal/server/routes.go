package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/matcher"
	"github.com/ziadkadry99/axes/internal/shell"
	"github.com/ziadkadry99/axes/internal/site"
)

// RegisterPageRoutes mounts the HTML page and its assets. With live set,
// pages connect to the websocket shell.
func RegisterPageRoutes(r chi.Router, source content.Source, renderer *site.Renderer, live bool) {
	r.Get("/", handlePage(source, renderer, live))
	r.Get("/index.html", handlePage(source, renderer, live))
	r.Get("/category/{file}", handleCategoryPage(source, renderer, live))
	r.Get("/style.css", handleAsset("text/css; charset=utf-8", site.Stylesheet()))
	r.Get("/script.js", handleAsset("application/javascript; charset=utf-8", site.Script()))
}

// RegisterAPIRoutes mounts the JSON endpoints under /api.
func RegisterAPIRoutes(r chi.Router, source content.Source, renderer *site.Renderer) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", handleSections(source))
		r.Get("/match", handleMatch(source))
		r.Get("/categories/{value}", handleCategory(source, renderer))
	})
}

func handlePage(source content.Source, renderer *site.Renderer, live bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := loadPage(w, r, source)
		if !ok {
			return
		}
		view := site.View{
			Category: r.URL.Query().Get("category"),
			BasePath: "/",
			Live:     live,
		}
		renderHTML(w, renderer, page, view)
	}
}

func handleCategoryPage(source content.Source, renderer *site.Renderer, live bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := loadPage(w, r, source)
		if !ok {
			return
		}
		rel := "category/" + chi.URLParam(r, "file")
		for _, c := range page.Categories {
			if site.CategoryPath(c.Value) == rel {
				renderHTML(w, renderer, page, site.View{Category: c.Value, BasePath: "/", Live: live})
				return
			}
		}
		http.NotFound(w, r)
	}
}

func handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func handleSections(source content.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := loadPage(w, r, source)
		if !ok {
			return
		}
		sections := page.Sections
		if sections == nil {
			sections = []content.Section{}
		}
		writeJSON(w, http.StatusOK, sections)
	}
}

// MatchResponse is the body of GET /api/match.
type MatchResponse struct {
	Label     string           `json:"label"`
	Canonical string           `json:"canonical"`
	Matched   bool             `json:"matched"`
	Section   *content.Section `json:"section,omitempty"`
}

func handleMatch(source content.Source) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := loadPage(w, r, source)
		if !ok {
			return
		}
		label := r.URL.Query().Get("label")
		resp := MatchResponse{Label: label, Canonical: matcher.Normalize(label)}
		if resp.Canonical != "" {
			if s, found := page.MatchAxis(label); found {
				resp.Matched = true
				resp.Section = &s
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// CategoryResponse is the filtered view of one category.
type CategoryResponse struct {
	Category  string              `json:"category"`
	Label     string              `json:"label"`
	SectionID string              `json:"section_id"`
	Title     string              `json:"title"`
	Cards     []shell.CardCommand `json:"cards"`
}

func handleCategory(source content.Source, renderer *site.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := loadPage(w, r, source)
		if !ok {
			return
		}

		value := chi.URLParam(r, "value")
		section, err := page.SectionByCategory(value)
		if errors.Is(err, content.ErrNotFound) {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		opts := renderer.Options().Shell
		resp := CategoryResponse{
			Category:  section.Category,
			Label:     page.CategoryLabel(section.Category),
			SectionID: section.ID,
			Title:     opts.FilteredTitlePrefix + section.Heading,
			Cards:     make([]shell.CardCommand, 0, len(section.Cards)),
		}
		for i, card := range section.Cards {
			html, err := renderer.RenderCard(card)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			resp.Cards = append(resp.Cards, shell.CardCommand{
				Title:   card.Title,
				HTML:    html,
				Link:    card.Link,
				DelayMS: opts.RevealDelay(i).Milliseconds(),
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func loadPage(w http.ResponseWriter, r *http.Request, source content.Source) (*content.Page, bool) {
	page, err := source.Page(r.Context())
	if err != nil {
		log.Printf("server: loading content: %v", err)
		http.Error(w, "content unavailable", http.StatusServiceUnavailable)
		return nil, false
	}
	return page, true
}

func renderHTML(w http.ResponseWriter, renderer *site.Renderer, page *content.Page, view site.View) {
	var buf bytes.Buffer
	if err := renderer.RenderPage(&buf, page, view); err != nil {
		log.Printf("server: rendering page: %v", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
