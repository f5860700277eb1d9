package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/axes/internal/content"
	"github.com/ziadkadry99/axes/internal/matcher"
)

// handleMatchAxis resolves a label to its section. No match is a normal
// result, not a tool error.
func (s *Server) handleMatchAxis(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	label, err := request.RequireString("label")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: label"), nil
	}

	page, err := s.source.Page(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load content: %v", err)), nil
	}

	canonical := matcher.Normalize(label)
	section, ok := page.MatchAxis(label)
	if canonical == "" || !ok {
		return mcp.NewToolResultText(fmt.Sprintf("No section matches %q (canonical form %q).", label, canonical)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Label %q matches section %q.\n", label, section.ID)
	fmt.Fprintf(&sb, "Heading: %s\n", section.Heading)
	fmt.Fprintf(&sb, "Canonical: %s\n", canonical)
	if section.Category != "" {
		fmt.Fprintf(&sb, "Category: %s (%s)\n", section.Category, page.CategoryLabel(section.Category))
	}
	writeCardTitles(&sb, section.Cards)

	return mcp.NewToolResultText(sb.String()), nil
}

// handleListSections lists the sections and the intro axes.
func (s *Server) handleListSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	page, err := s.source.Page(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load content: %v", err)), nil
	}

	if len(page.Sections) == 0 {
		return mcp.NewToolResultText("The page has no sections. Add content files and run `axes import` if a database is configured."), nil
	}

	return mcp.NewToolResultText(formatSections(page)), nil
}

// handleFilterCategory returns the filtered view of one category.
func (s *Server) handleFilterCategory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	category, err := request.RequireString("category")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: category"), nil
	}

	page, err := s.source.Page(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load content: %v", err)), nil
	}

	if strings.TrimSpace(category) == "" {
		return mcp.NewToolResultText("An empty category shows the full page; no filter applied."), nil
	}

	section, err := page.SectionByCategory(category)
	if errors.Is(err, content.ErrNotFound) {
		return mcp.NewToolResultText(fmt.Sprintf("No section belongs to category %q; the filtered view is empty.", strings.TrimSpace(category))), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%s\n", s.opts.FilteredTitlePrefix, section.Heading)
	fmt.Fprintf(&sb, "Section: %s\n", section.ID)
	for i, card := range section.Cards {
		fmt.Fprintf(&sb, "\n--- Card %d (reveal after %s) ---\n", i+1, s.opts.RevealDelay(i))
		fmt.Fprintf(&sb, "%s\n", card.Title)
		if card.Body != "" {
			sb.WriteString(strings.TrimSpace(card.Body))
			sb.WriteString("\n")
		}
		if card.Link != "" {
			fmt.Fprintf(&sb, "Link: %s\n", card.Link)
		}
	}

	return mcp.NewToolResultText(sb.String()), nil
}

// formatSections renders the section list in a form suited to agents.
func formatSections(page *content.Page) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d section(s):\n", len(page.Sections))

	for _, sec := range page.Sections {
		fmt.Fprintf(&sb, "\n- %s\n", sec.ID)
		fmt.Fprintf(&sb, "  Heading: %s\n", sec.Heading)
		fmt.Fprintf(&sb, "  Canonical: %s\n", matcher.Normalize(sec.Heading))
		if sec.Category != "" {
			fmt.Fprintf(&sb, "  Category: %s\n", sec.Category)
		}
		fmt.Fprintf(&sb, "  Cards: %d\n", len(sec.Cards))
	}

	if len(page.Intro.Axes) > 0 {
		targets := page.AxisTargets()
		sb.WriteString("\nIntro axes:\n")
		for _, label := range page.Intro.Axes {
			target := targets[label]
			if target == "" {
				target = "(no match)"
			}
			fmt.Fprintf(&sb, "- %s -> %s\n", label, target)
		}
	}

	return sb.String()
}

func writeCardTitles(sb *strings.Builder, cards []content.Card) {
	if len(cards) == 0 {
		return
	}
	sb.WriteString("Cards:\n")
	for _, c := range cards {
		fmt.Fprintf(sb, "- %s\n", c.Title)
	}
}
