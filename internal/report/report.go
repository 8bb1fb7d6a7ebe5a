// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report derives the display-only fields of a task result (counts
// and fallbacks) and renders batch results for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/fanout-extractor/pkg/types"
)

const (
	noAnswerText     = "No text content returned."
	untitledSource   = "Untitled Source"
	unknownCategory  = "N/A"
	markdownPreviewN = 240
)

// Source is a citation with its display title resolved.
type Source struct {
	types.SourceItem
	DisplayTitle string
}

// Entity is a brand entity with its display category resolved.
type Entity struct {
	types.BrandEntity
	DisplayCategory string
}

// View is a task result prepared for display.
type View struct {
	Keyword       string
	Answer        string
	FanOutQueries []string
	BrandEntities []Entity
	SearchResults []types.SearchResultItem
	Sources       []Source
}

// NewView resolves the display fallbacks of r: the answer is the first
// item's markdown, brand entities fall back to the first item's list when
// the top-level list is empty, and sources without a title use their
// source name.
func NewView(r types.TaskResult) View {
	v := View{
		Keyword:       r.Keyword,
		Answer:        noAnswerText,
		FanOutQueries: r.FanOutQueries,
		SearchResults: r.SearchResults,
	}

	entities := r.BrandEntities
	if len(r.Items) > 0 {
		main := r.Items[0]
		v.Answer = main.Markdown
		if len(entities) == 0 && len(main.BrandEntities) > 0 {
			entities = main.BrandEntities
		}
	}

	for _, e := range entities {
		cat := e.Category
		if cat == "" {
			cat = unknownCategory
		}
		v.BrandEntities = append(v.BrandEntities, Entity{BrandEntity: e, DisplayCategory: cat})
	}

	for _, s := range r.Sources {
		title := s.Title
		if title == "" {
			title = s.SourceName
		}
		if title == "" {
			title = untitledSource
		}
		v.Sources = append(v.Sources, Source{SourceItem: s, DisplayTitle: title})
	}
	return v
}

// Views maps NewView over results.
func Views(results []types.TaskResult) []View {
	views := make([]View, len(results))
	for i, r := range results {
		views[i] = NewView(r)
	}
	return views
}

// FormatText writes a human-readable summary of each result to w. When
// full is false the answer is shortened to a preview.
func FormatText(results []types.TaskResult, w io.Writer, full bool) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for i, r := range results {
		v := NewView(r)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Keyword: %q\n", v.Keyword)
		fmt.Fprintln(w, strings.Repeat("=", 60))

		answer := v.Answer
		if !full {
			answer = preview(answer, markdownPreviewN)
		}
		fmt.Fprintf(w, "Answer:\n%s\n\n", answer)

		fmt.Fprintf(w, "Fan Out Queries (%d)\n", len(v.FanOutQueries))
		if len(v.FanOutQueries) == 0 {
			fmt.Fprintln(w, "  No Fan Out Queries returned.")
		}
		for j, q := range v.FanOutQueries {
			fmt.Fprintf(w, "  %-3d %s\n", j+1, q)
		}

		fmt.Fprintf(w, "\nBrand Entities (%d)\n", len(v.BrandEntities))
		if len(v.BrandEntities) == 0 {
			fmt.Fprintln(w, "  No Brand Entities detected.")
		}
		for _, e := range v.BrandEntities {
			fmt.Fprintf(w, "  %-40s  %s\n", e.Title, e.DisplayCategory)
		}

		fmt.Fprintf(w, "\nWeb Search Results (%d)\n", len(v.SearchResults))
		if len(v.SearchResults) == 0 {
			fmt.Fprintln(w, "  No Web Search Results returned.")
		}
		for _, s := range v.SearchResults {
			fmt.Fprintf(w, "  %s\n    %s\n", s.Title, s.URL)
		}

		fmt.Fprintf(w, "\nChatGPT Sources (%d)\n", len(v.Sources))
		if len(v.Sources) == 0 {
			fmt.Fprintln(w, "  No Cited Sources returned.")
		}
		for _, s := range v.Sources {
			fmt.Fprintf(w, "  %s\n    %s\n", s.DisplayTitle, s.Domain)
		}
	}

	fmt.Fprintf(w, "\n%d results\n", len(results))
}

// preview collapses whitespace and truncates s to n runes.
func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
