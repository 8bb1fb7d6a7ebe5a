// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the fanout-extractor.
// The JSON tags follow the DataForSEO LLM scraper response schema so a
// decoded TaskResult can be exported without a second mapping step.
package types

// SearchParams holds the inputs of one batch submission.
type SearchParams struct {
	// Keywords lists one entry per request. Duplicates are kept.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// LocationCode is the DataForSEO location identifier (e.g. 2032 for Argentina).
	LocationCode int `json:"location_code" yaml:"location_code"`

	// LanguageCode is the language tag (e.g. "es-419").
	LanguageCode string `json:"language_code" yaml:"language_code"`
}

// Credentials holds the DataForSEO API login and password.
type Credentials struct {
	Login    string `json:"login" yaml:"login"`
	Password string `json:"-" yaml:"-"`
}

// IsComplete reports whether both login and password are set.
func (c Credentials) IsComplete() bool {
	return c.Login != "" && c.Password != ""
}

// BrandEntity is a brand or organization the LLM answer mentions.
type BrandEntity struct {
	Type     string  `json:"type" yaml:"type"`
	Title    string  `json:"title" yaml:"title"`
	Category string  `json:"category" yaml:"category"`
	Markdown string  `json:"markdown,omitempty" yaml:"markdown,omitempty"`
	URLs     *string `json:"urls,omitempty" yaml:"urls,omitempty"`
}

// SearchResultItem is one web search hit the LLM consulted.
type SearchResultItem struct {
	Type        string `json:"type" yaml:"type"`
	URL         string `json:"url" yaml:"url"`
	Domain      string `json:"domain" yaml:"domain"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Snippet     string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// SourceItem is a citation attached to the LLM answer.
type SourceItem struct {
	Type       string `json:"type" yaml:"type"`
	Title      string `json:"title" yaml:"title"`
	URL        string `json:"url" yaml:"url"`
	Domain     string `json:"domain" yaml:"domain"`
	SourceName string `json:"source_name,omitempty" yaml:"source_name,omitempty"`
}

// ScraperItem is one answer block returned by the scraper, with rank info
// and the answer text as markdown.
type ScraperItem struct {
	Type          string        `json:"type" yaml:"type"`
	RankGroup     int           `json:"rank_group" yaml:"rank_group"`
	RankAbsolute  int           `json:"rank_absolute" yaml:"rank_absolute"`
	Markdown      string        `json:"markdown" yaml:"markdown"`
	BrandEntities []BrandEntity `json:"brand_entities,omitempty" yaml:"brand_entities,omitempty"`
}

// TaskResult is the successful result for a single keyword.
type TaskResult struct {
	Keyword      string `json:"keyword" yaml:"keyword"`
	LocationCode int    `json:"location_code" yaml:"location_code"`
	LanguageCode string `json:"language_code" yaml:"language_code"`

	// FanOutQueries, BrandEntities, SearchResults and Sources are siblings
	// of Items in the API response and may be absent.
	FanOutQueries []string           `json:"fan_out_queries,omitempty" yaml:"fan_out_queries,omitempty"`
	BrandEntities []BrandEntity      `json:"brand_entities,omitempty" yaml:"brand_entities,omitempty"`
	SearchResults []SearchResultItem `json:"search_results,omitempty" yaml:"search_results,omitempty"`
	Sources       []SourceItem       `json:"sources,omitempty" yaml:"sources,omitempty"`

	Items []ScraperItem `json:"items" yaml:"items"`
}

// BatchResult partitions the outcomes of one batch into successes and
// keyword-prefixed failure messages. Both keep keyword input order.
type BatchResult struct {
	Results []TaskResult `json:"results" yaml:"results"`
	Errors  []string     `json:"errors" yaml:"errors"`
}
