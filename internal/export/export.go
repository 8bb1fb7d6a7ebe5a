// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes batch results to flat files: a plain-text fan-out
// report, a two-column CSV, and full JSON or YAML dumps.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/fanout-extractor/pkg/types"
)

// Format selects an export encoding.
type Format string

const (
	FormatTXT  Format = "txt"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists every supported format in the order they are offered.
var Formats = []Format{FormatTXT, FormatCSV, FormatJSON, FormatYAML}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTXT, FormatCSV, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q: use txt, csv, json, or yaml", s)
	}
}

// FileName returns the download file name for f (e.g. "fan_out_results.csv").
func (f Format) FileName() string {
	return "fan_out_results." + string(f)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain"
	}
}

// Write encodes results to w in format f.
func Write(w io.Writer, f Format, results []types.TaskResult) error {
	switch f {
	case FormatTXT:
		return WriteTXT(w, results)
	case FormatCSV:
		return WriteCSV(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatYAML:
		return WriteYAML(w, results)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}

// WriteTXT writes the fan-out report: a title block, then for each keyword
// its fan-out queries as a bulleted list.
func WriteTXT(w io.Writer, results []types.TaskResult) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("QUERY FAN-OUT EXTRACTOR RESULTS\n=================================\n\n")

	for _, r := range results {
		fmt.Fprintf(bw, "KEYWORD: %s\n", r.Keyword)
		bw.WriteString("---------------------------------\n")
		bw.WriteString("FAN OUT QUERIES:\n")
		if len(r.FanOutQueries) > 0 {
			for _, q := range r.FanOutQueries {
				fmt.Fprintf(bw, "- %s\n", q)
			}
		} else {
			bw.WriteString("(No fan out queries found)\n")
		}
		bw.WriteString("\n\n")
	}
	return bw.Flush()
}

// WriteCSV writes one "Keyword,Fan Out Query" row per (keyword, query)
// pair. A keyword without queries still gets one row with an empty query.
// Every field is quoted and embedded quotes are doubled; encoding/csv only
// quotes fields that need it, so rows are written directly.
func WriteCSV(w io.Writer, results []types.TaskResult) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("Keyword,Fan Out Query\n")

	for _, r := range results {
		kw := quoteCSV(r.Keyword)
		if len(r.FanOutQueries) == 0 {
			fmt.Fprintf(bw, "%s,%s\n", kw, quoteCSV(""))
			continue
		}
		for _, q := range r.FanOutQueries {
			fmt.Fprintf(bw, "%s,%s\n", kw, quoteCSV(q))
		}
	}
	return bw.Flush()
}

func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteJSON writes results as indented JSON.
func WriteJSON(w io.Writer, results []types.TaskResult) error {
	if results == nil {
		results = []types.TaskResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// WriteYAML writes results as a YAML sequence.
func WriteYAML(w io.Writer, results []types.TaskResult) error {
	if results == nil {
		results = []types.TaskResult{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
