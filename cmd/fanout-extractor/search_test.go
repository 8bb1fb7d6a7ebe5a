// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/fanout-extractor/internal/export"
	"github.com/pdiddy/fanout-extractor/internal/keywords"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

func TestCollectKeywords(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "kw.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file\nsecond, third\n"), 0o644))

	tests := []struct {
		name   string
		args   []string
		flag   string
		file   string
		stdin  string
		want   []string
		errMsg string
	}{
		{name: "args only", args: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "flag with commas", flag: "a, b\nc", want: []string{"a", "b", "c"}},
		{name: "file", file: file, want: []string{"from file", "second", "third"}},
		{name: "stdin", file: "-", stdin: "x,y", want: []string{"x", "y"}},
		{name: "all sources keep order", args: []string{"arg"}, flag: "flag", file: "-", stdin: "in", want: []string{"arg", "flag", "in"}},
		{name: "missing file", file: filepath.Join(dir, "nope.txt"), errMsg: "reading keyword file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := collectKeywords(tt.args, tt.flag, tt.file, strings.NewReader(tt.stdin))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, keywords.Parse(raw))
		})
	}
}

func TestWriteExports(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	results := []types.TaskResult{{Keyword: "seo", FanOutQueries: []string{"q1"}}}

	paths, err := writeExports(dir, []export.Format{export.FormatTXT, export.FormatCSV}, results)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "fan_out_results.txt"),
		filepath.Join(dir, "fan_out_results.csv"),
	}, paths)

	csv, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "Keyword,Fan Out Query\n\"seo\",\"q1\"\n", string(csv))

	txt, err := os.ReadFile(paths[0])
	require.NoError(t, err)
	assert.Contains(t, string(txt), "KEYWORD: seo")
}
