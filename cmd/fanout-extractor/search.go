// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/fanout-extractor/internal/dataforseo"
	"github.com/pdiddy/fanout-extractor/internal/export"
	"github.com/pdiddy/fanout-extractor/internal/report"
	"github.com/pdiddy/fanout-extractor/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [keywords...]",
	Short: "Run one keyword batch against the LLM scraper",
	Long: `Search sends one request per keyword and prints the fan-out queries,
brand entities, web search results, and cited sources of each answer.

Keywords come from positional arguments, --keywords, and --file (use "-"
for stdin). Each source may separate keywords by newlines or commas.
Duplicates are kept. Keywords that fail are reported as warnings as long as
at least one keyword succeeds.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("keywords", "", "keywords separated by newlines or commas")
	searchCmd.Flags().String("file", "", "read keywords from a file (\"-\" for stdin)")
	searchCmd.Flags().String("out-dir", "", "write exports to this directory")
	searchCmd.Flags().StringSlice("format", []string{"txt", "csv"}, "export formats written to --out-dir: txt, csv, json, yaml")
	searchCmd.Flags().Bool("json", false, "print results as JSON instead of the text report")
	searchCmd.Flags().Bool("full", false, "print the full answer text instead of a preview")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	kwFlag, _ := cmd.Flags().GetString("keywords")
	file, _ := cmd.Flags().GetString("file")
	outDir, _ := cmd.Flags().GetString("out-dir")
	formatNames, _ := cmd.Flags().GetStringSlice("format")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	full, _ := cmd.Flags().GetBool("full")

	var formats []export.Format
	if outDir != "" {
		for _, name := range formatNames {
			f, err := export.ParseFormat(name)
			if err != nil {
				return err
			}
			formats = append(formats, f)
		}
	}

	raw, err := collectKeywords(args, kwFlag, file, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg := appConfig()
	client := dataforseo.NewClient(cfg.API, cfg.Search, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sub, err := dataforseo.Submit(ctx, client, dataforseo.Input{
		Credentials:  cfg.API.Credentials,
		Keywords:     raw,
		LocationCode: cfg.Search.LocationCode,
		LanguageCode: cfg.Search.LanguageCode,
	})
	if err != nil {
		var ve *dataforseo.ValidationError
		if errors.As(err, &ve) && ve.Field == "credentials" {
			return fmt.Errorf("%w (set --login/--password or .secrets/dataforseo-login and .secrets/dataforseo-password)", err)
		}
		return err
	}

	stderr := cmd.ErrOrStderr()
	for _, w := range sub.Warnings() {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}

	stdout := cmd.OutOrStdout()
	if jsonOutput {
		if err := export.WriteJSON(stdout, sub.Batch.Results); err != nil {
			return err
		}
	} else {
		report.FormatText(sub.Batch.Results, stdout, full)
	}

	if outDir != "" {
		paths, err := writeExports(outDir, formats, sub.Batch.Results)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(stderr, "Exported %s\n", p)
		}
	}
	return nil
}

// collectKeywords joins every keyword source into one newline-separated
// string for dataforseo.Submit to normalize.
func collectKeywords(args []string, kwFlag, file string, stdin io.Reader) (string, error) {
	parts := append([]string{}, args...)
	if kwFlag != "" {
		parts = append(parts, kwFlag)
	}

	switch file {
	case "":
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading keywords from stdin: %w", err)
		}
		parts = append(parts, string(data))
	default:
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading keyword file: %w", err)
		}
		parts = append(parts, string(data))
	}
	return strings.Join(parts, "\n"), nil
}

// writeExports writes results to dir once per format and returns the
// written paths.
func writeExports(dir string, formats []export.Format, results []types.TaskResult) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	var paths []string
	for _, f := range formats {
		path := filepath.Join(dir, f.FileName())
		if err := writeExportFile(path, f, results); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeExportFile(path string, f export.Format, results []types.TaskResult) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.Write(out, f, results); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}
