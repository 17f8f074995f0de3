// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/internal/rank"
	"github.com/pdiddy/resume-screener/pkg/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank [resumes or directories...]",
	Short: "Rank resumes against a job description",
	Long: `Rank extracts the text of each resume, scores it against the job
description with TF-IDF cosine similarity, and prints the candidates best
first. Directories expand to the .pdf, .docx, .txt, and .md files they
contain.

Resumes that cannot be read are still listed, with score 0 and the reason.
Each resume is weighted in its own two-document corpus with the job
description unless --vocabulary shared is given.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd)
	},
	RunE: runRank,
}

func init() {
	rankCmd.Flags().String("job", "", "job description file (.txt, .md, .pdf, or .docx)")
	rankCmd.Flags().String("job-text", "", "job description text")
	addExtractionFlags(rankCmd)
	addNormalizationFlags(rankCmd)
	rankCmd.Flags().String("vocabulary", "pairwise", "TF-IDF corpus: pairwise (per resume) or shared (all resumes)")
	rankCmd.Flags().Int("min-term-length", 2, "drop shorter terms from the vocabulary (-1 keeps all)")
	rankCmd.Flags().Duration("timeout", 0, "limit for the whole run (default 2m)")
	rankCmd.Flags().String("format", "table", "output format: table, json, yaml, or csv")
	rankCmd.Flags().String("output", "", "also export results to this file (.json, .yaml, .csv, or .txt)")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg := screenerConfig()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
	defer cancel()

	res, err := loadResources(cfg.Normalization)
	if err != nil {
		return err
	}
	ranker, err := rank.New(res, cfg.Ranking)
	if err != nil {
		return err
	}
	ex, closeEx, err := buildExtractor(ctx, cfg.Extraction)
	if err != nil {
		return err
	}
	defer closeEx()

	reference, err := jobDescription(ctx, cmd, ex)
	if err != nil {
		return err
	}

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "warning: no resumes supplied")
	}

	screener := &rank.Screener{
		Ranker:    ranker,
		Extractor: ex,
		Workers:   cfg.Extraction.Workers,
		Progress:  os.Stderr,
	}
	result, err := screener.ScreenDocument(ctx, reference, readCandidates(paths))
	if err != nil {
		if errors.Is(err, rank.ErrInvalidReference) {
			return fmt.Errorf("job description is empty: provide --job or --job-text")
		}
		return err
	}

	fmt.Fprintln(os.Stderr)
	if err := rank.Write(result, cfg.Format, cmd.OutOrStdout()); err != nil {
		return err
	}
	if cfg.Output != "" {
		if err := rank.Export(result, cfg.Output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported to %s\n", cfg.Output)
	}

	if result.AllUnreadable() {
		return fmt.Errorf("could not process any of the %d supplied resumes", result.Len())
	}
	return nil
}

// jobDescription loads the reference document from --job or --job-text.
func jobDescription(ctx context.Context, cmd *cobra.Command, ex extract.Extractor) (types.Document, error) {
	path, _ := cmd.Flags().GetString("job")
	text, _ := cmd.Flags().GetString("job-text")

	switch {
	case path != "" && text != "":
		return types.Document{}, fmt.Errorf("use either --job or --job-text, not both")
	case text != "":
		return types.Document{ID: "job description", Text: text}, nil
	case path == "":
		return types.Document{}, fmt.Errorf("job description required: provide --job or --job-text")
	}

	return loadJobFile(ctx, ex, path)
}

// loadJobFile reads a job description file. PDF and Word files go through
// ex like the resumes; any other file is read as plain text.
func loadJobFile(ctx context.Context, ex extract.Extractor, path string) (types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, fmt.Errorf("reading job description: %w", err)
	}
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" && ext != ".docx" {
		ex = extract.PlainText{}
	}

	o := extract.Run(ctx, ex, path, data)
	if o.Failed() {
		return types.Document{}, fmt.Errorf("extracting job description %s: %w", path, o.Err)
	}
	return types.Document{ID: path, Text: o.Text}, nil
}
