// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/internal/textnorm"
)

var extractCmd = &cobra.Command{
	Use:   "extract [files or directories...]",
	Short: "Print the text extracted from resumes",
	Long: `Extract runs the configured backend over each file and prints the
text the ranker would see. With --tokens it prints the normalized tokens
instead. Use it to diagnose resumes that score unexpectedly low.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return bindFlags(cmd)
	},
	RunE: runExtract,
}

func init() {
	addExtractionFlags(extractCmd)
	addNormalizationFlags(extractCmd)
	extractCmd.Flags().Bool("tokens", false, "print normalized tokens instead of raw text")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more files or directories")
	}
	cfg := screenerConfig()
	ctx := cmd.Context()

	tokens, _ := cmd.Flags().GetBool("tokens")
	var res *textnorm.Resources
	if tokens {
		var err error
		if res, err = loadResources(cfg.Normalization); err != nil {
			return err
		}
	}

	ex, closeEx, err := buildExtractor(ctx, cfg.Extraction)
	if err != nil {
		return err
	}
	defer closeEx()

	paths, err := collectPaths(args)
	if err != nil {
		return err
	}
	candidates := readCandidates(paths)
	inputs := make([]extract.Input, len(candidates))
	for i, c := range candidates {
		inputs[i] = extract.Input{Name: c.ID, Data: c.Data, Err: c.ReadErr}
	}

	result := extract.Batch(ctx, ex, inputs, cfg.Extraction.Workers, cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	for i, o := range result.Outcomes {
		if o.Failed() {
			continue
		}
		fmt.Fprintf(out, "==> %s <==\n", inputs[i].Name)
		if tokens {
			fmt.Fprintln(out, textnorm.Normalize(o.Text, res))
		} else {
			fmt.Fprintln(out, o.Text)
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed extraction", result.Failed)
	}
	return nil
}
