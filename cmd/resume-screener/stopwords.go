// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-screener/internal/textnorm"
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "Write a stop-word preset as an editable YAML file",
	Long: `Stopwords prints the stop-word list of a preset (nltk, snowball, or
none) as YAML. Save it, edit it, and pass it back with
rank --stop-words-file to screen with a custom list. All language data is
built in; nothing is downloaded.`,
	RunE: runStopwords,
}

func init() {
	stopwordsCmd.Flags().String("preset", "nltk", "stop-word preset: nltk, snowball, or none")
	stopwordsCmd.Flags().String("output", "", "write to this file instead of stdout")

	rootCmd.AddCommand(stopwordsCmd)
}

func runStopwords(cmd *cobra.Command, args []string) error {
	preset, _ := cmd.Flags().GetString("preset")
	output, _ := cmd.Flags().GetString("output")

	res, err := textnorm.Preset(preset)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling stop words: %w", err)
	}

	if output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %d stop words to %s\n", len(res.StopWords()), output)
	return nil
}
