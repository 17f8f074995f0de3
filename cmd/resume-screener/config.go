// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/internal/textnorm"
	"github.com/pdiddy/resume-screener/internal/tfidf"
	"github.com/pdiddy/resume-screener/pkg/types"
)

const defaultTimeout = 2 * time.Minute

// configKeys maps viper keys to the flag names that set them.
var configKeys = map[string]string{
	"backend":         "backend",
	"workers":         "workers",
	"cache_dir":       "cache-dir",
	"stop_words":      "stop-words",
	"stop_words_file": "stop-words-file",
	"stem":            "stem",
	"vocabulary":      "vocabulary",
	"min_term_length": "min-term-length",
	"timeout":         "timeout",
	"format":          "format",
	"output":          "output",
}

// bindFlags binds every flag cmd defines into viper so a config file or
// RESUME_SCREENER_* environment variable can supply it. It runs per
// command because several commands share keys.
func bindFlags(cmd *cobra.Command) error {
	for key, name := range configKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag %s: %w", name, err)
		}
	}
	return nil
}

// screenerConfig reads the effective configuration from viper.
func screenerConfig() types.ScreenerConfig {
	cfg := types.ScreenerConfig{
		Extraction: types.ExtractionConfig{
			Backend:  types.ExtractionBackend(viper.GetString("backend")),
			Workers:  viper.GetInt("workers"),
			CacheDir: viper.GetString("cache_dir"),
		},
		Normalization: types.NormalizationConfig{
			StopWords:     viper.GetString("stop_words"),
			StopWordsFile: viper.GetString("stop_words_file"),
			Stem:          viper.GetBool("stem"),
		},
		Ranking: types.RankingConfig{
			Vocabulary:    types.VocabularyMode(viper.GetString("vocabulary")),
			MinTermLength: viper.GetInt("min_term_length"),
		},
		Timeout: viper.GetDuration("timeout"),
		Format:  types.OutputFormat(viper.GetString("format")),
		Output:  viper.GetString("output"),
	}
	if cfg.Extraction.Backend == "" {
		cfg.Extraction.Backend = types.BackendAuto
	}
	if cfg.Extraction.Workers <= 0 {
		cfg.Extraction.Workers = extract.DefaultWorkers
	}
	if cfg.Ranking.MinTermLength == 0 {
		cfg.Ranking.MinTermLength = tfidf.DefaultMinTermLength
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.Format == "" {
		cfg.Format = types.FormatTable
	}
	return cfg
}

// loadResources builds the normalizer's language resources.
func loadResources(cfg types.NormalizationConfig) (*textnorm.Resources, error) {
	var opts []textnorm.Option
	if cfg.Stem {
		opts = append(opts, textnorm.WithStemming())
	}
	if cfg.StopWordsFile != "" {
		return textnorm.LoadFile(cfg.StopWordsFile, opts...)
	}
	return textnorm.Preset(cfg.StopWords, opts...)
}

// buildExtractor returns the configured extractor, wrapped in the SQLite
// cache when a cache directory is set. The returned func releases it.
func buildExtractor(ctx context.Context, cfg types.ExtractionConfig) (extract.Extractor, func(), error) {
	ex, err := extract.New(ctx, cfg.Backend)
	if err != nil {
		return nil, nil, err
	}
	if cfg.CacheDir == "" {
		return ex, func() {}, nil
	}

	cache, err := extract.NewCache(cfg.CacheDir, ex)
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("extraction cache enabled", "dir", cfg.CacheDir)
	return cache, func() { cache.Close() }, nil
}

func addExtractionFlags(cmd *cobra.Command) {
	cmd.Flags().String("backend", "auto", "extraction backend: auto, native, pdftotext, markitdown, or text")
	cmd.Flags().Int("workers", extract.DefaultWorkers, "concurrent extractions")
	cmd.Flags().String("cache-dir", "", "cache extracted text in a SQLite database under this directory")
}

func addNormalizationFlags(cmd *cobra.Command) {
	cmd.Flags().String("stop-words", "nltk", "stop-word preset: nltk, snowball, or none")
	cmd.Flags().String("stop-words-file", "", "YAML stop-word file (see the stopwords command)")
	cmd.Flags().Bool("stem", false, "apply Snowball English stemming to tokens")
}
