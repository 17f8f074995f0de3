// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ExtractionBackend identifies the tool used to pull text out of resumes.
type ExtractionBackend string

const (
	// BackendAuto picks by file extension: native PDF for .pdf, text otherwise.
	BackendAuto       ExtractionBackend = "auto"
	BackendNative     ExtractionBackend = "native"
	BackendPdftotext  ExtractionBackend = "pdftotext"
	BackendMarkitdown ExtractionBackend = "markitdown"
	BackendText       ExtractionBackend = "text"
)

// ExtractionConfig holds settings for the text-extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction tool.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// Workers bounds how many candidates are extracted concurrently (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// CacheDir enables the SQLite extraction cache when non-empty.
	CacheDir string `json:"cache_dir,omitempty" yaml:"cache_dir,omitempty"`
}

// NormalizationConfig selects the language resources used by the normalizer.
type NormalizationConfig struct {
	// StopWords names the stop-word preset: nltk, snowball, or none.
	StopWords string `json:"stop_words" yaml:"stop_words"`

	// StopWordsFile is an optional YAML file extending the preset.
	StopWordsFile string `json:"stop_words_file,omitempty" yaml:"stop_words_file,omitempty"`

	// Stem enables Snowball English stemming of tokens.
	Stem bool `json:"stem" yaml:"stem"`
}

// VocabularyMode selects how TF-IDF corpora are formed.
type VocabularyMode string

const (
	// VocabularyPairwise builds a fresh two-document corpus for every
	// (reference, candidate) pair.
	VocabularyPairwise VocabularyMode = "pairwise"

	// VocabularyShared builds one corpus from the reference and all candidates.
	VocabularyShared VocabularyMode = "shared"
)

// RankingConfig holds settings for weighting and ranking.
type RankingConfig struct {
	// Vocabulary selects pairwise (default) or shared corpora.
	Vocabulary VocabularyMode `json:"vocabulary" yaml:"vocabulary"`

	// MinTermLength drops shorter terms from the vocabulary (default 2).
	MinTermLength int `json:"min_term_length" yaml:"min_term_length"`
}

// OutputFormat selects how a RankedResult is rendered.
type OutputFormat string

const (
	FormatTable OutputFormat = "table"
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatCSV   OutputFormat = "csv"
)

// ScreenerConfig groups all stage configurations for one analysis run.
type ScreenerConfig struct {
	Extraction    ExtractionConfig    `json:"extraction" yaml:"extraction"`
	Normalization NormalizationConfig `json:"normalization" yaml:"normalization"`
	Ranking       RankingConfig       `json:"ranking" yaml:"ranking"`

	// Timeout bounds one whole analysis run (default 2m).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Format selects the report format printed to stdout.
	Format OutputFormat `json:"format" yaml:"format"`

	// Output is an optional export path; its extension picks the format.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
}
