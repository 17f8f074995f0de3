// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textnorm

import (
	"fmt"
	"os"
	"sort"

	"github.com/kljensen/snowball/english"
	"go.yaml.in/yaml/v3"
)

// Stop-word presets.
const (
	PresetNLTK     = "nltk"
	PresetSnowball = "snowball"
	PresetNone     = "none"
)

// Resources is the immutable language data the normalizer works with: a
// stop-word set and an optional stemmer. Build it once at startup and pass
// it to Normalize; nothing in this package reads language data from
// global state.
type Resources struct {
	name      string
	stopWords map[string]struct{}
	stem      func(string) string
}

// Option customizes Resources at construction time.
type Option func(*Resources)

// WithStemming enables Snowball English stemming of every kept token.
func WithStemming() Option {
	return func(r *Resources) {
		r.stem = func(w string) string { return english.Stem(w, false) }
	}
}

// WithStopWords adds extra words to the stop-word set.
func WithStopWords(words ...string) Option {
	return func(r *Resources) {
		for _, w := range words {
			r.stopWords[w] = struct{}{}
		}
	}
}

// New builds Resources from an explicit stop-word list.
func New(name string, stopWords []string, opts ...Option) *Resources {
	r := &Resources{
		name:      name,
		stopWords: make(map[string]struct{}, len(stopWords)),
	}
	for _, w := range stopWords {
		r.stopWords[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Preset returns the Resources for a named stop-word preset.
// An empty name selects nltk.
func Preset(name string, opts ...Option) (*Resources, error) {
	switch name {
	case PresetNLTK, "":
		return New(PresetNLTK, nltkEnglish, opts...), nil
	case PresetSnowball:
		return New(PresetSnowball, snowballEnglish, opts...), nil
	case PresetNone:
		return New(PresetNone, nil, opts...), nil
	default:
		return nil, fmt.Errorf("unknown stop-word preset %q: use nltk, snowball, or none", name)
	}
}

// English returns the default resources: the NLTK list, no stemming.
func English() *Resources {
	return New(PresetNLTK, nltkEnglish)
}

// Name returns the preset or file name the resources were built from.
func (r *Resources) Name() string { return r.name }

// IsStopWord reports whether w is in the stop-word set.
func (r *Resources) IsStopWord(w string) bool {
	_, ok := r.stopWords[w]
	return ok
}

// Stems reports whether stemming is enabled.
func (r *Resources) Stems() bool { return r.stem != nil }

// StopWords returns the stop-word set sorted lexicographically.
func (r *Resources) StopWords() []string {
	words := make([]string, 0, len(r.stopWords))
	for w := range r.stopWords {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// StopWordFile is the on-disk YAML form of a stop-word resource.
type StopWordFile struct {
	// Extends names the preset the file builds on (default none).
	Extends string `yaml:"extends,omitempty"`

	// StopWords lists additional stop words.
	StopWords []string `yaml:"stop_words"`
}

// LoadFile reads a StopWordFile and builds Resources from it.
func LoadFile(path string, opts ...Option) (*Resources, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading stop-word file: %w", err)
	}
	var f StopWordFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing stop-word file %s: %w", path, err)
	}

	base := f.Extends
	if base == "" {
		base = PresetNone
	}
	opts = append([]Option{WithStopWords(f.StopWords...)}, opts...)
	r, err := Preset(base, opts...)
	if err != nil {
		return nil, fmt.Errorf("stop-word file %s: %w", path, err)
	}
	r.name = path
	return r, nil
}

// MarshalYAML renders the resources as a StopWordFile.
func (r *Resources) MarshalYAML() (any, error) {
	return StopWordFile{StopWords: r.StopWords()}, nil
}
