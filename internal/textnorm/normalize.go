// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textnorm turns raw document text into a stream of lowercase,
// alphabetic, stop-word-free tokens.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds text to NFKC, lowercases it, deletes every character that
// is not an ASCII letter or whitespace, splits on whitespace, and drops stop
// words. Token order is preserved and duplicates are kept.
//
// Deleted characters are not replaced by a space, so "python/nlp" yields
// the single token "pythonnlp" and digits vanish entirely. Empty input
// yields an empty, non-nil slice.
func Normalize(text string, res *Resources) []string {
	if text == "" {
		return []string{}
	}

	// cases.Caser is stateful; build one per call.
	lowered := cases.Lower(language.English).String(norm.NFKC.String(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if res.IsStopWord(f) {
			continue
		}
		if res.stem != nil {
			f = res.stem(f)
		}
		tokens = append(tokens, f)
	}
	return tokens
}
