// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"context"
	"io"
	"reflect"

	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// RawCandidate is one undecoded candidate document, such as a resume file.
// ReadErr records a failure to obtain the bytes at all; such a candidate
// is ranked as unreadable without being extracted.
type RawCandidate struct {
	ID      string
	Data    []byte
	ReadErr error
}

// Screener extracts candidate text and ranks it against a job description.
type Screener struct {
	Ranker    *Ranker
	Extractor extract.Extractor

	// Workers bounds concurrent extractions. Zero uses extract.DefaultWorkers.
	Workers int

	// Progress receives per-file extraction status lines. A nil writer,
	// or one holding a nil pointer, discards them.
	Progress io.Writer
}

// Screen extracts every candidate concurrently, then ranks them against
// referenceText. A candidate whose extraction fails is scored against empty
// text, ranked with score 0, and marked unreadable with the failure reason.
func (s *Screener) Screen(ctx context.Context, referenceText string, candidates []RawCandidate) (types.RankedResult, error) {
	return s.ScreenDocument(ctx, types.Document{ID: "job description", Text: referenceText}, candidates)
}

// ScreenDocument is Screen with a labelled reference document.
func (s *Screener) ScreenDocument(ctx context.Context, reference types.Document, candidates []RawCandidate) (types.RankedResult, error) {
	if err := ValidateReference(reference); err != nil {
		return types.RankedResult{}, err
	}

	progress := s.Progress
	if isNil(progress) {
		progress = io.Discard
	}

	inputs := make([]extract.Input, len(candidates))
	for i, c := range candidates {
		inputs[i] = extract.Input{Name: c.ID, Data: c.Data, Err: c.ReadErr}
	}
	batch := extract.Batch(ctx, s.Extractor, inputs, s.Workers, progress)

	docs := make([]types.Document, len(candidates))
	for i, c := range candidates {
		docs[i] = types.Document{ID: c.ID, Text: batch.Outcomes[i].Text}
	}

	result, err := s.Ranker.Rank(ctx, reference, docs)
	if err != nil {
		return types.RankedResult{}, err
	}

	for i := range result.Candidates {
		o := batch.Outcomes[result.Candidates[i].Position]
		if o.Failed() {
			result.Candidates[i].Status = types.StatusUnreadable
			result.Candidates[i].Error = o.Reason()
		}
	}
	return result, nil
}

// isNil reports whether w is nil or holds a nil pointer.
func isNil(w io.Writer) bool {
	if w == nil {
		return true
	}
	v := reflect.ValueOf(w)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
