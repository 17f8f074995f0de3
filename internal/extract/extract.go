// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls plain text out of candidate documents. Backends
// (native PDF, pdftotext and markitdown containers, plain text) implement
// Extractor; failures are reported as Outcome values, never panics.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

var (
	// ErrEmptyText means the backend ran but produced no usable text,
	// as with an image-only PDF.
	ErrEmptyText = errors.New("no extractable text")

	// ErrUnsupportedFormat means no backend handles the document's format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// DefaultWorkers bounds concurrent extractions when no value is configured.
const DefaultWorkers = 4

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	// Name identifies the backend (e.g. "native", "pdftotext").
	Name() string

	// Extract returns the text of the document. name is the document's
	// filename and may be used to pick a format.
	Extract(ctx context.Context, name string, data []byte) (string, error)
}

// Outcome is the tagged result of extracting one document: either text
// (Err nil) or a read failure (Err set, Text empty).
type Outcome struct {
	Text string
	Err  error
}

// Success wraps extracted text.
func Success(text string) Outcome { return Outcome{Text: text} }

// Failure wraps an extraction error.
func Failure(err error) Outcome { return Outcome{Err: err} }

// Failed reports whether the extraction failed.
func (o Outcome) Failed() bool { return o.Err != nil }

// Reason returns the failure message, or "" on success.
func (o Outcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// Run extracts one document and folds errors and whitespace-only output
// into a failed Outcome.
func Run(ctx context.Context, ex Extractor, name string, data []byte) Outcome {
	if err := ctx.Err(); err != nil {
		return Failure(err)
	}
	text, err := ex.Extract(ctx, name, data)
	if err != nil {
		return Failure(err)
	}
	if strings.TrimSpace(text) == "" {
		return Failure(ErrEmptyText)
	}
	return Success(text)
}

// Input is one named document to extract. A non-nil Err records a read
// failure that happened before extraction; the document is not extracted.
type Input struct {
	Name string
	Data []byte
	Err  error
}

// BatchResult holds the outcome of a batch extraction run.
type BatchResult struct {
	Outcomes  []Outcome
	Extracted int
	Failed    int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Extracted + r.Failed
}

// HasFailures reports whether any document failed extraction.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch extracts inputs with at most workers concurrent extractions.
// Outcomes are returned in input order; per-file status lines are written
// to w in input order once all extractions finish.
func Batch(ctx context.Context, ex Extractor, inputs []Input, workers int, w io.Writer) BatchResult {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	outcomes := make([]Outcome, len(inputs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, in := range inputs {
		wg.Add(1)
		go func(i int, in Input) {
			defer wg.Done()
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				outcomes[i] = Failure(ctx.Err())
				return
			}
			if in.Err != nil {
				outcomes[i] = Failure(in.Err)
				return
			}
			outcomes[i] = Run(ctx, ex, in.Name, in.Data)
		}(i, in)
	}
	wg.Wait()

	result := BatchResult{Outcomes: outcomes}
	for i, o := range outcomes {
		if o.Failed() {
			fmt.Fprintf(w, "failed:    %s (%v)\n", inputs[i].Name, o.Err)
			result.Failed++
			continue
		}
		slog.Debug("extracted", "name", inputs[i].Name, "backend", ex.Name(), "chars", len(o.Text))
		fmt.Fprintf(w, "extracted: %s\n", inputs[i].Name)
		result.Extracted++
	}
	fmt.Fprintf(w, "\nExtraction summary: %d extracted, %d failed (total: %d)\n",
		result.Extracted, result.Failed, result.Total())
	return result
}
