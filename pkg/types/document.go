// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the resume-screener
// pipeline: documents, scored candidates, ranked results, and the
// configuration consumed by each stage.
package types

// Document is a labelled piece of raw text: a job description or the text
// extracted from one resume. Documents are read-only once created.
type Document struct {
	// ID is the filename or label that identifies the document.
	ID string `json:"id" yaml:"id"`

	// Text is the raw extracted text. It may be empty.
	Text string `json:"text" yaml:"text"`
}

// CandidateStatus explains how a candidate's score was obtained.
type CandidateStatus string

const (
	// StatusScored means the candidate had at least one usable term.
	StatusScored CandidateStatus = "scored"

	// StatusEmpty means no term of the candidate text survived normalization
	// and the minimum term length, so text made only of single letters is
	// empty under the default length of 2.
	StatusEmpty CandidateStatus = "empty"

	// StatusUnreadable means text extraction failed; the score is 0.
	StatusUnreadable CandidateStatus = "unreadable"
)

// ScoredCandidate is one candidate's similarity against the reference.
type ScoredCandidate struct {
	// ID identifies the candidate (usually the resume filename).
	ID string `json:"id" yaml:"id"`

	// Score is the cosine similarity in [0, 1].
	Score float64 `json:"score" yaml:"score"`

	// Position is the zero-based submission index. Ties in Score keep
	// ascending Position order.
	Position int `json:"position" yaml:"position"`

	// Status reports whether the candidate was scored, empty, or unreadable.
	Status CandidateStatus `json:"status" yaml:"status"`

	// Error records the extraction failure reason. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// RankedResult is the ordered outcome of one analysis run: candidates
// sorted by Score descending, ties broken by submission order.
type RankedResult struct {
	// Reference is the ID of the document all candidates were scored against.
	Reference string `json:"reference" yaml:"reference"`

	// Candidates holds the ranked candidates, best first.
	Candidates []ScoredCandidate `json:"candidates" yaml:"candidates"`
}

// Len returns the number of ranked candidates.
func (r RankedResult) Len() int {
	return len(r.Candidates)
}

// Unreadable returns the number of candidates whose extraction failed.
func (r RankedResult) Unreadable() int {
	n := 0
	for _, c := range r.Candidates {
		if c.Status == StatusUnreadable {
			n++
		}
	}
	return n
}

// AllUnreadable reports whether there was at least one candidate and every
// candidate failed extraction.
func (r RankedResult) AllUnreadable() bool {
	return len(r.Candidates) > 0 && r.Unreadable() == len(r.Candidates)
}
