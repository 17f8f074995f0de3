// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores candidate documents against a reference document
// with TF-IDF cosine similarity and orders them best first.
package rank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/pdiddy/resume-screener/internal/textnorm"
	"github.com/pdiddy/resume-screener/internal/tfidf"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// ErrInvalidReference means the reference text is empty or whitespace-only.
var ErrInvalidReference = errors.New("reference text is empty")

// Ranker scores candidates against a reference. It holds only immutable
// configuration and is safe for concurrent use.
type Ranker struct {
	resources *textnorm.Resources
	builder   tfidf.Builder
	mode      types.VocabularyMode
}

// New returns a Ranker using res for normalization and cfg for weighting.
func New(res *textnorm.Resources, cfg types.RankingConfig) (*Ranker, error) {
	if res == nil {
		return nil, fmt.Errorf("language resources are required")
	}
	mode := cfg.Vocabulary
	switch mode {
	case "":
		mode = types.VocabularyPairwise
	case types.VocabularyPairwise, types.VocabularyShared:
	default:
		return nil, fmt.Errorf("unknown vocabulary mode %q: use pairwise or shared", mode)
	}
	return &Ranker{
		resources: res,
		builder:   tfidf.Builder{MinTermLength: cfg.MinTermLength},
		mode:      mode,
	}, nil
}

// Rank scores every candidate against reference and returns them sorted by
// score descending, ties in submission order.
//
// In pairwise mode (the default) each candidate is weighted in its own
// two-document corpus {reference, candidate}, so idf never sees the other
// candidates and scores from different pairs use different vocabularies.
// Shared mode weights the reference and all candidates as one corpus.
//
// An empty candidate list yields an empty result. A blank reference is
// rejected with ErrInvalidReference before any candidate is processed.
func (r *Ranker) Rank(ctx context.Context, reference types.Document, candidates []types.Document) (types.RankedResult, error) {
	if err := ValidateReference(reference); err != nil {
		return types.RankedResult{}, err
	}

	refTokens := textnorm.Normalize(reference.Text, r.resources)
	if len(refTokens) == 0 {
		slog.Warn("reference has no terms after normalization; all scores will be 0", "reference", reference.ID)
	}

	var (
		scored []types.ScoredCandidate
		err    error
	)
	if r.mode == types.VocabularyShared {
		scored, err = r.scoreShared(ctx, refTokens, candidates)
	} else {
		scored, err = r.scorePairwise(ctx, refTokens, candidates)
	}
	if err != nil {
		return types.RankedResult{}, err
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return types.RankedResult{Reference: reference.ID, Candidates: scored}, nil
}

// ValidateReference returns ErrInvalidReference when reference has no
// non-whitespace text.
func ValidateReference(reference types.Document) error {
	if strings.TrimSpace(reference.Text) == "" {
		return fmt.Errorf("%q: %w", reference.ID, ErrInvalidReference)
	}
	return nil
}

func (r *Ranker) scorePairwise(ctx context.Context, refTokens []string, candidates []types.Document) ([]types.ScoredCandidate, error) {
	scored := make([]types.ScoredCandidate, len(candidates))
	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ranking interrupted at candidate %d of %d: %w", i+1, len(candidates), err)
		}
		tokens := textnorm.Normalize(c.Text, r.resources)
		w := r.builder.BuildWeights([][]string{refTokens, tokens})
		score := tfidf.Similarity(w.Vectors[0], w.Vectors[1])
		slog.Debug("scored candidate", "id", c.ID, "vocabulary", len(w.Vocabulary), "score", score)
		scored[i] = newScored(c.ID, i, score, w.Vectors[1])
	}
	return scored, nil
}

func (r *Ranker) scoreShared(ctx context.Context, refTokens []string, candidates []types.Document) ([]types.ScoredCandidate, error) {
	corpus := make([][]string, 0, len(candidates)+1)
	corpus = append(corpus, refTokens)
	for i, c := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("ranking interrupted at candidate %d of %d: %w", i+1, len(candidates), err)
		}
		corpus = append(corpus, textnorm.Normalize(c.Text, r.resources))
	}

	w := r.builder.BuildWeights(corpus)
	slog.Debug("built shared corpus", "documents", len(corpus), "vocabulary", len(w.Vocabulary))

	scored := make([]types.ScoredCandidate, len(candidates))
	for i, c := range candidates {
		score := tfidf.Similarity(w.Vectors[0], w.Vectors[i+1])
		scored[i] = newScored(c.ID, i, score, w.Vectors[i+1])
	}
	return scored, nil
}

func newScored(id string, pos int, score float64, v tfidf.WeightVector) types.ScoredCandidate {
	status := types.StatusScored
	if len(v) == 0 {
		status = types.StatusEmpty
	}
	return types.ScoredCandidate{ID: id, Score: score, Position: pos, Status: status}
}
