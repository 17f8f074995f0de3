// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-screener/internal/extract"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// fakeExtractor treats candidate bytes as text, failing for names in fail.
type fakeExtractor struct {
	fail  map[string]error
	calls atomic.Int32
}

func (f *fakeExtractor) Name() string { return "fake" }

func (f *fakeExtractor) Extract(_ context.Context, name string, data []byte) (string, error) {
	f.calls.Add(1)
	if err := f.fail[name]; err != nil {
		return "", err
	}
	return string(data), nil
}

func newScreener(t *testing.T, ex extract.Extractor, progress io.Writer) *Screener {
	t.Helper()
	return &Screener{Ranker: newRanker(t, ""), Extractor: ex, Workers: 2, Progress: progress}
}

func TestScreen(t *testing.T) {
	fake := &fakeExtractor{fail: map[string]error{"scan.pdf": errors.New("encrypted document")}}
	var progress bytes.Buffer
	s := newScreener(t, fake, &progress)

	result, err := s.Screen(context.Background(), "python developer with nlp experience", []RawCandidate{
		{ID: "scan.pdf", Data: []byte("python developer nlp experience")},
		{ID: "cook.pdf", Data: []byte("completely unrelated text about cooking")},
		{ID: "dev.pdf", Data: []byte("experienced python nlp developer")},
		{ID: "blank.pdf", Data: []byte("   ")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"dev.pdf", "scan.pdf", "cook.pdf", "blank.pdf"}, ids(result))

	byID := map[string]types.ScoredCandidate{}
	for _, c := range result.Candidates {
		byID[c.ID] = c
	}
	assert.Equal(t, types.StatusScored, byID["dev.pdf"].Status)
	assert.Equal(t, types.StatusUnreadable, byID["scan.pdf"].Status)
	assert.Equal(t, "encrypted document", byID["scan.pdf"].Error)
	assert.Equal(t, 0.0, byID["scan.pdf"].Score)
	assert.Equal(t, types.StatusScored, byID["cook.pdf"].Status)
	assert.Equal(t, types.StatusUnreadable, byID["blank.pdf"].Status)
	assert.Equal(t, extract.ErrEmptyText.Error(), byID["blank.pdf"].Error)
	assert.Equal(t, 2, result.Unreadable())
	assert.False(t, result.AllUnreadable())

	assert.Contains(t, progress.String(), "failed:    scan.pdf (encrypted document)")
	assert.Contains(t, progress.String(), "extracted: dev.pdf")
}

func TestScreen_InvalidReference(t *testing.T) {
	fake := &fakeExtractor{}
	s := newScreener(t, fake, nil)

	_, err := s.Screen(context.Background(), " ", []RawCandidate{{ID: "a.txt", Data: []byte("python")}})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Equal(t, int32(0), fake.calls.Load())
}

func TestScreen_NoCandidates(t *testing.T) {
	s := newScreener(t, &fakeExtractor{}, nil)
	result, err := s.Screen(context.Background(), "python developer", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Len())
	assert.False(t, result.AllUnreadable())
}

func TestScreen_NilBufferProgress(t *testing.T) {
	var progress *bytes.Buffer
	s := newScreener(t, &fakeExtractor{}, progress)

	result, err := s.Screen(context.Background(), "python developer", []RawCandidate{{ID: "a.txt", Data: []byte("python")}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, ids(result))
}

func TestScreen_AllUnreadable(t *testing.T) {
	boom := errors.New("boom")
	fake := &fakeExtractor{fail: map[string]error{"a.pdf": boom, "b.pdf": boom}}
	s := newScreener(t, fake, nil)

	result, err := s.Screen(context.Background(), "python", []RawCandidate{{ID: "a.pdf"}, {ID: "b.pdf"}})
	require.NoError(t, err)
	assert.True(t, result.AllUnreadable())
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, ids(result))
}
