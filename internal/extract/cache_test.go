// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, inner Extractor) *Cache {
	t.Helper()
	c, err := NewCache(t.TempDir(), inner)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_HitAfterMiss(t *testing.T) {
	fake := &fakeExtractor{texts: map[string]string{"a.pdf": "python", "b.pdf": "python"}}
	c := newTestCache(t, fake)
	ctx := context.Background()

	text, err := c.Extract(ctx, "a.pdf", []byte("same bytes"))
	require.NoError(t, err)
	assert.Equal(t, "python", text)

	// Same content under another name is served from the cache.
	text, err = c.Extract(ctx, "b.pdf", []byte("same bytes"))
	require.NoError(t, err)
	assert.Equal(t, "python", text)
	assert.Equal(t, int32(1), fake.calls.Load())

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "fake", c.Name())
}

func TestCache_FailuresNotCached(t *testing.T) {
	fake := &fakeExtractor{fail: map[string]error{"bad.pdf": errors.New("corrupt")}}
	c := newTestCache(t, fake)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := c.Extract(ctx, "bad.pdf", []byte("x"))
		require.Error(t, err)
	}
	assert.Equal(t, int32(2), fake.calls.Load())

	n, err := c.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestCache_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := &fakeExtractor{texts: map[string]string{"a.txt": "golang"}}
	c, err := NewCache(dir, first)
	require.NoError(t, err)
	_, err = c.Extract(ctx, "a.txt", []byte("bytes"))
	require.NoError(t, err)
	require.NoError(t, c.Close())

	second := &fakeExtractor{}
	c, err = NewCache(dir, second)
	require.NoError(t, err)
	defer c.Close()

	text, err := c.Extract(ctx, "a.txt", []byte("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "golang", text)
	assert.Equal(t, int32(0), second.calls.Load())
}
