// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"strings"
)

// PlainText treats the document bytes as UTF-8 text. Invalid sequences
// become U+FFFD, which the normalizer later drops.
type PlainText struct{}

// Name returns "text".
func (PlainText) Name() string { return "text" }

// Extract returns data as a string.
func (PlainText) Extract(_ context.Context, _ string, data []byte) (string, error) {
	return strings.ToValidUTF8(string(data), "�"), nil
}
