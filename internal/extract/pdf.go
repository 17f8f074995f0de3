// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// NativePDF extracts the text layer of a PDF in-process.
type NativePDF struct{}

// Name returns "native".
func (NativePDF) Name() string { return "native" }

// Extract reads every page's text. Malformed documents that make the
// parser panic are reported as errors.
func (NativePDF) Extract(ctx context.Context, name string, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("parsing PDF %s: %v", name, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("reading text from %s: %w", name, err)
	}
	out, err := io.ReadAll(plain)
	if err != nil {
		return "", fmt.Errorf("reading text from %s: %w", name, err)
	}
	return string(out), nil
}
