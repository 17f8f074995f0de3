// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdiddy/resume-screener/internal/container"
	"github.com/pdiddy/resume-screener/pkg/types"
)

// textExtensions are read as plain text by every backend.
var textExtensions = map[string]bool{
	".txt":  true,
	".text": true,
	".md":   true,
}

// Supported reports whether name has an extension the screener reads.
func Supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".pdf" || ext == ".docx" || textExtensions[ext]
}

// ByExtension routes PDFs to one extractor, Word documents to another, and
// text files to PlainText. A nil DOCX uses WordDocument.
type ByExtension struct {
	PDF  Extractor
	DOCX Extractor
}

// Name reports the PDF backend's name.
func (b ByExtension) Name() string { return b.PDF.Name() }

// Extract dispatches on the extension of name.
func (b ByExtension) Extract(ctx context.Context, name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch {
	case ext == ".pdf":
		return b.PDF.Extract(ctx, name, data)
	case ext == ".docx":
		if b.DOCX == nil {
			return WordDocument{}.Extract(ctx, name, data)
		}
		return b.DOCX.Extract(ctx, name, data)
	case textExtensions[ext]:
		return PlainText{}.Extract(ctx, name, data)
	default:
		return "", fmt.Errorf("%s: %w %q", name, ErrUnsupportedFormat, ext)
	}
}

// New builds the extractor for a configured backend. Container backends
// detect a runtime on first use of New.
func New(ctx context.Context, backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendAuto, types.BackendNative, "":
		return ByExtension{PDF: NativePDF{}}, nil
	case types.BackendText:
		return PlainText{}, nil
	case types.BackendPdftotext, types.BackendMarkitdown:
		rt, err := container.DetectRuntime(ctx)
		if err != nil {
			return nil, err
		}
		var tool *ContainerTool
		if backend == types.BackendPdftotext {
			tool, err = NewPdftotext(ctx, rt)
		} else {
			tool, err = NewMarkitdown(ctx, rt)
		}
		if err != nil {
			return nil, err
		}
		return ByExtension{PDF: tool}, nil
	default:
		return nil, fmt.Errorf("unknown extraction backend %q: use auto, native, pdftotext, markitdown, or text", backend)
	}
}
