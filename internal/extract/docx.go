// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// WordDocument extracts the body text of an Office Open XML (.docx) file
// in-process.
type WordDocument struct{}

// Name returns "docx".
func (WordDocument) Name() string { return "docx" }

// Extract reads word/document.xml and keeps the contents of w:t runs.
// Paragraph and line breaks become newlines and tabs become spaces.
func (WordDocument) Extract(ctx context.Context, name string, data []byte) (string, error) {
	// Memory-backed documents hold no file handle, so there is nothing to Close.
	r, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening DOCX %s: %w", name, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := documentText(r.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("reading text from %s: %w", name, err)
	}
	return text, nil
}

// documentText walks WordprocessingML and returns its visible text.
func documentText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte(' ')
			case "br", "cr":
				b.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
