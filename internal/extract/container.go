// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/resume-screener/internal/container"
)

const (
	imagePdftotext  = "pdftotext:latest"
	imageMarkitdown = "markitdown:latest"
)

// ContainerTool runs a text-extraction image through a container.Runtime,
// piping the document to stdin and reading text from stdout.
type ContainerTool struct {
	name    string
	image   string
	args    []string
	runtime container.Runtime
}

// NewPdftotext returns an extractor backed by the poppler pdftotext image.
// It verifies that the image exists locally before returning.
func NewPdftotext(ctx context.Context, rt container.Runtime) (*ContainerTool, error) {
	return newContainerTool(ctx, rt, "pdftotext", imagePdftotext, []string{"-enc", "UTF-8", "-", "-"})
}

// NewMarkitdown returns an extractor backed by the markitdown image.
// It verifies that the image exists locally before returning.
func NewMarkitdown(ctx context.Context, rt container.Runtime) (*ContainerTool, error) {
	return newContainerTool(ctx, rt, "markitdown", imageMarkitdown, nil)
}

func newContainerTool(ctx context.Context, rt container.Runtime, name, image string, args []string) (*ContainerTool, error) {
	if err := rt.ImageExists(ctx, image); err != nil {
		return nil, fmt.Errorf("%s image not available in %s: %w", name, rt.Name(), err)
	}
	return &ContainerTool{name: name, image: image, args: args, runtime: rt}, nil
}

// Name returns the tool name.
func (c *ContainerTool) Name() string { return c.name }

// Extract pipes data through the tool container.
func (c *ContainerTool) Extract(ctx context.Context, name string, data []byte) (string, error) {
	var out bytes.Buffer
	if err := c.runtime.Run(ctx, c.image, c.args, bytes.NewReader(data), &out); err != nil {
		return "", fmt.Errorf("extracting %s with %s: %w", name, c.name, err)
	}
	return out.String(), nil
}
