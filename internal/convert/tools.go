// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/papermv/internal/command"
)

// Pdftotext converts PDFs with poppler's pdftotext, reading UTF-8 output.
type Pdftotext struct {
	tool  command.Tool
	pages int
}

// NewPdftotext returns a converter limited to the first pages of the document.
func NewPdftotext(tool command.Tool, pages int) *Pdftotext {
	return &Pdftotext{tool: tool, pages: pages}
}

// Name implements Converter.
func (p *Pdftotext) Name() string { return "pdftotext" }

// Convert implements Converter.
func (p *Pdftotext) Convert(ctx context.Context, path string) (io.Reader, error) {
	args := []string{"-f", "1", "-l", strconv.Itoa(p.pages), "-enc", "UTF-8", path, "-"}
	return runTool(ctx, p.tool, args, UTF8)
}

// Pstotext converts PostScript with pstotext, whose output is Latin-1.
type Pstotext struct {
	tool command.Tool
}

// NewPstotext returns a PostScript converter.
func NewPstotext(tool command.Tool) *Pstotext {
	return &Pstotext{tool: tool}
}

// Name implements Converter.
func (p *Pstotext) Name() string { return "pstotext" }

// Convert implements Converter.
func (p *Pstotext) Convert(ctx context.Context, path string) (io.Reader, error) {
	return runTool(ctx, p.tool, []string{path}, Latin1)
}

func runTool(ctx context.Context, tool command.Tool, args []string, enc Encoding) (io.Reader, error) {
	var out bytes.Buffer
	if err := tool.Run(ctx, args, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("%w: %s produced empty output", ErrExtraction, tool.Name())
	}
	return Decode(&out, enc), nil
}
