// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Native reads PDF text in-process. It needs no external tools and serves
// as the fallback when pdftotext is missing or yields no usable title.
type Native struct {
	pages int
}

// NewNative returns a converter reading at most the first pages of a PDF.
func NewNative(pages int) *Native {
	return &Native{pages: pages}
}

// Name implements Converter.
func (n *Native) Name() string { return "native" }

// Convert implements Converter. The pdf package panics on some malformed
// files; those panics are reported as extraction errors.
func (n *Native) Convert(ctx context.Context, path string) (_ io.Reader, rerr error) {
	defer func() {
		if r := recover(); r != nil {
			rerr = fmt.Errorf("%w: reading %s: %v", ErrExtraction, path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrExtraction, path, err)
	}
	defer f.Close()

	maxPages := n.pages
	if maxPages <= 0 || maxPages > r.NumPage() {
		maxPages = r.NumPage()
	}

	var b strings.Builder
	for i := 1; i <= maxPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	if strings.TrimSpace(b.String()) == "" {
		return nil, fmt.Errorf("%w: no text in first %d page(s) of %s", ErrExtraction, maxPages, path)
	}
	return strings.NewReader(b.String()), nil
}
