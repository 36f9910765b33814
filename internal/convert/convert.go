// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns the first pages of PDF and PostScript documents
// into plain UTF-8 text with pluggable backends (pdftotext, pstotext, an
// in-process PDF reader, and the PDF metadata title).
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/papermv/internal/command"
	"github.com/pdiddy/papermv/pkg/types"
)

var (
	// ErrExtraction marks failures of the text-extraction layer, as opposed
	// to failures to infer a title from text that was extracted.
	ErrExtraction = errors.New("text extraction failed")

	// ErrUnsupportedFormat is returned for documents that are neither PDF
	// nor PostScript.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// Converter extracts the leading text of a document. Different backends
// (pdftotext, pstotext, native, metadata) implement this interface.
type Converter interface {
	// Name identifies the backend in logs and history records.
	Name() string

	// Convert returns UTF-8 text for the document at path.
	Convert(ctx context.Context, path string) (io.Reader, error)
}

// Pipeline pairs format detection with the ordered converters to try for
// each format. Later converters are fallbacks for earlier ones.
type Pipeline struct {
	detector *Detector
	chains   map[Format][]Converter
}

// NewPipeline builds the default pipeline from cfg: pdftotext, then the
// in-process reader, then (optionally) the metadata title for PDFs;
// pstotext for PostScript.
func NewPipeline(cfg types.ExtractionConfig) *Pipeline {
	pages := cfg.MaxPages
	if pages <= 0 {
		pages = 2
	}
	pdf := []Converter{
		NewPdftotext(command.New(orDefault(cfg.Pdftotext, "pdftotext")), pages),
		NewNative(pages),
	}
	if cfg.MetadataFallback {
		pdf = append(pdf, NewMetadata())
	}
	return NewPipelineWith(NewDetector(command.New("file")), map[Format][]Converter{
		PDF:        pdf,
		PostScript: {NewPstotext(command.New(orDefault(cfg.Pstotext, "pstotext")))},
	})
}

// NewPipelineWith assembles a pipeline from explicit parts.
func NewPipelineWith(detector *Detector, chains map[Format][]Converter) *Pipeline {
	return &Pipeline{detector: detector, chains: chains}
}

// Detect returns the format of the document at path, or an error wrapping
// ErrUnsupportedFormat.
func (p *Pipeline) Detect(ctx context.Context, path string) (Format, error) {
	f, err := p.detector.Detect(ctx, path)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	if f == Unknown || len(p.chains[f]) == 0 {
		return Unknown, fmt.Errorf("%w: %s is not a PDF or PostScript file", ErrUnsupportedFormat, path)
	}
	return f, nil
}

// Converters returns the converters to try, in order, for format f.
func (p *Pipeline) Converters(f Format) []Converter {
	return p.chains[f]
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
