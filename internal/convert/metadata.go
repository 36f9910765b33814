// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

// ErrTitleNotFound is returned when the PDF Info dictionary has no title.
var ErrTitleNotFound = errors.New("metadata title not found")

const titlePrefix = "Title: "

// Metadata offers the PDF Info dictionary title as a one-line document,
// so it passes through the same classifier as extracted text.
type Metadata struct {
	info func(path string) ([]string, error)
}

// NewMetadata returns a converter backed by pdfcpu.
func NewMetadata() *Metadata {
	return &Metadata{info: func(path string) ([]string, error) {
		return pdfcpu.InfoFile(path, []string{}, nil)
	}}
}

// Name implements Converter.
func (m *Metadata) Name() string { return "metadata" }

// Convert implements Converter.
func (m *Metadata) Convert(ctx context.Context, path string) (io.Reader, error) {
	info, err := m.info(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF info of %s: %v", ErrExtraction, path, err)
	}
	title, err := metadataTitle(info)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrExtraction, path, err)
	}
	return strings.NewReader(title + "\n"), nil
}

func metadataTitle(info []string) (string, error) {
	for _, line := range info {
		cleaned := strings.TrimSpace(line)
		if strings.HasPrefix(cleaned, titlePrefix) {
			if t := strings.TrimSpace(strings.TrimPrefix(cleaned, titlePrefix)); t != "" {
				return t, nil
			}
		}
	}
	return "", ErrTitleNotFound
}
