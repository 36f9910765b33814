// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/papermv/internal/command"
)

// Format identifies a document type the renamer can handle.
type Format int

const (
	Unknown Format = iota
	PDF
	PostScript
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case PostScript:
		return "PostScript"
	default:
		return "Unknown"
	}
}

// Extension returns the extension, with its leading dot, renamed files get.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case PostScript:
		return ".ps"
	default:
		return ""
	}
}

// FormatFromMIME maps a MIME type as printed by file(1) to a Format.
func FormatFromMIME(mime string) Format {
	switch strings.TrimSpace(mime) {
	case "application/pdf":
		return PDF
	case "application/postscript":
		return PostScript
	default:
		return Unknown
	}
}

// sniffLen is how many leading bytes Sniff inspects.
const sniffLen = 1024

// Sniff guesses the format from the document's leading bytes.
func Sniff(r io.Reader) (Format, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return Unknown, err
	}
	head = head[:n]
	switch {
	case bytes.Contains(head, []byte("%PDF-")):
		return PDF, nil
	case bytes.HasPrefix(bytes.TrimLeft(head, "\x04\r\n\t "), []byte("%!")):
		return PostScript, nil
	default:
		return Unknown, nil
	}
}

// Detector determines a document's format with file(1), falling back to
// sniffing the leading bytes when file is not installed or fails.
type Detector struct {
	file command.Tool
}

// NewDetector returns a Detector that runs the given file tool.
func NewDetector(file command.Tool) *Detector {
	return &Detector{file: file}
}

// Detect returns the document's format. An unrecognized format is not an
// error here; callers decide what Unknown means.
func (d *Detector) Detect(ctx context.Context, path string) (Format, error) {
	if d.file != nil && d.file.Available() {
		out, err := command.Output(ctx, d.file, "--brief", "--mime-type", path)
		if err == nil {
			return FormatFromMIME(string(out)), nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return Unknown, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Sniff(f)
}
