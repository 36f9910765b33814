// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is the declared character encoding of extracted text. It is
// never auto-detected.
type Encoding string

const (
	UTF8   Encoding = "utf-8"
	Latin1 Encoding = "latin-1"
)

// ParseEncoding accepts the common spellings of the supported encodings.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return UTF8, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return Latin1, nil
	default:
		return "", fmt.Errorf("unsupported encoding %q: use utf-8 or latin-1", s)
	}
}

// Decode wraps r so that it yields UTF-8 text. Invalid UTF-8 input is
// replaced with U+FFFD rather than failing.
func Decode(r io.Reader, enc Encoding) io.Reader {
	switch enc {
	case Latin1:
		return charmap.ISO8859_1.NewDecoder().Reader(r)
	default:
		return unicode.UTF8.NewDecoder().Reader(r)
	}
}
