// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import (
	"strings"
	"unicode/utf8"
)

// defaultLetterSpacingRatio is the share of single-character tokens above
// which a line is considered letter-spaced.
const defaultLetterSpacingRatio = 0.5

// Clean normalizes one raw line of extracted text: it trims it, spells the
// copyright sign as "c", drops characters outside the allowed set, and repairs letter-spaced text
// ("T h e  S y s t e m") by re-segmenting on capital letters.
func Clean(raw string) string {
	return clean(raw, defaultLetterSpacingRatio)
}

func clean(raw string, ratio float64) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "©", "c ")
	s = reBadChars.ReplaceAllString(s, "")

	fields := strings.Fields(s)
	if letterSpaced(fields, ratio) {
		runs := reCapRun.FindAllString(s, -1)
		for i, r := range runs {
			runs[i] = reWhitespace.ReplaceAllString(r, "")
		}
		return strings.Join(runs, " ")
	}
	return strings.Join(fields, " ")
}

// letterSpaced reports whether more than ratio of the fields are a single
// character long. The repair it triggers is a best guess, not a guarantee.
func letterSpaced(fields []string, ratio float64) bool {
	if len(fields) == 0 {
		return false
	}
	single := 0
	for _, f := range fields {
		if utf8.RuneCountInString(f) == 1 {
			single++
		}
	}
	return float64(single) > ratio*float64(len(fields))
}
