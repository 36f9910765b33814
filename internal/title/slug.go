// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins title tokens in a slug.
const Separator = "_"

// Slug joins tokens into a filesystem-safe ASCII name. Titles that are
// mostly upper case are recased to Capitalized words first.
func Slug(tokens []string) string {
	upper := 0
	for _, t := range tokens {
		if isUpper(t) {
			upper++
		}
	}
	words := tokens
	if 2*upper > len(tokens) {
		words = make([]string, len(tokens))
		for i, t := range tokens {
			words[i] = capitalize(t)
		}
	}
	return toASCII(strings.Join(words, Separator))
}

// Normalize is Slug that rejects names with no ASCII letter or digit left.
func Normalize(tokens []string) (string, error) {
	slug := Slug(tokens)
	if strings.IndexFunc(slug, isASCIIAlnum) < 0 {
		return "", ErrNoTitleFound
	}
	return slug, nil
}

func isASCIIAlnum(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// isUpper reports whether w has at least one cased letter and no lower or
// title case letters.
func isUpper(w string) bool {
	cased := false
	for _, r := range w {
		if unicode.IsLower(r) || unicode.IsTitle(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// toASCII decomposes s with NFKD and drops every rune outside ASCII.
func toASCII(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.Predicate(func(r rune) bool {
		return r > unicode.MaxASCII
	})))
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return -1
			}
			return r
		}, s)
	}
	return out
}
