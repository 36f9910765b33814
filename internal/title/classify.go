// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/papermv/internal/lexicon"
	"github.com/pdiddy/papermv/pkg/types"
)

// Reason explains why a line was rejected as title text.
type Reason int

const (
	// ReasonNone means the line is usable as title text.
	ReasonNone Reason = iota
	ReasonEmpty
	ReasonBy
	ReasonTrailingNumber
	ReasonBadKeyword
	ReasonProperNames
	ReasonNoEnglishWord
	ReasonCopyright
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "ok"
	case ReasonEmpty:
		return "empty"
	case ReasonBy:
		return "by line"
	case ReasonTrailingNumber:
		return "trailing number"
	case ReasonBadKeyword:
		return "bad keyword"
	case ReasonProperNames:
		return "too many proper names"
	case ReasonNoEnglishWord:
		return "no long English word"
	case ReasonCopyright:
		return "copyright notice"
	default:
		return "unknown"
	}
}

// Verdict is the result of classifying one cleaned line.
type Verdict struct {
	// Words are the letter and digit runs the rules were evaluated on.
	Words  []string
	Reason Reason
	// Keyword is the offending token when Reason is ReasonBadKeyword.
	Keyword string
}

// Bad reports whether the line cannot be part of a title.
func (v Verdict) Bad() bool { return v.Reason != ReasonNone }

// Classifier decides whether a cleaned line can be part of a title.
type Classifier struct {
	lex     *lexicon.Lexicon
	divisor int
}

// NewClassifier returns a Classifier over lex. Zero thresholds in h fall
// back to their defaults.
func NewClassifier(lex *lexicon.Lexicon, h types.Heuristics) *Classifier {
	h = h.WithDefaults()
	return &Classifier{lex: lex, divisor: h.ProperNameDivisor}
}

// Bad reports whether text is NOT usable as part of a title. minWord is the
// minimum length of the English word the line must contain.
func (c *Classifier) Bad(text string, minWord int) bool {
	return c.Classify(text, minWord).Bad()
}

// Classify applies the rejection rules in order and reports the first that fires.
func (c *Classifier) Classify(text string, minWord int) Verdict {
	words := Words(text)
	v := Verdict{Words: words}

	switch {
	case len(words) == 0:
		v.Reason = ReasonEmpty
	case strings.EqualFold(text, "by"):
		v.Reason = ReasonBy
	case isNumber(words[len(words)-1]):
		v.Reason = ReasonTrailingNumber
	default:
		if kw, ok := c.badKeyword(words); ok {
			v.Reason, v.Keyword = ReasonBadKeyword, kw
		} else if c.divisor*c.properNames(words) >= len(words) {
			v.Reason = ReasonProperNames
		} else if !c.hasEnglishWord(words, minWord) {
			v.Reason = ReasonNoEnglishWord
		} else if reCopyright.MatchString(text) {
			v.Reason = ReasonCopyright
		}
	}
	return v
}

func (c *Classifier) badKeyword(words []string) (string, bool) {
	for _, w := range words {
		if c.lex.IsBadKeyword(strings.ToLower(w)) {
			return w, true
		}
	}
	return "", false
}

func (c *Classifier) properNames(words []string) int {
	n := 0
	for _, w := range words {
		if c.lex.IsProperName(capitalize(w)) {
			n++
		}
	}
	return n
}

// hasEnglishWord reports whether some word other than "and" is an English
// word of at least minWord characters.
func (c *Classifier) hasEnglishWord(words []string, minWord int) bool {
	for _, w := range words {
		lw := strings.ToLower(w)
		if lw == "and" || utf8.RuneCountInString(w) < minWord {
			continue
		}
		if c.lex.IsEnglish(lw) {
			return true
		}
	}
	return false
}

// Words splits text into letter runs and digit runs, dropping standalone
// single digits (usually footnote markers).
func Words(text string) []string {
	all := reWords.FindAllString(text, -1)
	words := all[:0]
	for _, w := range all {
		if utf8.RuneCountInString(w) == 1 && isNumber(w) {
			continue
		}
		words = append(words, w)
	}
	return words
}

// Tokens extracts legible title tokens: runs of word characters,
// apostrophes, and hyphens.
func Tokens(text string) []string {
	return reLegible.FindAllString(text, -1)
}

func isNumber(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// capitalize upper-cases the first rune of w and lower-cases the rest.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
