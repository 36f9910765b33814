// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon builds the immutable word sets the title engine classifies
// lines against: English words, proper names, and bad-title keywords.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/papermv/pkg/types"
)

// ErrLoad is returned when the word list cannot be read. The title engine
// has no fallback classifier, so callers treat it as fatal.
var ErrLoad = errors.New("dictionary load failure")

// domainWords are technical terms missing from common system word lists.
var domainWords = []string{
	"parser",
	"parsers",
	"combinator",
	"subtype",
	"subtyping",
}

// properNameExceptions double as ordinary title words or trip the
// author-line heuristic, so they never count as proper names.
var properNameExceptions = []string{
	"Boolean",
	"Rosetta",
	"Lr",
}

// Lexicon is the read-only bundle of word sets. It is safe for concurrent
// use because nothing mutates it after construction.
type Lexicon struct {
	english map[string]struct{}
	proper  map[string]struct{}
	bad     map[string]struct{}
}

// Options adds to the built-in allowlist and removal list.
type Options struct {
	ExtraWords        []string
	RemoveProperNames []string
}

// Load reads the word list named by cfg.Path and builds a Lexicon.
// Any read failure wraps ErrLoad.
func Load(cfg types.DictionaryConfig) (*Lexicon, error) {
	path := cfg.Path
	if path == "" {
		path = types.DefaultWordList
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening word list %s: %v", ErrLoad, path, err)
	}
	defer f.Close()

	words, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("%w: reading word list %s: %v", ErrLoad, path, err)
	}
	return FromWords(words, Options{
		ExtraWords:        cfg.ExtraWords,
		RemoveProperNames: cfg.RemoveProperNames,
	}), nil
}

func readWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := strings.TrimSpace(sc.Text()); w != "" {
			words = append(words, w)
		}
	}
	return words, sc.Err()
}

// FromWords splits a raw word list into English words (lowercase initial)
// and proper names (uppercase initial whose lowercase form is not an
// English word), then applies the allowlist and removal list.
func FromWords(words []string, opts Options) *Lexicon {
	english := make(map[string]struct{})
	for _, w := range words {
		if r, _ := utf8.DecodeRuneInString(w); unicode.IsLower(r) {
			english[w] = struct{}{}
		}
	}
	for _, w := range domainWords {
		english[w] = struct{}{}
	}
	for _, w := range opts.ExtraWords {
		english[strings.ToLower(w)] = struct{}{}
	}

	proper := make(map[string]struct{})
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsUpper(r) {
			continue
		}
		if _, ok := english[strings.ToLower(w)]; ok {
			continue
		}
		proper[w] = struct{}{}
	}
	for _, w := range properNameExceptions {
		delete(proper, w)
	}
	for _, w := range opts.RemoveProperNames {
		delete(proper, w)
	}

	bad := make(map[string]struct{}, len(badTitleKeywords))
	for _, w := range badTitleKeywords {
		bad[w] = struct{}{}
	}

	return &Lexicon{english: english, proper: proper, bad: bad}
}

// IsEnglish reports whether w (already case-folded) is an English word.
func (l *Lexicon) IsEnglish(w string) bool {
	_, ok := l.english[w]
	return ok
}

// IsProperName reports whether w (already capitalized) is a proper name.
func (l *Lexicon) IsProperName(w string) bool {
	_, ok := l.proper[w]
	return ok
}

// IsBadKeyword reports whether w (already case-folded) marks document
// metadata rather than title text.
func (l *Lexicon) IsBadKeyword(w string) bool {
	_, ok := l.bad[w]
	return ok
}

// Sizes returns the number of English words and proper names.
func (l *Lexicon) Sizes() (english, proper int) {
	return len(l.english), len(l.proper)
}
