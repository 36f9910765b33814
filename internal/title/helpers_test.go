// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import (
	"github.com/pdiddy/papermv/internal/lexicon"
)

// fixtureLexicon returns a small dictionary so tests do not depend on the
// host's word list.
func fixtureLexicon() *lexicon.Lexicon {
	return lexicon.FromWords([]string{
		"a", "an", "and", "the", "of", "for", "in", "with", "on",
		"theory", "objects", "system", "systems", "types", "type",
		"advances", "programming", "languages", "modern", "compiler",
		"design", "functional", "based", "working", "programmer",
		"things", "happen", "some",
		"A", "John", "Mitchell", "Benjamin", "Pierce", "Robin", "Milner",
	}, lexicon.Options{})
}
