// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package title

import "regexp"

// Character classes. Word characters are Unicode letters, marks, digits,
// and underscore.
const (
	wordClass   = `\p{L}\p{M}\p{N}_`
	letterClass = `\p{L}\p{M}_`
)

var (
	// reBadChars matches everything a cleaned line may not contain: anything
	// outside word characters, whitespace, hyphen, apostrophe, period,
	// colon, and plus.
	reBadChars = regexp.MustCompile(`[^` + wordClass + `\s\-'.:+]`)

	// reCapRun matches an uppercase letter and the non-uppercase run after
	// it. Used to re-segment letter-spaced text.
	reCapRun = regexp.MustCompile(`\p{Lu}\P{Lu}*`)

	reWhitespace = regexp.MustCompile(`\s+`)

	// reWords splits a line into letter runs and digit runs for classification.
	reWords = regexp.MustCompile(`[` + letterClass + `]+|\p{Nd}+`)

	// reLegible extracts title tokens: word characters, apostrophes, hyphens.
	reLegible = regexp.MustCompile(`[` + wordClass + `'-]+`)

	// reCopyright matches "c 1998 Name..." style notices. Clean has already
	// stripped the parentheses around the marker and spelled © as "c".
	reCopyright = regexp.MustCompile(`^\(?c\)?\S*\s+[0-9]{4}\s+[` + wordClass + `]`)
)
