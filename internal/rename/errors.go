// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"errors"

	"github.com/pdiddy/papermv/internal/convert"
	"github.com/pdiddy/papermv/internal/lexicon"
	"github.com/pdiddy/papermv/internal/title"
	"github.com/pdiddy/papermv/pkg/types"
)

// KindOf maps err onto the failure taxonomy. When several converters
// failed for different reasons, a missing title outranks an extraction
// failure: some text was read, it just held no title.
func KindOf(err error) types.ErrorKind {
	switch {
	case err == nil:
		return types.KindNone
	case errors.Is(err, lexicon.ErrLoad):
		return types.KindDictionaryLoad
	case errors.Is(err, ErrTitleCollision):
		return types.KindTitleCollision
	case errors.Is(err, convert.ErrUnsupportedFormat):
		return types.KindUnsupportedFormat
	case errors.Is(err, title.ErrNoTitleFound):
		return types.KindNoTitleFound
	case errors.Is(err, convert.ErrExtraction):
		return types.KindExtraction
	default:
		return types.KindOther
	}
}
