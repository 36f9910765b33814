// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package title infers a document title from the first pages of its
// extracted plain text and turns it into a filesystem-safe slug.
//
// Lines flow through Clean, then the Classifier, then the Engine's
// stitching state machine, which finds the first usable line and decides
// how many of the following lines continue it.
package title

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/papermv/internal/lexicon"
	"github.com/pdiddy/papermv/pkg/types"
)

// ErrNoTitleFound is returned when no line of the input passes the classifier.
var ErrNoTitleFound = errors.New("no title found")

// maxLineSize bounds a single line handed to the engine.
const maxLineSize = 1 << 20

// State is a stitching engine state.
type State int

const (
	ScanningForStart State = iota
	Accumulating
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case ScanningForStart:
		return "scanning"
	case Accumulating:
		return "accumulating"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Engine finds the title start and stitches continuation lines onto it.
// An Engine holds no per-document state and can be reused.
type Engine struct {
	cls *Classifier
	h   types.Heuristics
	log logrus.FieldLogger
}

// NewEngine returns an Engine classifying against lex. A nil log discards
// the per-line diagnostics.
func NewEngine(lex *lexicon.Lexicon, h types.Heuristics, log logrus.FieldLogger) *Engine {
	h = h.WithDefaults()
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Engine{cls: NewClassifier(lex, h), h: h, log: log}
}

// Classifier returns the classifier the engine uses.
func (e *Engine) Classifier() *Classifier { return e.cls }

// Infer reads lines from r until a title has been stitched together and
// returns its tokens. It returns ErrNoTitleFound when r is exhausted
// without an acceptable line. A read error after the title was found ends
// the title there.
func (e *Engine) Infer(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	tokens, err := e.run(func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	})
	if err != nil {
		if scanErr := sc.Err(); scanErr != nil {
			return nil, fmt.Errorf("reading text: %w", scanErr)
		}
		return nil, err
	}
	return tokens, nil
}

// InferLines is Infer over lines already split.
func (e *Engine) InferLines(lines []string) ([]string, error) {
	i := 0
	return e.run(func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		i++
		return lines[i-1], true
	})
}

func (e *Engine) run(next func() (string, bool)) ([]string, error) {
	state := ScanningForStart
	var candidate []string

	for {
		switch state {
		case ScanningForStart:
			line, ok := next()
			if !ok {
				state = Failed
				continue
			}
			text := clean(line, e.h.LetterSpacingRatio)
			if e.classify(state, text, e.h.FirstLineMinWord).Bad() {
				continue
			}
			candidate = Tokens(text)
			state = Accumulating

		case Accumulating:
			if !e.incomplete(candidate) {
				state = Done
				continue
			}
			line, ok := next()
			if !ok {
				state = Done
				continue
			}
			text := clean(line, e.h.LetterSpacingRatio)
			if e.classify(state, text, e.h.ContinuationMinWord).Bad() {
				state = Done
				continue
			}
			candidate = append(candidate, Tokens(text)...)

		case Done:
			e.log.WithField("tokens", candidate).Debug("title found")
			return candidate, nil

		default:
			return nil, ErrNoTitleFound
		}
	}
}

func (e *Engine) classify(state State, text string, minWord int) Verdict {
	v := e.cls.Classify(text, minWord)
	e.log.WithFields(logrus.Fields{
		"state":  state.String(),
		"line":   text,
		"words":  v.Words,
		"reason": v.Reason.String(),
	}).Debug("classified line")
	return v
}

// incomplete reports whether the accumulated title looks unfinished: it
// ends with ':' or '-', its last token starts lowercase, or it is shorter
// than MinTitleTokens.
func (e *Engine) incomplete(tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	last := tokens[len(tokens)-1]
	if strings.HasSuffix(last, ":") || strings.HasSuffix(last, "-") {
		return true
	}
	if r, _ := utf8.DecodeRuneInString(last); unicode.IsLower(r) {
		return true
	}
	return len(tokens) < e.h.MinTitleTokens
}
