// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/pdiddy/papermv/internal/convert"
	"github.com/pdiddy/papermv/internal/title"
	"github.com/pdiddy/papermv/pkg/types"
)

// Inferrer turns extracted text into title tokens. *title.Engine
// implements it.
type Inferrer interface {
	Infer(r io.Reader) ([]string, error)
}

// Recorder persists the outcome of each attempt. *history.Store
// implements it.
type Recorder interface {
	Record(ctx context.Context, rec *types.RenameRecord) error
}

// Inference is a title inferred for one document.
type Inference struct {
	Slug      string
	Tokens    []string
	Format    convert.Format
	Converter string
}

// Processor runs documents through detection, text extraction, title
// inference, and renaming.
type Processor struct {
	pipeline *convert.Pipeline
	engine   Inferrer
	opts     Options
	dryRun   bool
	recorder Recorder
	log      logrus.FieldLogger
	now      func() time.Time
}

// NewProcessor returns a Processor. A nil log discards diagnostics.
func NewProcessor(pipeline *convert.Pipeline, engine Inferrer, cfg types.RenameConfig, log logrus.FieldLogger) *Processor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Processor{
		pipeline: pipeline,
		engine:   engine,
		opts:     Options{DestDir: cfg.DestDir, Exclusive: cfg.Exclusive},
		dryRun:   cfg.DryRun,
		log:      log,
		now:      time.Now,
	}
}

// WithRecorder makes p record every attempt with r.
func (p *Processor) WithRecorder(r Recorder) *Processor {
	p.recorder = r
	return p
}

// Infer detects the document's format and tries its converters in order
// until one yields text with a title. The returned error combines every
// converter's failure.
func (p *Processor) Infer(ctx context.Context, path string) (Inference, error) {
	format, err := p.pipeline.Detect(ctx, path)
	if err != nil {
		return Inference{}, err
	}

	var errs error
	for _, c := range p.pipeline.Converters(format) {
		log := p.log.WithFields(logrus.Fields{"file": path, "converter": c.Name()})

		text, err := c.Convert(ctx, path)
		if err != nil {
			log.WithError(err).Warn("conversion failed, trying next converter")
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", c.Name(), err))
			continue
		}
		log.Info("parsed document")

		tokens, err := p.engine.Infer(text)
		if err == nil {
			var slug string
			if slug, err = title.Normalize(tokens); err == nil {
				return Inference{Slug: slug, Tokens: tokens, Format: format, Converter: c.Name()}, nil
			}
		}
		log.WithError(err).Warn("no title in converted text, trying next converter")
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", c.Name(), err))
	}

	if errs == nil {
		errs = fmt.Errorf("%w: no converter for %s", convert.ErrExtraction, format)
	}
	return Inference{}, errs
}

// Process infers the title of the document at path and renames it,
// returning the record of the attempt with absolute paths. Failures are
// also returned as err.
func (p *Processor) Process(ctx context.Context, path string) (types.RenameRecord, error) {
	rec := types.RenameRecord{SourcePath: path}

	inf, err := p.Infer(ctx, path)
	if err == nil {
		rec.Slug = inf.Slug
		rec.Extractor = inf.Converter
		ext := inf.Format.Extension()
		if p.dryRun {
			rec.DestPath, err = Plan(inf.Slug, path, ext, p.opts)
			rec.Status = types.StatusDryRun
		} else {
			rec.DestPath, err = Rename(inf.Slug, path, ext, p.opts)
			rec.Status = types.StatusRenamed
		}
	}
	if err != nil {
		rec.Status = types.StatusFailed
		rec.Kind = KindOf(err)
		rec.Error = err.Error()
		rec.DestPath = ""
	}
	rec.SourcePath = AbsPath(rec.SourcePath)
	rec.DestPath = AbsPath(rec.DestPath)
	rec.At = p.now().UTC()

	if p.recorder != nil {
		if rerr := p.recorder.Record(ctx, &rec); rerr != nil {
			p.log.WithError(rerr).WithField("file", path).Warn("recording history failed")
		}
	}
	return rec, err
}

// BatchResult holds the outcome of a batch rename run.
type BatchResult struct {
	Renamed int
	Planned int
	Failed  int
	Kinds   map[types.ErrorKind]int
	Records []types.RenameRecord
	errs    error
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Renamed + r.Planned + r.Failed
}

// HasFailures reports whether any document failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Err returns every per-document failure combined, or nil.
func (r BatchResult) Err() error {
	return r.errs
}

// RunBatch processes paths in order, printing per-file status to w and
// returning a summary. A failed document never stops the batch; only
// context cancellation does.
func (p *Processor) RunBatch(ctx context.Context, paths []string, w io.Writer) BatchResult {
	result := BatchResult{Kinds: make(map[types.ErrorKind]int)}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			result.errs = multierr.Append(result.errs, err)
			break
		}

		rec, err := p.Process(ctx, path)
		result.Records = append(result.Records, rec)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			p.log.WithFields(logrus.Fields{
				"file": path,
				"kind": rec.Kind,
			}).WithError(err).Error("rename failed")
			result.Failed++
			result.Kinds[rec.Kind]++
			result.errs = multierr.Append(result.errs, fmt.Errorf("%s: %w", path, err))
			continue
		}

		if rec.Status == types.StatusDryRun {
			fmt.Fprintf(w, "would rename: %s -> %s\n", path, rec.DestPath)
			result.Planned++
		} else {
			fmt.Fprintf(w, "renamed: %s -> %s\n", path, rec.DestPath)
			result.Renamed++
		}
	}

	fmt.Fprintf(w, "\nBatch summary: %d renamed, %d planned, %d failed (total: %d)\n",
		result.Renamed, result.Planned, result.Failed, result.Total())
	return result
}
