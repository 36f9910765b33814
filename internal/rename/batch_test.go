// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/papermv/internal/convert"
	"github.com/pdiddy/papermv/internal/lexicon"
	"github.com/pdiddy/papermv/internal/title"
	"github.com/pdiddy/papermv/pkg/types"
)

// fakeConverter returns canned text keyed by file base name.
type fakeConverter struct {
	name  string
	texts map[string]string
	err   error
	calls int
}

func (f *fakeConverter) Name() string { return f.name }

func (f *fakeConverter) Convert(ctx context.Context, path string) (io.Reader, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	text, ok := f.texts[filepath.Base(path)]
	if !ok {
		return nil, errors.New("no text")
	}
	return strings.NewReader(text), nil
}

// firstLine treats the first non-empty line as the title.
type firstLine struct{}

func (firstLine) Infer(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields, nil
		}
	}
	return nil, title.ErrNoTitleFound
}

// memRecorder keeps records in memory.
type memRecorder struct {
	records []types.RenameRecord
	err     error
}

func (m *memRecorder) Record(ctx context.Context, rec *types.RenameRecord) error {
	if m.err != nil {
		return m.err
	}
	rec.ID = int64(len(m.records) + 1)
	m.records = append(m.records, *rec)
	return nil
}

// newDoc writes a document with a PDF or PostScript header.
func newDoc(t *testing.T, dir, name string) string {
	t.Helper()
	header := "%PDF-1.4\n"
	if strings.HasSuffix(name, ".ps") {
		header = "%!PS-Adobe-3.0\n"
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(header), 0o644))
	return path
}

func newPipeline(chains map[convert.Format][]convert.Converter) *convert.Pipeline {
	return convert.NewPipelineWith(convert.NewDetector(nil), chains)
}

func TestProcessor_Infer(t *testing.T) {
	dir := t.TempDir()
	doc := newDoc(t, dir, "x.pdf")

	tests := []struct {
		name          string
		chain         []convert.Converter
		wantSlug      string
		wantConverter string
		wantKind      types.ErrorKind
	}{
		{
			name:          "first converter wins",
			chain:         []convert.Converter{&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "Foo Bar\n"}}},
			wantSlug:      "Foo_Bar",
			wantConverter: "pdftotext",
		},
		{
			name: "falls back after extraction failure",
			chain: []convert.Converter{
				&fakeConverter{name: "pdftotext", err: convert.ErrExtraction},
				&fakeConverter{name: "native", texts: map[string]string{"x.pdf": "Foo Bar\n"}},
			},
			wantSlug:      "Foo_Bar",
			wantConverter: "native",
		},
		{
			name: "falls back when text has no title",
			chain: []convert.Converter{
				&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "\n\n"}},
				&fakeConverter{name: "metadata", texts: map[string]string{"x.pdf": "Foo Bar"}},
			},
			wantSlug:      "Foo_Bar",
			wantConverter: "metadata",
		},
		{
			name: "no title outranks extraction failure",
			chain: []convert.Converter{
				&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": ""}},
				&fakeConverter{name: "native", err: convert.ErrExtraction},
			},
			wantKind: types.KindNoTitleFound,
		},
		{
			name:     "all converters fail",
			chain:    []convert.Converter{&fakeConverter{name: "pdftotext", err: convert.ErrExtraction}},
			wantKind: types.KindExtraction,
		},
		{
			name:     "slug without ASCII is no title",
			chain:    []convert.Converter{&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "Ωμέγα\n"}}},
			wantKind: types.KindNoTitleFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{convert.PDF: tt.chain}),
				firstLine{}, types.RenameConfig{}, nil)

			inf, err := p.Infer(context.Background(), doc)
			if tt.wantKind != types.KindNone {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSlug, inf.Slug)
			assert.Equal(t, tt.wantConverter, inf.Converter)
			assert.Equal(t, convert.PDF, inf.Format)
		})
	}
}

func TestProcessor_InferUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	conv := &fakeConverter{name: "pdftotext"}
	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{convert.PDF: {conv}}),
		firstLine{}, types.RenameConfig{}, nil)

	_, err := p.Infer(context.Background(), path)
	require.Error(t, err)
	assert.Equal(t, types.KindUnsupportedFormat, KindOf(err))
	assert.Zero(t, conv.calls)
}

func TestProcessor_ProcessDryRun(t *testing.T) {
	dir := t.TempDir()
	doc := newDoc(t, dir, "x.pdf")
	rec := &memRecorder{}

	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{
		convert.PDF: {&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "Foo Bar"}}},
	}), firstLine{}, types.RenameConfig{DryRun: true}, nil).WithRecorder(rec)

	got, err := p.Process(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, types.StatusDryRun, got.Status)
	assert.Equal(t, filepath.Join(dir, "Foo_Bar.pdf"), got.DestPath)
	assert.FileExists(t, doc)
	assert.NoFileExists(t, got.DestPath)
	require.Len(t, rec.records, 1)
	assert.Equal(t, "Foo_Bar", rec.records[0].Slug)
}

func TestProcessor_ProcessDryRunCollision(t *testing.T) {
	dir := t.TempDir()
	doc := newDoc(t, dir, "x.pdf")
	taken := filepath.Join(dir, "Foo_Bar.pdf")
	require.NoError(t, os.WriteFile(taken, []byte("old"), 0o644))

	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{
		convert.PDF: {&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "Foo Bar"}}},
	}), firstLine{}, types.RenameConfig{DryRun: true}, nil)

	var out bytes.Buffer
	result := p.RunBatch(context.Background(), []string{doc}, &out)
	assert.Equal(t, 0, result.Planned)
	assert.Equal(t, 1, result.Kinds[types.KindTitleCollision])
	assert.Contains(t, out.String(), "failed:  "+doc)
	assert.NotContains(t, out.String(), "would rename")
	assert.FileExists(t, doc)
}

func TestProcessor_ProcessRecordsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	newDoc(t, dir, "x.pdf")
	chdir(t, dir)
	rec := &memRecorder{}

	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{
		convert.PDF: {&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "Foo Bar"}}},
	}), firstLine{}, types.RenameConfig{}, nil).WithRecorder(rec)

	got, err := p.Process(context.Background(), "x.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "x.pdf"), got.SourcePath)
	assert.Equal(t, filepath.Join(dir, "Foo_Bar.pdf"), got.DestPath)
	require.Len(t, rec.records, 1)
	assert.Equal(t, got.SourcePath, rec.records[0].SourcePath)
	assert.Equal(t, got.DestPath, rec.records[0].DestPath)
}

func TestProcessor_ProcessRecorderFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	doc := newDoc(t, dir, "x.pdf")

	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{
		convert.PDF: {&fakeConverter{name: "pdftotext", texts: map[string]string{"x.pdf": "Foo Bar"}}},
	}), firstLine{}, types.RenameConfig{}, nil).WithRecorder(&memRecorder{err: errors.New("disk full")})

	got, err := p.Process(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, types.StatusRenamed, got.Status)
	assert.FileExists(t, got.DestPath)
}

func TestProcessor_RunBatch(t *testing.T) {
	dir := t.TempDir()
	good := newDoc(t, dir, "a.pdf")
	ps := newDoc(t, dir, "b.ps")
	dup := newDoc(t, dir, "c.pdf")
	empty := newDoc(t, dir, "d.pdf")

	texts := map[string]string{
		"a.pdf": "Foo Bar\nJohn Smith",
		"c.pdf": "Foo Bar",
		"d.pdf": "",
	}
	rec := &memRecorder{}
	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{
		convert.PDF:        {&fakeConverter{name: "pdftotext", texts: texts}},
		convert.PostScript: {&fakeConverter{name: "pstotext", texts: map[string]string{"b.ps": "Baz Qux"}}},
	}), firstLine{}, types.RenameConfig{}, nil).WithRecorder(rec)

	var out bytes.Buffer
	result := p.RunBatch(context.Background(), []string{good, ps, dup, empty}, &out)

	assert.Equal(t, 2, result.Renamed)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 4, result.Total())
	assert.True(t, result.HasFailures())
	assert.Equal(t, 1, result.Kinds[types.KindTitleCollision])
	assert.Equal(t, 1, result.Kinds[types.KindNoTitleFound])
	require.Error(t, result.Err())
	assert.Len(t, rec.records, 4)

	assert.FileExists(t, filepath.Join(dir, "Foo_Bar.pdf"))
	assert.FileExists(t, filepath.Join(dir, "Baz_Qux.ps"))
	assert.FileExists(t, dup)
	assert.FileExists(t, empty)

	text := out.String()
	assert.Contains(t, text, "renamed: "+good+" -> "+filepath.Join(dir, "Foo_Bar.pdf"))
	assert.Contains(t, text, "failed:  "+dup)
	assert.Contains(t, text, "Batch summary: 2 renamed, 0 planned, 2 failed (total: 4)")
}

func TestProcessor_RunBatchCancelled(t *testing.T) {
	dir := t.TempDir()
	doc := newDoc(t, dir, "a.pdf")
	conv := &fakeConverter{name: "pdftotext", texts: map[string]string{"a.pdf": "Foo Bar"}}
	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{convert.PDF: {conv}}),
		firstLine{}, types.RenameConfig{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := p.RunBatch(ctx, []string{doc}, io.Discard)
	assert.Zero(t, result.Total())
	assert.ErrorIs(t, result.Err(), context.Canceled)
	assert.Zero(t, conv.calls)
	assert.FileExists(t, doc)
}

func TestProcessor_WithTitleEngine(t *testing.T) {
	lex := lexicon.FromWords([]string{"a", "of", "theory", "objects", "John", "Mitchell"}, lexicon.Options{})
	engine := title.NewEngine(lex, types.DefaultHeuristics(), nil)

	dir := t.TempDir()
	doc := newDoc(t, dir, "mitchell96.pdf")
	p := NewProcessor(newPipeline(map[convert.Format][]convert.Converter{
		convert.PDF: {&fakeConverter{name: "pdftotext", texts: map[string]string{
			"mitchell96.pdf": "A Theory of Objects\nJohn C. Mitchell\n",
		}}},
	}), engine, types.RenameConfig{}, nil)

	got, err := p.Process(context.Background(), doc)
	require.NoError(t, err)
	assert.Equal(t, "A_Theory_of_Objects", got.Slug)
	assert.Equal(t, filepath.Join(dir, "A_Theory_of_Objects.pdf"), got.DestPath)
	assert.FileExists(t, got.DestPath)
}
