// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of rename attempts so that runs
// can be reviewed, exported, and undone.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/papermv/pkg/types"
)

const dbFile = "history.db"

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("history record not found")

// Store manages the rename history database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates the history database at cfg.Dir/history.db.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = types.DefaultConfig().History.Dir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, dir: dir, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS renames (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			source_path TEXT NOT NULL,
			dest_path TEXT,
			slug TEXT,
			extractor TEXT,
			status TEXT NOT NULL,
			kind TEXT,
			error TEXT,
			at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_renames_status ON renames(status)`,
		`CREATE INDEX IF NOT EXISTS idx_renames_dest ON renames(dest_path)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts rec and sets its ID. Relative paths are resolved against
// the working directory first so that Undo works from anywhere.
func (s *Store) Record(ctx context.Context, rec *types.RenameRecord) error {
	var err error
	if rec.SourcePath, err = absolute(rec.SourcePath); err != nil {
		return err
	}
	if rec.DestPath, err = absolute(rec.DestPath); err != nil {
		return err
	}
	at := rec.At
	if at.IsZero() {
		at = time.Now().UTC()
		rec.At = at
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO renames (source_path, dest_path, slug, extractor, status, kind, error, at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SourcePath, rec.DestPath, rec.Slug, rec.Extractor,
		string(rec.Status), string(rec.Kind), rec.Error, at.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("recording %s: %w", rec.SourcePath, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading record id: %w", err)
	}
	rec.ID = id
	return nil
}

// ListOptions filters List.
type ListOptions struct {
	// Status keeps only records with this status.
	Status types.RenameStatus

	// Kind keeps only failures of this kind.
	Kind types.ErrorKind

	// Path keeps records whose source or destination contains Path.
	Path string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// List returns matching records, newest first.
func (s *Store) List(ctx context.Context, opts ListOptions) ([]types.RenameRecord, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(`SELECT id, source_path, dest_path, slug, extractor, status, kind, error, at
		FROM renames WHERE 1=1`)

	if opts.Status != "" {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(opts.Status))
	}
	if opts.Kind != "" {
		qb.WriteString(` AND kind = ?`)
		args = append(args, string(opts.Kind))
	}
	if opts.Path != "" {
		qb.WriteString(` AND (instr(source_path, ?) > 0 OR instr(dest_path, ?) > 0)`)
		args = append(args, opts.Path, opts.Path)
	}

	qb.WriteString(` ORDER BY id DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []types.RenameRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Get returns the record with the given ID.
func (s *Store) Get(ctx context.Context, id int64) (types.RenameRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, dest_path, slug, extractor, status, kind, error, at
		FROM renames WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.RenameRecord{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return rec, err
}

func (s *Store) setStatus(ctx context.Context, id int64, status types.RenameStatus) error {
	_, err := s.db.ExecContext(ctx, `UPDATE renames SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("updating record %d: %w", id, err)
	}
	return nil
}

func absolute(path string) (string, error) {
	if path == "" || filepath.IsAbs(path) {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (types.RenameRecord, error) {
	var (
		rec                                  types.RenameRecord
		dest, slug, extractor, kind, errText sql.NullString
		status, at                           string
	)
	if err := sc.Scan(&rec.ID, &rec.SourcePath, &dest, &slug, &extractor,
		&status, &kind, &errText, &at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scanning record: %w", err)
	}
	rec.DestPath = dest.String
	rec.Slug = slug.String
	rec.Extractor = extractor.String
	rec.Status = types.RenameStatus(status)
	rec.Kind = types.ErrorKind(kind.String)
	rec.Error = errText.String

	t, err := time.Parse(time.RFC3339Nano, at)
	if err != nil {
		return rec, fmt.Errorf("parsing time of record %d: %w", rec.ID, err)
	}
	rec.At = t
	return rec, nil
}
