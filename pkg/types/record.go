// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// ErrorKind classifies why a document could not be renamed.
type ErrorKind string

const (
	KindNone              ErrorKind = ""
	KindDictionaryLoad    ErrorKind = "dictionary_load"
	KindNoTitleFound      ErrorKind = "no_title_found"
	KindTitleCollision    ErrorKind = "title_collision"
	KindExtraction        ErrorKind = "extraction"
	KindUnsupportedFormat ErrorKind = "unsupported_format"
	KindOther             ErrorKind = "other"
)

// RenameStatus indicates the outcome of one rename attempt.
type RenameStatus string

const (
	StatusRenamed RenameStatus = "renamed"
	StatusDryRun  RenameStatus = "dry_run"
	StatusFailed  RenameStatus = "failed"
	StatusUndone  RenameStatus = "undone"
)

// RenameRecord describes one document run through the renamer.
type RenameRecord struct {
	// ID is assigned by the history store; zero until recorded.
	ID int64 `json:"id" yaml:"id"`

	// SourcePath is the path of the document before renaming.
	SourcePath string `json:"source_path" yaml:"source_path"`

	// DestPath is the path after renaming. Empty when nothing was renamed.
	DestPath string `json:"dest_path,omitempty" yaml:"dest_path,omitempty"`

	// Slug is the inferred filesystem-safe title.
	Slug string `json:"slug,omitempty" yaml:"slug,omitempty"`

	// Extractor names the backend whose text produced the title
	// (e.g. "pdftotext", "native", "metadata").
	Extractor string `json:"extractor,omitempty" yaml:"extractor,omitempty"`

	// Status is the outcome of the attempt.
	Status RenameStatus `json:"status" yaml:"status"`

	// Kind classifies the failure when Status is StatusFailed.
	Kind ErrorKind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Error is the failure message when Status is StatusFailed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// At is when the attempt finished.
	At time.Time `json:"at" yaml:"at"`
}
