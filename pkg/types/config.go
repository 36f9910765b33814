// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultWordList is the system word list used when no dictionary path is configured.
const DefaultWordList = "/usr/share/dict/words"

// DictionaryConfig controls how the word dictionaries are built.
type DictionaryConfig struct {
	// Path is the word list, one word per line.
	Path string `json:"path" yaml:"path" mapstructure:"path"`

	// ExtraWords are added to the English word set in addition to the
	// built-in domain terms (e.g. "parser", "subtyping").
	ExtraWords []string `json:"extra_words,omitempty" yaml:"extra_words,omitempty" mapstructure:"extra_words"`

	// RemoveProperNames are stripped from the proper-name set in addition to
	// the built-in exceptions (e.g. "Boolean").
	RemoveProperNames []string `json:"remove_proper_names,omitempty" yaml:"remove_proper_names,omitempty" mapstructure:"remove_proper_names"`
}

// Heuristics holds the empirically tuned thresholds of the title engine.
type Heuristics struct {
	// FirstLineMinWord is the minimum length of the English word a title's
	// first line must contain (default 4).
	FirstLineMinWord int `json:"first_line_min_word" yaml:"first_line_min_word" mapstructure:"first_line_min_word"`

	// ContinuationMinWord is the same limit for continuation lines (default 2).
	ContinuationMinWord int `json:"continuation_min_word" yaml:"continuation_min_word" mapstructure:"continuation_min_word"`

	// MinTitleTokens is the token count below which the engine keeps reading
	// continuation lines regardless of how the title ends (default 12).
	MinTitleTokens int `json:"min_title_tokens" yaml:"min_title_tokens" mapstructure:"min_title_tokens"`

	// ProperNameDivisor rejects a line when divisor*properNames >= tokens
	// (default 3, i.e. one third or more).
	ProperNameDivisor int `json:"proper_name_divisor" yaml:"proper_name_divisor" mapstructure:"proper_name_divisor"`

	// LetterSpacingRatio is the share of single-character tokens above which
	// a line is treated as letter-spaced (default 0.5).
	LetterSpacingRatio float64 `json:"letter_spacing_ratio" yaml:"letter_spacing_ratio" mapstructure:"letter_spacing_ratio"`
}

// ExtractionConfig holds settings for turning documents into plain text.
type ExtractionConfig struct {
	// MaxPages is the number of leading pages handed to the title engine (default 2).
	MaxPages int `json:"max_pages" yaml:"max_pages" mapstructure:"max_pages"`

	// Pdftotext is the pdftotext binary name or path.
	Pdftotext string `json:"pdftotext" yaml:"pdftotext" mapstructure:"pdftotext"`

	// Pstotext is the pstotext binary name or path.
	Pstotext string `json:"pstotext" yaml:"pstotext" mapstructure:"pstotext"`

	// MetadataFallback enables the PDF Info dictionary title as a last resort.
	MetadataFallback bool `json:"metadata_fallback" yaml:"metadata_fallback" mapstructure:"metadata_fallback"`
}

// RenameConfig holds settings for the rename stage.
type RenameConfig struct {
	// DestDir receives renamed files. Empty means the input file's directory.
	DestDir string `json:"dest_dir" yaml:"dest_dir" mapstructure:"dest_dir"`

	// DryRun reports the inferred name without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run" mapstructure:"dry_run"`

	// Exclusive claims the destination with a hard link so that a concurrent
	// process cannot win the same name between check and rename.
	Exclusive bool `json:"exclusive" yaml:"exclusive" mapstructure:"exclusive"`
}

// HistoryConfig holds settings for the rename ledger.
type HistoryConfig struct {
	// Enabled records every rename attempt.
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`

	// Dir contains history.db and export files.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`

	// MaxResults is the default number of records listed (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a logrus level name (default "info").
	Level string `json:"level" yaml:"level" mapstructure:"level"`
}

// Config groups all stage configurations.
type Config struct {
	Dictionary DictionaryConfig `json:"dictionary" yaml:"dictionary" mapstructure:"dictionary"`
	Heuristics Heuristics       `json:"heuristics" yaml:"heuristics" mapstructure:"heuristics"`
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction" mapstructure:"extraction"`
	Rename     RenameConfig     `json:"rename" yaml:"rename" mapstructure:"rename"`
	History    HistoryConfig    `json:"history" yaml:"history" mapstructure:"history"`
	Log        LogConfig        `json:"log" yaml:"log" mapstructure:"log"`
}

// DefaultHeuristics returns the thresholds the engine was tuned with.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		FirstLineMinWord:    4,
		ContinuationMinWord: 2,
		MinTitleTokens:      12,
		ProperNameDivisor:   3,
		LetterSpacingRatio:  0.5,
	}
}

// DefaultConfig returns a Config with every default filled in.
func DefaultConfig() Config {
	return Config{
		Dictionary: DictionaryConfig{Path: DefaultWordList},
		Heuristics: DefaultHeuristics(),
		Extraction: ExtractionConfig{
			MaxPages:         2,
			Pdftotext:        "pdftotext",
			Pstotext:         "pstotext",
			MetadataFallback: true,
		},
		History: HistoryConfig{
			Enabled:    true,
			Dir:        ".papermv",
			MaxResults: 20,
		},
		Log: LogConfig{Level: "info"},
	}
}

// WithDefaults fills zero-valued thresholds with their defaults.
func (h Heuristics) WithDefaults() Heuristics {
	d := DefaultHeuristics()
	if h.FirstLineMinWord <= 0 {
		h.FirstLineMinWord = d.FirstLineMinWord
	}
	if h.ContinuationMinWord <= 0 {
		h.ContinuationMinWord = d.ContinuationMinWord
	}
	if h.MinTitleTokens <= 0 {
		h.MinTitleTokens = d.MinTitleTokens
	}
	if h.ProperNameDivisor <= 0 {
		h.ProperNameDivisor = d.ProperNameDivisor
	}
	if h.LetterSpacingRatio <= 0 {
		h.LetterSpacingRatio = d.LetterSpacingRatio
	}
	return h
}
