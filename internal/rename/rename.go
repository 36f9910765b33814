// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename applies inferred titles to documents on disk and runs the
// per-document pipeline (detect, extract, infer, rename) over a batch.
package rename

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrTitleCollision is returned when the destination name is already taken.
// No file is overwritten or moved in that case.
var ErrTitleCollision = errors.New("title collision")

// Options control how Rename claims its destination.
type Options struct {
	// DestDir receives the file. Empty means the source file's directory.
	DestDir string

	// Exclusive claims the destination with a hard link, which fails if the
	// name exists, before removing the source. It falls back to
	// check-then-rename when the filesystem does not support links.
	Exclusive bool
}

// Target returns the path slug+ext resolves to for src under opts.
func Target(slug, src, ext string, opts Options) string {
	dir := opts.DestDir
	if dir == "" {
		dir = filepath.Dir(src)
	}
	return filepath.Join(dir, slug+ext)
}

// Plan returns the destination Rename would use, or an error wrapping
// ErrTitleCollision if that name is already taken. Nothing is moved.
func Plan(slug, src, ext string, opts Options) (string, error) {
	dest := Target(slug, src, ext, opts)
	if _, err := os.Lstat(dest); err == nil {
		return "", fmt.Errorf("%w: %s already exists", ErrTitleCollision, dest)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking %s: %w", dest, err)
	}
	return dest, nil
}

// Rename moves src to slug+ext in the destination directory and returns
// the final path. If that name already exists it returns an error wrapping
// ErrTitleCollision and leaves both files untouched.
//
// Without Exclusive the existence check and the rename are separate steps;
// another process may claim the name in between.
func Rename(slug, src, ext string, opts Options) (string, error) {
	dest, err := Plan(slug, src, ext, opts)
	if err != nil {
		return "", err
	}

	if opts.Exclusive {
		done, err := linkRename(src, dest)
		if err != nil {
			return "", err
		}
		if done {
			return dest, nil
		}
	}

	if err := os.Rename(src, dest); err != nil {
		return "", fmt.Errorf("renaming %s to %s: %w", src, dest, err)
	}
	return dest, nil
}

// linkRename links src to dest, failing if dest exists, then unlinks src.
// It reports done=false when links are unsupported so the caller can fall
// back to a plain rename.
func linkRename(src, dest string) (done bool, err error) {
	if err := os.Link(src, dest); err != nil {
		if os.IsExist(err) {
			return true, fmt.Errorf("%w: %s already exists", ErrTitleCollision, dest)
		}
		return false, nil
	}
	if err := os.Remove(src); err != nil {
		os.Remove(dest)
		return true, fmt.Errorf("removing %s after linking: %w", src, err)
	}
	return true, nil
}

// AbsPath returns path made absolute against the working directory. Empty
// paths and paths that cannot be resolved are returned unchanged.
func AbsPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
