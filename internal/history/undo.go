// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/pdiddy/papermv/pkg/types"
)

// ErrNotUndoable is returned for records that cannot be reverted: failed,
// dry-run, or already undone attempts, and renames whose files have since
// moved.
var ErrNotUndoable = errors.New("rename cannot be undone")

// Undo moves the renamed file of record id back to its original path and
// marks the record undone. It refuses to overwrite a file that now holds
// the original name.
func (s *Store) Undo(ctx context.Context, id int64) (types.RenameRecord, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return rec, err
	}
	if rec.Status != types.StatusRenamed {
		return rec, fmt.Errorf("%w: record %d is %s", ErrNotUndoable, id, rec.Status)
	}

	if _, err := os.Lstat(rec.DestPath); err != nil {
		return rec, fmt.Errorf("%w: %s: %v", ErrNotUndoable, rec.DestPath, err)
	}
	if _, err := os.Lstat(rec.SourcePath); err == nil {
		return rec, fmt.Errorf("%w: %s already exists", ErrNotUndoable, rec.SourcePath)
	} else if !os.IsNotExist(err) {
		return rec, fmt.Errorf("checking %s: %w", rec.SourcePath, err)
	}

	if err := os.Rename(rec.DestPath, rec.SourcePath); err != nil {
		return rec, fmt.Errorf("moving %s back to %s: %w", rec.DestPath, rec.SourcePath, err)
	}
	if err := s.setStatus(ctx, id, types.StatusUndone); err != nil {
		return rec, err
	}
	rec.Status = types.StatusUndone
	return rec, nil
}
