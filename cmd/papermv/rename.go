// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papermv/internal/convert"
	"github.com/pdiddy/papermv/internal/rename"
	"github.com/pdiddy/papermv/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename [files...]",
	Short: "Rename PDF and PostScript files after their inferred titles",
	Long: `Rename extracts the first pages of each document, infers its title, and
renames the file to the title's slug with the extension of its detected
format. PDFs are read with pdftotext, then with the built-in PDF reader,
then from the document's metadata title. PostScript is read with pstotext.

A file whose title cannot be found, or whose new name is already taken, is
reported and left in place; the remaining files are still processed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRename,
}

func runRename(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"dictionary.path":      "dict",
		"extraction.max_pages": "pages",
		"rename.dest_dir":      "dir",
		"rename.dry_run":       "dry-run",
		"rename.exclusive":     "exclusive",
	}); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Enabled = false
	}
	if noMeta, _ := cmd.Flags().GetBool("no-metadata"); noMeta {
		cfg.Extraction.MetadataFallback = false
	}

	log, err := newLogger(cmd, cfg.Log)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	if cfg.Rename.DestDir != "" {
		if err := os.MkdirAll(cfg.Rename.DestDir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", cfg.Rename.DestDir, err)
		}
	}

	proc := rename.NewProcessor(convert.NewPipeline(cfg.Extraction), engine, cfg.Rename, log)

	store, err := openHistory(cfg.History)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
		proc.WithRecorder(store)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	result := proc.RunBatch(ctx, args, os.Stdout)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted after %d of %d file(s): %w", result.Total(), len(args), err)
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d file(s) failed", result.Failed, result.Total())
	}
	return nil
}

func init() {
	defaults := types.DefaultConfig()

	renameCmd.Flags().String("dict", defaults.Dictionary.Path, "word list used to recognize English words and proper names")
	renameCmd.Flags().Int("pages", defaults.Extraction.MaxPages, "number of leading pages to read")
	renameCmd.Flags().String("dir", "", "directory for renamed files (default: each file's own directory)")
	renameCmd.Flags().Bool("dry-run", false, "print the new names without renaming")
	renameCmd.Flags().Bool("exclusive", false, "claim the new name with a hard link so concurrent runs cannot collide")
	renameCmd.Flags().Bool("no-history", false, "do not record renames in the history ledger")
	renameCmd.Flags().Bool("no-metadata", false, "do not fall back to the PDF metadata title")

	rootCmd.AddCommand(renameCmd)
}
