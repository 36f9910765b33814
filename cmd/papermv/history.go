// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/papermv/internal/history"
	"github.com/pdiddy/papermv/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review, export, or undo recorded renames",
	Long: `History manages the local SQLite ledger of rename attempts. Every run of
rename records each file's outcome: renamed, would rename (dry run), or
failed with the reason.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded rename attempts, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(context.Background(), listOptsFromFlags(cmd))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.RenameRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-16s  %-9s  %-40s  %s\n", "ID", "Time", "Status", "Source", "Result")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, r := range records {
		src := r.SourcePath
		if len(src) > 40 {
			src = "..." + src[len(src)-37:]
		}
		result := r.DestPath
		if r.Status == types.StatusFailed {
			result = string(r.Kind)
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-16s  %-9s  %-40s  %s\n",
			r.ID, r.At.Local().Format("2006-01-02 15:04"), r.Status, src, result)
	}

	fmt.Fprintf(os.Stdout, "\n%d records\n", len(records))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history to YAML or JSON",
	Long: `Export writes the recorded attempts (or a filtered subset) to
export.yaml or export.json in the history directory.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := listOptsFromFlags(cmd)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// --- undo subcommand ---

var historyUndoCmd = &cobra.Command{
	Use:   "undo <id>...",
	Short: "Move renamed files back to their original names",
	Long: `Undo reverts the renames with the given history IDs. A rename is only
reverted when the renamed file is still in place and its original name is
free.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHistoryUndo,
}

func runHistoryUndo(cmd *cobra.Command, args []string) error {
	store, err := historyStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	failed := 0
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid history id %q", arg)
		}
		rec, err := store.Undo(context.Background(), id)
		if err != nil {
			fmt.Fprintf(os.Stdout, "failed:  %d (%v)\n", id, err)
			failed++
			continue
		}
		fmt.Fprintf(os.Stdout, "undone:  %s -> %s\n", rec.DestPath, rec.SourcePath)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d undo(s) failed", failed, len(args))
	}
	return nil
}

// --- shared helpers ---

func historyStore(cmd *cobra.Command) (*history.Store, error) {
	if err := bindFlags(cmd, map[string]string{
		"history.dir":         "history-dir",
		"history.max_results": "max-results",
	}); err != nil {
		return nil, err
	}
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return history.NewStore(cfg.History)
}

func listOptsFromFlags(cmd *cobra.Command) history.ListOptions {
	status, _ := cmd.Flags().GetString("status")
	kind, _ := cmd.Flags().GetString("kind")
	path, _ := cmd.Flags().GetString("path")
	limit, _ := cmd.Flags().GetInt("limit")

	return history.ListOptions{
		Status:     types.RenameStatus(status),
		Kind:       types.ErrorKind(kind),
		Path:       path,
		MaxResults: limit,
	}
}

func init() {
	defaults := types.DefaultConfig().History

	// Shared flags on the parent command, inherited by subcommands.
	historyCmd.PersistentFlags().String("history-dir", defaults.Dir, "directory holding history.db and exports")
	historyCmd.PersistentFlags().Int("max-results", defaults.MaxResults, "default number of records listed")

	for _, c := range []*cobra.Command{historyListCmd, historyExportCmd} {
		c.Flags().String("status", "", "filter by status: renamed, dry_run, failed, undone")
		c.Flags().String("kind", "", "filter failures by kind, e.g. no_title_found or title_collision")
		c.Flags().String("path", "", "filter by a substring of the source or destination path")
	}

	historyListCmd.Flags().Int("limit", 0, "maximum records (0 = use default)")
	historyListCmd.Flags().Bool("json", false, "output records as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	// Wire subcommands.
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyUndoCmd)

	rootCmd.AddCommand(historyCmd)
}
