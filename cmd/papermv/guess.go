// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/papermv/internal/convert"
	"github.com/pdiddy/papermv/internal/rename"
	"github.com/pdiddy/papermv/internal/title"
	"github.com/pdiddy/papermv/pkg/types"
)

var guessCmd = &cobra.Command{
	Use:   "guess [text-file]",
	Short: "Infer a title from already-extracted text",
	Long: `Guess runs the title engine on plain text, read from the given file or
from standard input, and prints the resulting name. With --rename the
text file itself is renamed to that name.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGuess,
}

// guessResult is the --yaml output of guess.
type guessResult struct {
	Source string   `yaml:"source"`
	Tokens []string `yaml:"tokens"`
	Slug   string   `yaml:"slug"`
	Dest   string   `yaml:"dest,omitempty"`
}

func runGuess(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd, map[string]string{
		"dictionary.path": "dict",
		"rename.dest_dir": "dir",
	}); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	encName, _ := cmd.Flags().GetString("encoding")
	enc, err := convert.ParseEncoding(encName)
	if err != nil {
		return err
	}
	doRename, _ := cmd.Flags().GetBool("rename")
	if doRename && (len(args) == 0 || args[0] == "-") {
		return fmt.Errorf("--rename needs a file argument")
	}

	log, err := newLogger(cmd, cfg.Log)
	if err != nil {
		return err
	}
	engine, err := newEngine(cfg, log)
	if err != nil {
		return err
	}

	var (
		in     io.Reader = os.Stdin
		source           = "-"
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, source = f, args[0]
	}

	tokens, err := engine.Infer(convert.Decode(in, enc))
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	slug, err := title.Normalize(tokens)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	res := guessResult{Source: source, Tokens: tokens, Slug: slug}

	if doRename {
		ext, _ := cmd.Flags().GetString("ext")
		if !cmd.Flags().Changed("ext") {
			ext = filepath.Ext(source)
		}
		dest, err := renameGuessed(cmd.Context(), cfg, log, slug, source, ext)
		if err != nil {
			return err
		}
		res.Dest = dest
	}

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		out := yaml.NewEncoder(os.Stdout)
		defer out.Close()
		return out.Encode(&res)
	}
	if res.Dest != "" {
		fmt.Printf("renamed: %s -> %s\n", source, res.Dest)
		return nil
	}
	fmt.Println(slug)
	return nil
}

// renameGuessed renames the text file and records the attempt. History
// failures are logged and do not fail the rename.
func renameGuessed(ctx context.Context, cfg types.Config, log logrus.FieldLogger, slug, src, ext string) (string, error) {
	dest, err := rename.Rename(slug, src, ext, rename.Options{
		DestDir:   cfg.Rename.DestDir,
		Exclusive: cfg.Rename.Exclusive,
	})

	store, herr := openHistory(cfg.History)
	if herr != nil {
		log.WithError(herr).Warn("opening history failed")
	} else if store != nil {
		defer store.Close()
		rec := types.RenameRecord{
			SourcePath: rename.AbsPath(src),
			DestPath:   rename.AbsPath(dest),
			Slug:       slug,
			Extractor:  "text",
			Status:     types.StatusRenamed,
			At:         time.Now().UTC(),
		}
		if err != nil {
			rec.Status, rec.Kind, rec.Error = types.StatusFailed, rename.KindOf(err), err.Error()
		}
		if rerr := store.Record(ctx, &rec); rerr != nil {
			log.WithError(rerr).WithField("file", src).Warn("recording history failed")
		}
	}
	return dest, err
}

func init() {
	guessCmd.Flags().String("dict", types.DefaultWordList, "word list used to recognize English words and proper names")
	guessCmd.Flags().String("encoding", string(convert.UTF8), "text encoding: utf-8 or latin-1")
	guessCmd.Flags().BoolP("rename", "r", false, "rename the text file to the inferred title")
	guessCmd.Flags().String("ext", "", "extension for the renamed file (default: keep the file's extension)")
	guessCmd.Flags().String("dir", "", "directory for the renamed file (default: the file's own directory)")
	guessCmd.Flags().Bool("yaml", false, "print tokens and name as YAML")

	rootCmd.AddCommand(guessCmd)
}
