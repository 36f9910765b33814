// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/papermv/internal/history"
	"github.com/pdiddy/papermv/internal/lexicon"
	"github.com/pdiddy/papermv/internal/title"
	"github.com/pdiddy/papermv/pkg/types"
)

// bindFlags binds the named flags of cmd to config keys. It runs when the
// command runs so that commands sharing a key do not shadow each other.
func bindFlags(cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			f = cmd.InheritedFlags().Lookup(flag)
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return nil
}

// loadConfig decodes the merged config file, environment, and bound flags
// over the defaults.
func loadConfig() (types.Config, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.Heuristics = cfg.Heuristics.WithDefaults()
	return cfg, nil
}

// newLogger builds the process logger. --verbose overrides the configured level.
func newLogger(cmd *cobra.Command, cfg types.LogConfig) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log, nil
}

// newEngine loads the dictionaries and builds the title engine. A
// dictionary that cannot be read is fatal for the whole run.
func newEngine(cfg types.Config, log logrus.FieldLogger) (*title.Engine, error) {
	lex, err := lexicon.Load(cfg.Dictionary)
	if err != nil {
		return nil, err
	}
	english, proper := lex.Sizes()
	log.WithFields(logrus.Fields{
		"path":    cfg.Dictionary.Path,
		"english": english,
		"proper":  proper,
	}).Debug("loaded dictionary")
	return title.NewEngine(lex, cfg.Heuristics, log), nil
}

// openHistory opens the history store, or returns nil when history is
// disabled.
func openHistory(cfg types.HistoryConfig) (*history.Store, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return history.NewStore(cfg)
}
