// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the papermv CLI, which renames
// academic papers after the title found on their first page.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the papermv CLI.
var rootCmd = &cobra.Command{
	Use:   "papermv",
	Short: "Rename PDF and PostScript papers after their titles",
	Long: `papermv reads the first pages of PDF and PostScript documents, infers the
paper's title with a dictionary-based heuristic, and renames each file to
a filesystem-safe form of that title (for example A_Theory_of_Objects.pdf).

Use rename for documents, guess for already-extracted text, and history to
review or undo earlier renames.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./papermv.yaml or ~/.config/papermv/papermv.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log classifier decisions at debug level")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("papermv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "papermv"))
		}
	}

	viper.SetEnvPrefix("PAPERMV")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
