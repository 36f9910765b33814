//go:build mage

// Package main contains Mage build targets for papermv developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/pdiddy/papermv/internal/lexicon"
	"github.com/pdiddy/papermv/pkg/types"
)

const (
	binDir  = "bin"
	binName = "papermv"
	cmdPkg  = "./cmd/papermv"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil {
		version = "dev"
	}
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet over every package.
func Lint() error {
	return sh.RunV("go", "vet", "./...")
}

// Check lints, tests, and builds.
func Check() {
	mg.SerialDeps(Lint, Test, Build)
}

// Dict reports whether the default word list is installed. The title
// engine cannot run without one.
func Dict() error {
	path := types.DefaultWordList
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s not found: install a words package or set dictionary.path: %w", path, err)
	}
	fmt.Printf("%s (%d bytes)\n", path, info.Size())
	return nil
}

// Stats prints Go production and test line counts and the size of the
// dictionary the title engine would load.
func Stats() error {
	var prod, tests int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") || name == binDir) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		n, err := nonBlankLines(path)
		if err != nil {
			return err
		}
		if strings.HasSuffix(path, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)

	lex, err := lexicon.Load(types.DefaultConfig().Dictionary)
	if err != nil {
		fmt.Printf("Dictionary:                      unavailable (%v)\n", err)
		return nil
	}
	english, proper := lex.Sizes()
	fmt.Printf("Dictionary (English words):      %d\n", english)
	fmt.Printf("Dictionary (proper names):       %d\n", proper)
	return nil
}

func nonBlankLines(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n, nil
}
