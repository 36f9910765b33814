// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package command runs the external tools the extractors depend on
// (pdftotext, pstotext, file) behind an injectable executor.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// ErrNotInstalled is returned when the tool binary is not on PATH.
var ErrNotInstalled = errors.New("tool not installed")

// Tool is an external program invoked with arguments, streaming its stdout.
type Tool interface {
	// Name returns the binary name or path.
	Name() string

	// Available reports whether the binary can be found on PATH.
	Available() bool

	// Run executes the tool with args and copies its stdout to stdout.
	// Stderr output is folded into the returned error.
	Run(ctx context.Context, args []string, stdout io.Writer) error
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	RunPiped(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) RunPiped(ctx context.Context, name string, args []string, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}

type tool struct {
	bin  string
	exec executor
}

func (t *tool) Name() string { return t.bin }

func (t *tool) Available() bool {
	_, err := t.exec.LookPath(t.bin)
	return err == nil
}

func (t *tool) Run(ctx context.Context, args []string, stdout io.Writer) error {
	if !t.Available() {
		return fmt.Errorf("%w: %s", ErrNotInstalled, t.bin)
	}
	var stderr bytes.Buffer
	if err := t.exec.RunPiped(ctx, t.bin, args, stdout, &stderr); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("running %s: %w: %s", t.bin, err, msg)
		}
		return fmt.Errorf("running %s: %w", t.bin, err)
	}
	return nil
}

var defaultExec = &osExecutor{}

// New returns a Tool for the named binary.
func New(bin string) Tool {
	return newTool(bin, defaultExec)
}

func newTool(bin string, exec executor) *tool {
	return &tool{bin: bin, exec: exec}
}

// Output runs t and returns its stdout.
func Output(ctx context.Context, t Tool, args ...string) ([]byte, error) {
	var out bytes.Buffer
	if err := t.Run(ctx, args, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
