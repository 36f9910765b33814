// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rename

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestTarget(t *testing.T) {
	tests := []struct {
		name string
		src  string
		opts Options
		want string
	}{
		{"same directory", "/papers/x.pdf", Options{}, "/papers/A_Theory_of_Objects.pdf"},
		{"dest dir", "/papers/x.pdf", Options{DestDir: "/sorted"}, "/sorted/A_Theory_of_Objects.pdf"},
		{"relative source", "x.pdf", Options{}, "A_Theory_of_Objects.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Target("A_Theory_of_Objects", tt.src, ".pdf", tt.opts))
		})
	}
}

func TestRename(t *testing.T) {
	for _, exclusive := range []bool{false, true} {
		t.Run(map[bool]string{false: "plain", true: "exclusive"}[exclusive], func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "x.pdf")
			touch(t, src, "paper")

			dest, err := Rename("A_Theory_of_Objects", src, ".pdf", Options{Exclusive: exclusive})
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "A_Theory_of_Objects.pdf"), dest)
			assert.Equal(t, "paper", readFile(t, dest))
			assert.NoFileExists(t, src)
		})
	}
}

func TestRenameDestDir(t *testing.T) {
	src := filepath.Join(t.TempDir(), "x.ps")
	touch(t, src, "ps")
	destDir := t.TempDir()

	dest, err := Rename("Foo_Bar", src, ".ps", Options{DestDir: destDir})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destDir, "Foo_Bar.ps"), dest)
	assert.FileExists(t, dest)
	assert.NoFileExists(t, src)
}

func TestRenameCollision(t *testing.T) {
	for _, exclusive := range []bool{false, true} {
		t.Run(map[bool]string{false: "plain", true: "exclusive"}[exclusive], func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "x.pdf")
			existing := filepath.Join(dir, "Foo_Bar.pdf")
			touch(t, src, "new")
			touch(t, existing, "old")

			dest, err := Rename("Foo_Bar", src, ".pdf", Options{Exclusive: exclusive})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTitleCollision))
			assert.Empty(t, dest)
			assert.Equal(t, "new", readFile(t, src))
			assert.Equal(t, "old", readFile(t, existing))
		})
	}
}

func TestPlan(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "x.pdf")
	touch(t, src, "new")

	dest, err := Plan("Foo_Bar", src, ".pdf", Options{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Foo_Bar.pdf"), dest)
	assert.NoFileExists(t, dest)

	touch(t, dest, "old")
	_, err = Plan("Foo_Bar", src, ".pdf", Options{})
	assert.ErrorIs(t, err, ErrTitleCollision)
	assert.Equal(t, "old", readFile(t, dest))
	assert.Equal(t, "new", readFile(t, src))
}

func TestAbsPath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	assert.Equal(t, "", AbsPath(""))
	assert.Equal(t, filepath.Join(dir, "x.pdf"), AbsPath("x.pdf"))
	assert.Equal(t, "/papers/x.pdf", AbsPath("/papers/x.pdf"))
}

func TestRenameMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := Rename("Foo_Bar", filepath.Join(dir, "missing.pdf"), ".pdf", Options{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTitleCollision))
	assert.NoFileExists(t, filepath.Join(dir, "Foo_Bar.pdf"))
}

// chdir changes the working directory for the duration of the test
// (stand-in for testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
