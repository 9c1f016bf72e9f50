package fileutil_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/basics/internal/failure"
	"github.com/idelchi/basics/internal/fileutil"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	out := filepath.Join(dir, "out.bin")

	require.NoError(t, os.WriteFile(src, []byte("source"), 0o644))

	size, err := fileutil.WriteAtomic(src, out, []byte("payload"), false)
	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), size)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temporary files left behind")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(out)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestWriteAtomic_OverwritesAndKeepsExecBit(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("execute bits are not meaningful on windows")
	}

	dir := t.TempDir()
	src := filepath.Join(dir, "tool.sh")
	out := filepath.Join(dir, "tool.sh.enc")

	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755)) //nolint:gosec // executable fixture
	require.NoError(t, os.WriteFile(out, []byte("stale"), 0o600))

	_, err := fileutil.WriteAtomic(src, out, []byte("fresh"), false)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o711), info.Mode().Perm())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(got))
}

func TestWriteAtomic_PreservesTimestamps(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	out := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, past, past))

	_, err := fileutil.WriteAtomic(src, out, []byte("y"), true)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "got %s", info.ModTime())
}

func TestWriteAtomic_MissingParentDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0o600))

	out := filepath.Join(dir, "missing", "out")

	_, err := fileutil.WriteAtomic(src, out, []byte("y"), false)
	require.ErrorIs(t, err, failure.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = os.Stat(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, os.ErrNotExist, "parent directories must not be created")
}

func TestWriteAtomic_MissingSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := fileutil.WriteAtomic(filepath.Join(dir, "absent"), filepath.Join(dir, "out"), nil, false)
	require.ErrorIs(t, err, failure.ErrIO)
}

func TestSameFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	other := filepath.Join(dir, "other.txt")
	link := filepath.Join(dir, "link.txt")

	require.NoError(t, os.WriteFile(file, []byte("a"), 0o600))
	require.NoError(t, os.WriteFile(other, []byte("a"), 0o600))
	require.NoError(t, os.Link(file, link))

	abs, err := filepath.Abs(file)
	require.NoError(t, err)

	assert.True(t, fileutil.SameFile(file, file))
	assert.True(t, fileutil.SameFile(file, filepath.Join(dir, ".", "file.txt")))
	assert.True(t, fileutil.SameFile(file, abs))
	assert.True(t, fileutil.SameFile(file, link), "hard link")
	assert.False(t, fileutil.SameFile(file, other))
	assert.False(t, fileutil.SameFile(file, filepath.Join(dir, "absent")))
}
