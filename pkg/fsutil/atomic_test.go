package fsutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nix")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("{ a = b; }"), 0o640))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{ a = b; }", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestWriteAtomicOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nix")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("new"), 0o644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestWriteAtomicDefaultMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nix")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("x"), 0))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, info.Mode().Perm())
}

func TestWriteAtomicCancelled(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nix")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WriteAtomic(ctx, path, []byte("x"), 0o644)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, path)
}

func TestWriteAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.nix")

	require.NoError(t, WriteAtomic(context.Background(), path, []byte("x"), 0o644))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "out.nix", entries[0].Name())
}

func TestWriteAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.nix")
	assert.Error(t, WriteAtomic(context.Background(), path, []byte("x"), 0o644))
}
