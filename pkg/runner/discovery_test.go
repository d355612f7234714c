package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverWalksDirectories(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.nix", "{}")
	b := writeFile(t, dir, "sub/b.nix", "{}")
	writeFile(t, dir, "sub/ignored.txt", "")

	files, err := Discover(context.Background(), Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, files)
}

func TestDiscoverExplicitFileIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	f := writeFile(t, dir, "flake.lock", "{}")

	files, err := Discover(context.Background(), Options{Paths: []string{f}})
	require.NoError(t, err)
	assert.Equal(t, []string{f}, files)
}

func TestDiscoverDeduplicates(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.nix", "{}")

	files, err := Discover(context.Background(), Options{Paths: []string{a, a, dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	keep := writeFile(t, dir, "keep.nix", "{}")
	writeFile(t, dir, "skip.nix", "{}")
	writeFile(t, dir, "vendor/dep.nix", "{}")

	files, err := Discover(context.Background(), Options{
		Paths:        []string{dir},
		ExcludeGlobs: []string{"skip.nix", "vendor"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{keep}, files)
}

func TestDiscoverSortedOutput(t *testing.T) {
	dir := t.TempDir()
	c := writeFile(t, dir, "c.nix", "{}")
	a := writeFile(t, dir, "a.nix", "{}")
	b := writeFile(t, dir, "b.nix", "{}")

	files, err := Discover(context.Background(), Options{Paths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, []string{a, b, c}, files)
}

func TestDiscoverMissingPath(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		Paths: []string{filepath.Join(t.TempDir(), "nope")},
	})
	assert.Error(t, err)
}

func TestDiscoverCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.nix", "{}")
	exp := writeFile(t, dir, "b.exp", "{}")

	files, err := Discover(context.Background(), Options{
		Paths:      []string{dir},
		Extensions: []string{".exp"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{exp}, files)
}

func TestDiscoverCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Discover(ctx, Options{Paths: []string{t.TempDir()}})
	assert.Error(t, err)
}
