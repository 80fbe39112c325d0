package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/notestrip/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Overwrite Copy
// Destinations are replaced wholesale so no stale entries survive a re-run

func TestCopyTree_CopiesSingleFile(t *testing.T) {
	t.Parallel()

	// Given a source file
	base := t.TempDir()
	src := filepath.Join(base, "logo.png")
	require.NoError(t, os.WriteFile(src, []byte{0x89, 0x50, 0x4e, 0x47}, 0644))

	// When I copy it
	dst := filepath.Join(base, "out", "logo.png")
	err := fs.CopyTree(src, dst)

	// Then the destination is byte-identical
	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, got)
}

func TestCopyTree_CopiesDirectoryRecursively(t *testing.T) {
	t.Parallel()

	// Given a source directory with nested content
	base := t.TempDir()
	src := filepath.Join(base, "assets")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "images"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "style.css"), []byte("body {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "images", "fig1.svg"), []byte("<svg/>"), 0644))

	// When I copy it
	dst := filepath.Join(base, "out", "assets")
	err := fs.CopyTree(src, dst)

	// Then every nested entry exists at the destination
	require.NoError(t, err)
	css, err := os.ReadFile(filepath.Join(dst, "style.css"))
	require.NoError(t, err)
	assert.Equal(t, "body {}", string(css))
	svg, err := os.ReadFile(filepath.Join(dst, "images", "fig1.svg"))
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(svg))
}

func TestCopyTree_ReplacesStaleDestination(t *testing.T) {
	t.Parallel()

	// Given a destination left over from a differently-structured run
	base := t.TempDir()
	src := filepath.Join(base, "assets")
	require.NoError(t, os.MkdirAll(src, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "current.txt"), []byte("new"), 0644))

	dst := filepath.Join(base, "out", "assets")
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "old-subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "stale.txt"), []byte("old"), 0644))

	// When I copy onto it
	err := fs.CopyTree(src, dst)

	// Then the stale entries are gone
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dst, "stale.txt"))
	assert.True(t, os.IsNotExist(err), "stale file should be removed")
	_, err = os.Stat(filepath.Join(dst, "old-subdir"))
	assert.True(t, os.IsNotExist(err), "stale subdirectory should be removed")

	// And the current entries are present
	got, err := os.ReadFile(filepath.Join(dst, "current.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestCopyTree_MissingSourceFails(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	err := fs.CopyTree(filepath.Join(base, "nope"), filepath.Join(base, "out"))

	require.Error(t, err)
}

func TestWriteFile_CreatesParentDirectories(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	path := filepath.Join(base, "deep", "nested", "ch.html")

	err := fs.WriteFile(path, []byte("<p>hi</p>"))

	require.NoError(t, err)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(got))
}

func TestCopyFile_OverwritesExistingDestination(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	src := filepath.Join(base, "a.txt")
	dst := filepath.Join(base, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("fresh"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("previous content that is longer"), 0644))

	err := fs.CopyFile(src, dst)

	require.NoError(t, err)
	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(got))
}
