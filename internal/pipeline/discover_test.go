package pipeline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover_FiltersExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.m4a")
	touch(t, dir, "b.m4a")
	touch(t, dir, "c.mp3")
	touch(t, dir, "readme.txt")

	items, err := Discover(dir, dir, "m4a", "wav")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, filepath.Join(dir, "a.m4a"), items[0].Source)
	assert.Equal(t, filepath.Join(dir, "a.wav"), items[0].Dest)
}

func TestDiscover_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "LOUD.M4A")
	touch(t, dir, "quiet.m4a")

	items, err := Discover(dir, dir, ".m4a", ".wav")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestDiscover_MirrorsRelativeStructure(t *testing.T) {
	src := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	touch(t, src, "a.m4a")
	touch(t, filepath.Join(src, "sub"), "b.m4a")

	items, err := Discover(src, out, "m4a", "wav")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, filepath.Join(out, "a.wav"), items[0].Dest)
	assert.Equal(t, filepath.Join(out, "sub", "b.wav"), items[1].Dest)
}

func TestDiscover_SortedDeterministically(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "zz.m4a")
	touch(t, dir, "aa.m4a")
	touch(t, dir, "mm.m4a")

	items, err := Discover(dir, dir, "m4a", "wav")
	require.NoError(t, err)
	for i := 1; i < len(items); i++ {
		assert.Less(t, items[i-1].Source, items[i].Source)
	}
}

func TestDiscover_EmptyTree(t *testing.T) {
	dir := t.TempDir()
	items, err := Discover(dir, dir, "m4a", "wav")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), t.TempDir(), "m4a", "wav")
	assert.Error(t, err)
}

func TestDiscover_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "file.m4a")
	_, err := Discover(filepath.Join(dir, "file.m4a"), dir, "m4a", "wav")
	assert.ErrorContains(t, err, "not a directory")
}

func TestDiscover_Restartable(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.m4a")

	first, err := Discover(dir, dir, "m4a", "wav")
	require.NoError(t, err)
	second, err := Discover(dir, dir, "m4a", "wav")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
