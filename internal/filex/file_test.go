package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestEnsureDir_CreatesNested(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_ExistingIsNoop(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureDir(dir))
}

func TestUniquePath_NoCollision(t *testing.T) {
	dir := t.TempDir()
	got := UniquePath(dir, "a.txt")
	assert.Equal(t, filepath.Join(dir, "a.txt"), got)
}

func TestUniquePath_CollisionChain(t *testing.T) {
	dir := t.TempDir()

	touch(t, filepath.Join(dir, "a.txt"))
	assert.Equal(t, filepath.Join(dir, "a_1.txt"), UniquePath(dir, "a.txt"))

	touch(t, filepath.Join(dir, "a_1.txt"))
	assert.Equal(t, filepath.Join(dir, "a_2.txt"), UniquePath(dir, "a.txt"))
}

func TestUniquePath_NoExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "README"))
	assert.Equal(t, filepath.Join(dir, "README_1"), UniquePath(dir, "README"))
}
