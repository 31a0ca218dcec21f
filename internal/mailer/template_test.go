package mailer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_ListsOnlyTxtFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "welcome.txt"), []byte("Hi {name}"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o770))

	names, err := Templates(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"welcome.txt"}, names)
}

func TestTemplates_MissingDirIsEmpty(t *testing.T) {
	names, err := Templates(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestRenderTemplate_SubstitutesName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "body.txt")
	require.NoError(t, os.WriteFile(path, []byte("Hello {name},\nyour files from {name}'s order."), 0o600))

	got, err := RenderTemplate(path, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "Hello Ana,\nyour files from Ana's order.", got)
}

func TestRenderTemplate_MissingFile(t *testing.T) {
	_, err := RenderTemplate(filepath.Join(t.TempDir(), "nope.txt"), "Ana")
	require.Error(t, err)
}
