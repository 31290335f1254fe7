package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.edi")
	require.NoError(t, os.WriteFile(file, []byte("UNB+UNOC:3'"), 0o644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.edi")))
	assert.False(t, FileExists(dir), "a directory is not a file")
}

func TestDirectoryExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "sample.edi")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, DirectoryExists(dir))
	assert.False(t, DirectoryExists(filepath.Join(dir, "missing")))
	assert.False(t, DirectoryExists(file), "a file is not a directory")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Second call on an existing directory is a no-op.
	require.NoError(t, EnsureDirectoryExists(dir))
}

func TestReadFileAsString(t *testing.T) {
	file := filepath.Join(t.TempDir(), "sample.edi")
	require.NoError(t, os.WriteFile(file, []byte("UNB+UNOC:3+S+R'"), 0o644))

	content, err := ReadFileAsString(file)
	require.NoError(t, err)
	assert.Equal(t, "UNB+UNOC:3+S+R'", content)

	_, err = ReadFileAsString(filepath.Join(t.TempDir(), "missing.edi"))
	assert.Error(t, err)
}

func TestWriteFileCreatesParents(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "out", "report.json")

	require.NoError(t, WriteFile(file, []byte("{}")))

	content, err := ReadFileAsString(file)
	require.NoError(t, err)
	assert.Equal(t, "{}", content)
}

func TestListFilesWithExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.edi", "b.EDI", "c.txt", "d.json"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.edi"), 0o755))

	files, err := ListFilesWithExtensions(dir, ".edi", ".txt")
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.ElementsMatch(t, []string{"a.edi", "b.EDI", "c.txt"}, names)

	_, err = ListFilesWithExtensions(filepath.Join(dir, "missing"), ".edi")
	assert.Error(t, err)
}
