package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input.edi")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.NoError(t, IsValidPath(file))
	assert.NoError(t, IsValidPath(dir))

	err := IsValidPath(filepath.Join(dir, "missing.edi"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestIsValidOutputFormat(t *testing.T) {
	for _, format := range []string{"json", "yaml", "csv"} {
		assert.NoError(t, IsValidOutputFormat(format))
	}

	err := IsValidOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}
