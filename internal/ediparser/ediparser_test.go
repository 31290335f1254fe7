package ediparser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected bool
	}{
		{"UNB header", "UNB+UNOC:3+S+R+240101:1200+REF1'", true},
		{"UNA header", "UNA:+.? 'UNB+UNOC:3+S+R'", true},
		{"Leading whitespace", "\n  UNB+UNOC:3+S+R'", true},
		{"Plain text", "hello world", false},
		{"Empty file", "", false},
		{"XML document", "<?xml version=\"1.0\"?><Document/>", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "input.edi")
			require.NoError(t, os.WriteFile(file, []byte(tc.content), 0o644))

			ok, err := ValidateFormat(file)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ok)
		})
	}
}

func TestValidateFormatMissingFile(t *testing.T) {
	ok, err := ValidateFormat(filepath.Join(t.TempDir(), "missing.edi"))
	assert.Error(t, err)
	assert.False(t, ok)
}
