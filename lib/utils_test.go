package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exists.xml")
	require.NoError(t, os.WriteFile(path, []byte("<scpd/>"), 0644))

	assert.True(t, LocalFileExists(path))
	assert.False(t, LocalFileExists(filepath.Join(dir, "missing.xml")))
}
