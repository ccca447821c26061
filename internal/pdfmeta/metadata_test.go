package pdfmeta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFile(t *testing.T) {
	info, ok := Read(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.False(t, ok)
	assert.Equal(t, Info{}, info)
}

// A file that is not a PDF must yield empty metadata, never an error.
func TestReadGarbageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf at all"), 0600))

	info, ok := Read(path)
	assert.False(t, ok)
	assert.Nil(t, info.Title)
	assert.Nil(t, info.Author)
}

func TestOptional(t *testing.T) {
	assert.Nil(t, optional(""))
	v := optional("My Document")
	require.NotNil(t, v)
	assert.Equal(t, "My Document", *v)
}
