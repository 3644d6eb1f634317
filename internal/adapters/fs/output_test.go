package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylegen/internal/adapters/fs"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	h := fs.NewHasher()
	path := filepath.Join(t.TempDir(), "out.css")
	require.NoError(t, os.WriteFile(path, []byte("body{margin:0}"), 0o600))

	sum, ok, err := h.ComputeFileHash(path)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, h.HashString("body{margin:0}"), sum)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, ok, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "nope.css"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOutputWriter_WriteIfChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles", "out.css")
	w := fs.NewOutputWriter(fs.NewHasher(), false)

	written, err := w.WriteIfChanged(t.Context(), path, "body{margin:0}")
	require.NoError(t, err)
	assert.True(t, written, "first write creates the file")

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))

	written, err = w.WriteIfChanged(t.Context(), path, "body{margin:0}")
	require.NoError(t, err)
	assert.False(t, written, "same content is not rewritten")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.WithinDuration(t, past, info.ModTime(), time.Second)

	written, err = w.WriteIfChanged(t.Context(), path, "body{margin:1px}")
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "body{margin:1px}", string(data))
}

func TestOutputWriter_Force(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.css")
	require.NoError(t, os.WriteFile(path, []byte("a{}"), 0o600))

	written, err := fs.NewOutputWriter(fs.NewHasher(), true).WriteIfChanged(t.Context(), path, "a{}")
	require.NoError(t, err)
	assert.True(t, written)
}
