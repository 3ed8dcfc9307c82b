package loader

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.asm")
	assert.NoError(t, os.WriteFile(path, []byte("NOP\n"), 0o600))

	l := New()

	reader, err := l.Open(path)
	assert.NoError(t, err)
	data, err := io.ReadAll(reader)
	assert.NoError(t, err)
	assert.NoError(t, reader.Close())
	assert.Equal(t, "NOP\n", string(data))

	data, err = l.Read(path)
	assert.NoError(t, err)
	assert.Equal(t, "NOP\n", string(data))
}

func TestLoader_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.asm")
	l := New()

	_, err := l.Open(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.ErrorContains(t, err, "missing.asm")

	_, err = l.Read(path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
