package txtar

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestRead(t *testing.T) {
	a, err := Read(strings.NewReader("comment\n-- f --\ndata\n"))
	require.NoError(t, err)
	assert.Equal(t, "comment\n", a.Comment)
	require.Len(t, a.Files, 1)
	assert.Equal(t, "data\n", a.Files[0].Data)
}

func TestRead_Error(t *testing.T) {
	boom := errors.New("boom")
	a, err := Read(failingReader{err: boom})
	assert.Nil(t, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom, "underlying error must stay inspectable")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txtar")
	require.NoError(t, os.WriteFile(path, []byte("hi\n-- f --\nbody"), 0o644))

	a, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", a.Comment)
	assert.Equal(t, "body\n", a.MustGet("f").Data)
}

func TestLoad_Testdata(t *testing.T) {
	a, err := Load(filepath.Join("testdata", "basic.txtar"))
	require.NoError(t, err)
	assert.True(t, a.Contains("hello.txt"))
	assert.Equal(t, "hello world\n", a.MustGet("hello.txt").Data)
}

func TestLoad_Missing(t *testing.T) {
	a, err := Load(filepath.Join(t.TempDir(), "nope.txtar"))
	assert.Nil(t, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
