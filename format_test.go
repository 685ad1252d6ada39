package txtar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_RoundTrip(t *testing.T) {
	a := New()
	a.Comment = "generated archive\n"
	a.Add("a.txt", "hello\n")
	a.Add("dir/b.txt", "no trailing newline")
	a.Add("empty", "")
	a.Add("dup", "first\n")
	a.Add("dup", "second\n")

	back := Parse(string(Format(a)))

	assert.Equal(t, a.Comment, back.Comment)
	require.Len(t, back.Files, len(a.Files))
	for i := range a.Files {
		assert.Equal(t, a.Files[i].Name, back.Files[i].Name, "files[%d].Name", i)
		assert.Equal(t, a.Files[i].Data, back.Files[i].Data, "files[%d].Data", i)
	}
}

func TestFormat_Empty(t *testing.T) {
	assert.Equal(t, "", New().String())
}

func TestFormat_CommentNewline(t *testing.T) {
	a := &Archive{Comment: "no newline"}
	a.Add("f", "x\n")
	assert.Equal(t, "no newline\n-- f --\nx\n", a.String())
}

func TestFormat_ParsedArchiveIsStable(t *testing.T) {
	// Formatting a parsed archive and parsing again is a fixed point.
	first := Parse(basicArchive)
	second := Parse(string(Format(first)))
	assert.Equal(t, first, second)
	assert.Equal(t, string(Format(first)), string(Format(second)))
}
