// Package txtar implements a trivial text-based file archive format.
//
// The goals for the format are that it should be trivial enough to
// create and edit by hand, and that it should diff nicely in git
// history and code reviews. Storing binary data, file modes and
// special files like symlinks are non-goals.
//
// An archive is zero or more comment lines followed by a sequence of
// file entries. Each entry begins with a marker line of the form
// "-- FILENAME --" and is followed by zero or more content lines.
// The comment or file content ends at the next marker line. The
// enclosed file name may be surrounded by additional white space,
// all of which is stripped.
//
// If the archive is missing a trailing newline on the final line,
// parsers consider a final newline to be present anyway. There are
// no possible syntax errors in an archive.
package txtar

import "fmt"

// Archive is a parsed collection of files with a leading comment.
// Files keep the order in which their markers appeared in the source;
// duplicate names are preserved, not merged.
type Archive struct {
	Comment string
	Files   []File
}

// File is a single entry in an Archive. After parsing, Data is either
// empty or ends in a single trailing newline.
type File struct {
	Name string
	Data string
}

// New returns an empty archive.
func New() *Archive {
	return &Archive{}
}

// Parse parses the text as an archive. Parsing is total: any input is
// a valid archive, possibly with zero files and the whole input as
// the comment.
func Parse(text string) *Archive {
	comment, name, after, ok := findNextMarker(text)
	a := &Archive{Comment: comment}
	for ok {
		data, next, rest, more := findNextMarker(after)
		a.Files = append(a.Files, File{Name: name, Data: fixNewline(data)})
		name, after, ok = next, rest, more
	}
	return a
}

// Add appends a file to the archive, normalizing its data to end in a
// newline. It is a construction helper; parsed archives should be
// treated as immutable.
func (a *Archive) Add(name, data string) {
	a.Files = append(a.Files, File{Name: name, Data: fixNewline(data)})
}

// Contains reports whether the archive holds a file with exactly the
// given name.
func (a *Archive) Contains(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Get returns the first file with the given name, or false if there
// is none.
func (a *Archive) Get(name string) (*File, bool) {
	for i := range a.Files {
		if a.Files[i].Name == name {
			return &a.Files[i], true
		}
	}
	return nil, false
}

// MustGet returns the first file with the given name and panics if
// there is none. Use Get to avoid the panic.
func (a *Archive) MustGet(name string) *File {
	f, ok := a.Get(name)
	if !ok {
		panic(fmt.Sprintf("txtar: archive does not contain file %q", name))
	}
	return f
}
