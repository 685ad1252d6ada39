package txtar

import (
	"fmt"
	"strings"
)

// Format renders the archive back to its textual form. The comment
// and each file's data pass through newline normalization, so the
// output parses back to an equivalent archive as long as no file name
// contains a newline or surrounding white space.
func Format(a *Archive) []byte {
	return []byte(a.String())
}

// String implements fmt.Stringer via Format.
func (a *Archive) String() string {
	var b strings.Builder
	b.WriteString(fixNewline(a.Comment))
	for _, f := range a.Files {
		fmt.Fprintf(&b, "-- %s --\n", f.Name)
		b.WriteString(fixNewline(f.Data))
	}
	return b.String()
}
