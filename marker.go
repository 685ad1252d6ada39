package txtar

import "strings"

const (
	marker        = "-- "
	markerEnd     = " --"
	newlineMarker = "\n-- "
)

// findNextMarker locates the next valid marker line in s. On success
// it returns the text before the marker line, the trimmed file name
// (which may be empty) and the text after the marker line's newline.
// If no marker remains it returns (s, "", "", false).
func findNextMarker(s string) (before, name, after string, ok bool) {
	i := 0
	for {
		if name, after, ok = parseMarkerLine(s[i:]); ok {
			return s[:i], name, after, true
		}
		// Resume just past the newline of the failed candidate so
		// later lines are still tried.
		j := strings.Index(s[i:], newlineMarker)
		if j < 0 {
			return s, "", "", false
		}
		i += j + 1
	}
}

// parseMarkerLine checks whether s begins with a full marker line. It
// returns the trimmed name and the text following the line. The line
// must end with the close sequence after stripping at most one
// trailing carriage return, and must be longer than the open and
// close sequences combined.
func parseMarkerLine(s string) (name, after string, ok bool) {
	if !strings.HasPrefix(s, marker) {
		return "", "", false
	}

	line := s
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		line, after = s[:i], s[i+1:]
	}
	line = strings.TrimSuffix(line, "\r")

	if !strings.HasSuffix(line, markerEnd) || len(line) <= len(marker)+len(markerEnd) {
		return "", "", false
	}

	name = strings.TrimSpace(line[len(marker) : len(line)-len(markerEnd)])
	return name, after, true
}

// fixNewline appends a trailing newline to non-empty text that lacks
// one. Empty text stays empty.
func fixNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
