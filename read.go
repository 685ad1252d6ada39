package txtar

import (
	"fmt"
	"io"
	"os"
)

// Read consumes r to completion and parses the result. Parsing never
// fails; the only error channel is the read itself.
func Read(r io.Reader) (*Archive, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	return Parse(string(data)), nil
}

// Load reads and parses the archive stored in the named file.
func Load(path string) (*Archive, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return Read(f)
}
