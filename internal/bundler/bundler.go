// Package bundler bridges directory trees and archives: it packs a
// tree of text files into an archive and extracts an archive back
// onto the filesystem.
package bundler

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"txtar"
)

// Bundler packs directory trees into archives.
type Bundler struct {
	ignored []string
}

// New creates a bundler. Directories whose base name appears in
// ignored are skipped entirely; nil means the usual suspects.
func New(ignored []string) *Bundler {
	if ignored == nil {
		ignored = []string{".git", "vendor", "node_modules"}
	}
	return &Bundler{ignored: ignored}
}

// Pack walks root and returns an archive holding every regular file
// found, named by its slash-separated path relative to root. Files
// that cannot be read are logged and skipped rather than failing the
// whole pack.
func (b *Bundler) Pack(root string) (*txtar.Archive, error) {
	a := txtar.New()

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range b.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			log.WithField("path", path).Warn("skipping unreadable file")
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		a.Add(filepath.ToSlash(rel), string(data))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", root, err)
	}

	return a, nil
}

// Extract writes each file of the archive under dir, creating parent
// directories as needed. File names must stay inside dir; absolute or
// parent-traversing names abort the extraction.
func Extract(a *txtar.Archive, dir string) error {
	for _, f := range a.Files {
		name := filepath.FromSlash(f.Name)
		if f.Name == "" || !filepath.IsLocal(name) {
			return fmt.Errorf("extract: unsafe file name %q", f.Name)
		}

		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
		if err := os.WriteFile(path, []byte(f.Data), 0o644); err != nil {
			return fmt.Errorf("extract %s: %w", f.Name, err)
		}
	}
	return nil
}
