// ABOUTME: Content directory discovery for the markdown library
// ABOUTME: Walks the content tree and maps markdown files to URL slugs

package library

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// entry is one discovered markdown file
type entry struct {
	slug    string
	path    string
	size    int64
	modTime time.Time
}

// discover walks contentDir for .md files. Directories whose name starts
// with "_" or "." are skipped entirely.
func discover(contentDir string) ([]entry, error) {
	var entries []entry

	err := filepath.WalkDir(contentDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != contentDir && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}

		if filepath.Ext(path) != ".md" {
			return nil
		}

		relPath, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		entries = append(entries, entry{
			slug:    slugFor(relPath),
			path:    path,
			size:    info.Size(),
			modTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].slug < entries[j].slug
	})

	return entries, nil
}

// slugFor maps a relative file path to its URL slug
// ("tutorials/webdev.md" -> "tutorials/webdev")
func slugFor(relPath string) string {
	slug := filepath.ToSlash(relPath)
	return strings.TrimSuffix(slug, ".md")
}

// validSlug rejects empty slugs and path traversal attempts
func validSlug(slug string) bool {
	if slug == "" || strings.HasPrefix(slug, "/") {
		return false
	}
	for _, part := range strings.Split(slug, "/") {
		if part == "" || part == "." || part == ".." {
			return false
		}
	}
	return true
}
