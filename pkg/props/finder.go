package props

import (
	"os"
	"path/filepath"
)

// Finder locates resources by name on a process-wide search path.
type Finder interface {
	// FindAll returns every matching location, in search order.
	FindAll(name string) []string

	// FindFirst returns the default single resolution for a name.
	// It is used for single-resource lookups and as the fallback when
	// multiple matches were found but only one is allowed.
	FindFirst(name string) (string, bool)
}

// SearchPath is a Finder over an ordered list of directories.
type SearchPath []string

// FindAll returns every directory entry matching name, in path order
func (sp SearchPath) FindAll(name string) []string {
	var matches []string
	for _, dir := range sp {
		path := filepath.Join(dir, name)
		if isRegularFile(path) {
			matches = append(matches, path)
		}
	}
	return matches
}

// FindFirst returns the first directory entry matching name
func (sp SearchPath) FindFirst(name string) (string, bool) {
	for _, dir := range sp {
		path := filepath.Join(dir, name)
		if isRegularFile(path) {
			return path, true
		}
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
