package domain

import "path/filepath"

// Sentinel stands in for "no dependency files found". Content loading maps it
// to an empty string without reading the disk.
const Sentinel = "empty.txt"

// FileMapping associates a test file with the files it was written against
type FileMapping struct {
	Sources      []string `json:"sources"`      // Paths under source_files
	Dependencies []string `json:"dependencies"` // Paths under dependent_files, never empty
}

// TestFileEntry represents a discovered test file
type TestFileEntry struct {
	Path    string      // Joined path of the test file
	Dir     string      // The test_ directory that owns it
	Mapping FileMapping // Associated source and dependency files
}

// FileName returns just the base name of the test file
func (e TestFileEntry) FileName() string {
	return filepath.Base(e.Path)
}

// HasDependencies reports whether the mapping carries real dependency files
func (m FileMapping) HasDependencies() bool {
	for _, dep := range m.Dependencies {
		if dep != Sentinel {
			return true
		}
	}
	return false
}
