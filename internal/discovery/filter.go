package discovery

import (
	"path/filepath"
	"strings"

	"promptgen/internal/domain"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps entries whose file name matches pattern.
// Supports patterns like "test_*.py" or "*cells*"; an empty pattern keeps all.
func (f *Filter) FilterByName(entries []domain.TestFileEntry, pattern string) []domain.TestFileEntry {
	if pattern == "" {
		return entries
	}

	var filtered []domain.TestFileEntry
	for _, entry := range entries {
		if MatchName(entry.FileName(), pattern) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// MatchName matches a base name against a wildcard or substring pattern
func MatchName(name, pattern string) bool {
	if pattern == "" {
		return true
	}
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	if !strings.Contains(pattern, "*") {
		return false
	}

	// Loose fallback for "*a*b*": every literal part must appear in the name
	nonEmpty := 0
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		nonEmpty++
		if !strings.Contains(name, part) {
			return false
		}
	}
	return nonEmpty > 0
}
