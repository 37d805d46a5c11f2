package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promptgen/internal/domain"
)

func entriesFor(paths ...string) []domain.TestFileEntry {
	entries := make([]domain.TestFileEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, domain.TestFileEntry{Path: p})
	}
	return entries
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		tests    []string
		pattern  string
		expected int
	}{
		{
			name:     "empty pattern returns all",
			tests:    []string{"test_cells.py", "test_toc.py", "test_stats.py"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			tests:    []string{"test_cells.py", "test_toc.py", "conftest.py"},
			pattern:  "test_*.py",
			expected: 2,
		},
		{
			name:     "wildcard pattern matches substring",
			tests:    []string{"test_cells.py", "test_cell_width.py", "test_toc.py"},
			pattern:  "*cell*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			tests:    []string{"test_cells.py", "test_toc.py"},
			pattern:  "toc",
			expected: 1,
		},
		{
			name:     "no matches",
			tests:    []string{"test_cells.py", "test_toc.py"},
			pattern:  "*protocol*",
			expected: 0,
		},
		{
			name:     "full path uses base name",
			tests:    []string{"/repo/test_a/test_cells.py", "/repo/test_cells_dir/test_toc.py"},
			pattern:  "*cells*",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(entriesFor(tt.tests...), tt.pattern)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestMatchName(t *testing.T) {
	assert.True(t, MatchName("test_cell_width.py", "*cell*width*"))
	assert.True(t, MatchName("test_a.py", "test_?.py"))
	assert.False(t, MatchName("test_ab.py", "test_?.py"))
	assert.False(t, MatchName("test_a.py", "***"))
	assert.True(t, MatchName("anything", ""))
}
