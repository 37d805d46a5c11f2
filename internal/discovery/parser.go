package discovery

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Python test functions and methods, optionally async:
//
//	def test_cell_len():
//	    async def test_connect(self):
var testFuncPattern = regexp.MustCompile(`(?m)^[ \t]*(?:async[ \t]+)?def[ \t]+(test\w*)[ \t]*\(`)

// Parser parses test files to extract test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// FindTestCases returns the sorted, de-duplicated test function names in a file
func (p *Parser) FindTestCases(filePath string) ([]string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return ParseTestCases(string(content)), nil
}

// ParseTestCases extracts test function names from Python source
func ParseTestCases(source string) []string {
	seen := make(map[string]bool)
	for _, match := range testFuncPattern.FindAllStringSubmatch(source, -1) {
		seen[match[1]] = true
	}

	testCases := make([]string, 0, len(seen))
	for name := range seen {
		testCases = append(testCases, name)
	}
	sort.Strings(testCases)
	return testCases
}
