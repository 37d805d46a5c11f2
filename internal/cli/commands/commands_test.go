package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptgen/internal/cli"
	"promptgen/internal/domain"
)

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "promptgen"}
	NewCommands(&cli.Flags{}).Register(root)
	root.SetOut(new(strings.Builder))
	root.SetErr(new(strings.Builder))
	return root
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	root := newRoot()
	root.SetArgs(cli.ExpandMultiValue(args, MultiValueFlags))
	return root.Execute()
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", dir)
	t.Setenv("PROMPTGEN_PROGRESS", "false")
	return dir
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
}

func readRecords(t *testing.T, path string) []domain.ConversationRecord {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var records []domain.ConversationRecord
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var r domain.ConversationRecord
		require.NoError(t, json.Unmarshal([]byte(line), &r))
		records = append(records, r)
	}
	return records
}

func TestAuto_DefaultOutput(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{
		"repo/foo/test_bar/test_bar.py":         "def test_x(): pass",
		"repo/foo/test_bar/source_files/bar.py": "def x(): return 1",
	})

	require.NoError(t, execute(t, "auto",
		"--repository", "acme", "--repo_path", "repo", "--language", "python", "--framework", "pytest"))

	records := readRecords(t, filepath.Join(dir, "fine_tuning.jsonl"))
	require.Len(t, records, 1)
	require.Len(t, records[0].Messages, 2)
	assert.Contains(t, records[0].Messages[1].Content, "def x(): return 1")
	assert.Contains(t, records[0].Messages[1].Content, "### Dependency File: empty.txt")
}

func TestAuto_IncludeAssistantFlag(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{"repo/test_a/test_a.py": "assert 1"})

	require.NoError(t, execute(t, "auto", "--include_assistant",
		"--repository", "acme", "--repo_path", "repo", "--language", "python", "--framework", "pytest",
		"--output", "out/corpus.jsonl"))

	records := readRecords(t, filepath.Join(dir, "out", "corpus.jsonl"))
	require.Len(t, records[0].Messages, 3)
	assert.Equal(t, "```python\nassert 1\n```", records[0].Messages[2].Content)
}

func TestAuto_MissingRequiredFlag(t *testing.T) {
	isolate(t)

	err := execute(t, "auto", "--repository", "acme", "--language", "python", "--framework", "pytest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repo_path")
}

func TestAuto_ConfigFileOutput(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{
		"repo/test_a/test_a.py": "",
		".promptgen.yaml":       "output: configured.jsonl\n",
	})

	require.NoError(t, execute(t, "auto",
		"--repository", "acme", "--repo_path", "repo", "--language", "python", "--framework", "pytest"))
	assert.FileExists(t, filepath.Join(dir, "configured.jsonl"))
}

func TestGenerate_SpaceSeparatedValues(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{
		"a.txt":       "A",
		"b.txt":       "B",
		"dep.txt":     "D",
		"example.txt": "assert True",
	})

	require.NoError(t, execute(t, "generate",
		"--repository", "acme",
		"--source_file", "pkg/a.py", "pkg/b.py",
		"--test_file", "tests/test_ab.py",
		"--language", "python",
		"--framework", "pytest",
		"--source_file_content", "a.txt", "b.txt",
		"--dependencies_file_content", "dep.txt",
		"--test_example_content", "example.txt"))

	records := readRecords(t, filepath.Join(dir, "fine_tuning.jsonl"))
	require.Len(t, records, 1)
	require.Len(t, records[0].Messages, 3)

	user := records[0].Messages[1].Content
	assert.Contains(t, user, "### Source File: pkg/a.py\nA\n\n### Source File: pkg/b.py\nB")
	assert.Contains(t, user, "### Dependency File: dep.txt\nD")
	assert.Equal(t, "```python\nassert True\n```", records[0].Messages[2].Content)
}

func TestGenerate_MissingContentFile(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{"example.txt": ""})

	err := execute(t, "generate",
		"--repository", "acme",
		"--source_file", "a.py",
		"--test_file", "test_a.py",
		"--language", "python",
		"--framework", "pytest",
		"--source_file_content", "missing.txt",
		"--dependencies_file_content", "empty.txt",
		"--test_example_content", "example.txt")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "fine_tuning.jsonl"))
}

func TestStats_MissingFile(t *testing.T) {
	isolate(t)
	assert.Error(t, execute(t, "stats", "--output", "nope.jsonl"))
}

func TestStats_ReadsRecords(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{
		"corpus.jsonl": `{"messages":[{"role":"system","content":"s"},{"role":"user","content":"u"}]}` + "\n",
	})
	assert.NoError(t, execute(t, "stats", "--output", "corpus.jsonl"))
}

func TestList(t *testing.T) {
	dir := isolate(t)
	writeFiles(t, dir, map[string]string{"repo/test_a/test_a.py": "def test_one(): pass\n"})

	assert.NoError(t, execute(t, "list", "--repo_path", "repo", "--test-cases"))
}
