package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promptgen/internal/config"
	"promptgen/internal/domain"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
}

func TestScanner_Scan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"foo/test_bar/test_bar.py":                "def test_x(): pass",
		"foo/test_bar/conftest.py":                "",
		"foo/test_bar/source_files/bar.py":        "def x(): return 1",
		"foo/test_bar/source_files/baz.py":        "",
		"foo/test_bar/source_files/notes.txt":     "",
		"foo/my_test_dir/test_cells.py":           "",
		"foo/my_test_dir/dependent_files/util.py": "",
		"foo/my_test_dir/dependent_files/data.js": "",
		"foo/plain/test_ignored.py":               "",
		"README.md":                               "",
	})

	scanner := NewScanner(config.New(), nil)
	entries, err := scanner.Scan(root)
	require.NoError(t, err)

	byPath := Mapping(entries)
	require.Len(t, byPath, 3)

	bar := byPath[filepath.Join(root, "foo/test_bar/test_bar.py")]
	assert.Equal(t, []string{
		filepath.Join(root, "foo/test_bar/source_files/bar.py"),
		filepath.Join(root, "foo/test_bar/source_files/baz.py"),
	}, bar.Sources)
	assert.Equal(t, []string{domain.Sentinel}, bar.Dependencies)

	assert.Contains(t, byPath, filepath.Join(root, "foo/test_bar/conftest.py"))

	cells := byPath[filepath.Join(root, "foo/my_test_dir/test_cells.py")]
	assert.Empty(t, cells.Sources)
	assert.NotNil(t, cells.Sources)
	assert.Equal(t, []string{filepath.Join(root, "foo/my_test_dir/dependent_files/util.py")}, cells.Dependencies)

	for _, e := range entries {
		assert.Equal(t, filepath.Dir(e.Path), e.Dir)
	}
}

func TestScanner_Scan_SentinelWhenNoPythonDependencies(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"test_a/test_a.py":                "",
		"test_a/dependent_files/data.csv": "",
	})

	entries, err := NewScanner(config.New(), nil).Scan(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{domain.Sentinel}, entries[0].Mapping.Dependencies)
	assert.False(t, entries[0].Mapping.HasDependencies())
}

func TestScanner_Scan_RootIsTestDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "test_root")
	writeFiles(t, root, map[string]string{"test_one.py": ""})

	entries, err := NewScanner(config.New(), nil).Scan(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(root, "test_one.py"), entries[0].Path)
}

func TestScanner_Scan_MissingRoot(t *testing.T) {
	entries, err := NewScanner(config.New(), nil).Scan(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScanner_Scan_RootIsFile(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{"test_x/file.py": ""})

	entries, err := NewScanner(config.New(), nil).Scan(filepath.Join(root, "test_x/file.py"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScanner_Scan_SkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"venv/lib/test_pkg/test_vendor.py": "",
		"src/test_mine/test_mine.py":       "",
	})

	cfg := config.New()
	cfg.PathsToIgnore = []string{"venv"}

	entries, err := NewScanner(cfg, nil).Scan(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "test_mine.py", entries[0].FileName())
}

func TestScanner_Scan_CustomExtensions(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"test_go/test_go.py":               "",
		"test_go/source_files/a.pyi":       "",
		"test_go/source_files/b.py":        "",
		"test_go/dependent_files/c.pyi":    "",
		"test_go/dependent_files/sub/d.py": "",
	})

	cfg := config.New()
	cfg.SourceExtensions = []string{".pyi"}

	entries, err := NewScanner(cfg, nil).Scan(root)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, []string{filepath.Join(root, "test_go/source_files/a.pyi")}, entries[0].Mapping.Sources)
	assert.Equal(t, []string{filepath.Join(root, "test_go/dependent_files/c.pyi")}, entries[0].Mapping.Dependencies)
}

func TestScanner_IsTestDir(t *testing.T) {
	scanner := NewScanner(config.New(), nil)

	assert.True(t, scanner.IsTestDir("/a/test_bar"))
	assert.True(t, scanner.IsTestDir("/a/my_test_dir"))
	assert.False(t, scanner.IsTestDir("/a/tests"))
	assert.False(t, scanner.IsTestDir("/test_a/source_files"))
}
