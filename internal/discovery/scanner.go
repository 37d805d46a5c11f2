package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"promptgen/internal/config"
	"promptgen/internal/domain"
	"promptgen/internal/logging"
)

// Scanner finds test files laid out by the test_ directory convention:
//
//	<anything>/my_test_dir/test_foo.py
//	<anything>/my_test_dir/source_files/foo.py
//	<anything>/my_test_dir/dependent_files/helpers.py
type Scanner struct {
	marker     string
	sourceDir  string
	depDir     string
	extensions []string
	skipDirs   map[string]bool
	logger     *zap.Logger
}

// NewScanner creates a Scanner from the discovery settings in cfg
func NewScanner(cfg *config.Config, logger *zap.Logger) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range cfg.PathsToIgnore {
		skipMap[dir] = true
	}
	return &Scanner{
		marker:     cfg.TestDirMarker,
		sourceDir:  cfg.SourceDirName,
		depDir:     cfg.DependencyDirName,
		extensions: cfg.SourceExtensions,
		skipDirs:   skipMap,
		logger:     logging.OrNop(logger),
	}
}

// Scan walks root and returns every file that sits directly inside a test
// directory, in walk order. A root that does not exist yields no entries.
func (s *Scanner) Scan(root string) ([]domain.TestFileEntry, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("repository path does not exist", zap.String("path", root))
			return nil, nil
		}
		return nil, fmt.Errorf("stat repository path %s: %w", root, err)
	}
	if !info.IsDir() {
		s.logger.Warn("repository path is not a directory", zap.String("path", root))
		return nil, nil
	}

	var entries []domain.TestFileEntry
	mappings := make(map[string]domain.FileMapping)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if path != root && s.skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}

		dir := filepath.Dir(path)
		if !s.IsTestDir(dir) {
			return nil
		}

		mapping, ok := mappings[dir]
		if !ok {
			mapping, err = s.mapDir(dir)
			if err != nil {
				return err
			}
			mappings[dir] = mapping
			s.logger.Debug("test directory",
				zap.String("dir", dir),
				zap.Int("sources", len(mapping.Sources)),
				zap.Int("dependencies", len(mapping.Dependencies)))
		}

		entries = append(entries, domain.TestFileEntry{Path: path, Dir: dir, Mapping: mapping})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	s.logger.Debug("scan finished", zap.String("root", root), zap.Int("test_files", len(entries)))
	return entries, nil
}

// IsTestDir reports whether the base name of dir contains the test marker
func (s *Scanner) IsTestDir(dir string) bool {
	return strings.Contains(filepath.Base(dir), s.marker)
}

func (s *Scanner) mapDir(dir string) (domain.FileMapping, error) {
	sources, err := s.collect(filepath.Join(dir, s.sourceDir))
	if err != nil {
		return domain.FileMapping{}, err
	}
	deps, err := s.collect(filepath.Join(dir, s.depDir))
	if err != nil {
		return domain.FileMapping{}, err
	}
	if len(deps) == 0 {
		deps = []string{domain.Sentinel}
	}
	if sources == nil {
		sources = []string{}
	}
	return domain.FileMapping{Sources: sources, Dependencies: deps}, nil
}

// collect lists files in dir with a recognized extension. A missing dir is
// an empty result.
func (s *Scanner) collect(dir string) ([]string, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var files []string
	for _, item := range items {
		if item.IsDir() || !s.hasExtension(item.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, item.Name()))
	}
	return files, nil
}

func (s *Scanner) hasExtension(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Mapping keys entries by test file path
func Mapping(entries []domain.TestFileEntry) map[string]domain.FileMapping {
	out := make(map[string]domain.FileMapping, len(entries))
	for _, e := range entries {
		out[e.Path] = e.Mapping
	}
	return out
}
