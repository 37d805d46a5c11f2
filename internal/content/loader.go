package content

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"promptgen/internal/domain"
	"promptgen/internal/logging"
)

// ErrInvalidUTF8 is returned for files that are not valid UTF-8 text
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8")

// Loader reads file bodies for prompt assembly
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new Loader
func NewLoader(logger *zap.Logger) *Loader {
	return &Loader{logger: logging.OrNop(logger)}
}

// Load returns the contents of paths in the same order. The sentinel path
// loads as an empty string without touching the disk.
func (l *Loader) Load(paths []string) ([]string, error) {
	contents := make([]string, 0, len(paths))
	for _, path := range paths {
		body, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}
		contents = append(contents, body)
	}
	return contents, nil
}

// LoadFile returns the full text of a single file
func (l *Loader) LoadFile(path string) (string, error) {
	if path == domain.Sentinel {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("read %s: %w", path, ErrInvalidUTF8)
	}

	l.logger.Debug("loaded file", zap.String("path", path), zap.Int("bytes", len(data)))
	return string(data), nil
}
