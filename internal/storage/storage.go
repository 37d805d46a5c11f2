package storage

import (
	"go.uber.org/zap"

	"promptgen/internal/config"
	"promptgen/internal/domain"
	"promptgen/internal/logging"
)

// Storage appends conversation records to the corpus and reads them back
type Storage interface {
	// Open starts an append session; every Write lands as one line.
	Open() (RecordSink, error)
	// Append writes records in a single open/close cycle and returns the bytes written.
	Append(records ...domain.ConversationRecord) (int64, error)
	Load() ([]domain.ConversationRecord, error)
	Path() string
}

// RecordSink receives records one at a time
type RecordSink interface {
	Write(record domain.ConversationRecord) error
	Records() int
	Bytes() int64
	Close() error
}

// JSONLStorage stores records as JSON Lines at the config's output path
type JSONLStorage struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewJSONLStorage returns a Storage that appends to and reads the config's output path
func NewJSONLStorage(cfg *config.Config, logger *zap.Logger) *JSONLStorage {
	return &JSONLStorage{cfg: cfg, logger: logging.OrNop(logger)}
}

// Path returns the output file, resolved at call time so flag overrides apply
func (s *JSONLStorage) Path() string {
	return s.cfg.GetOutputPath()
}
