package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"promptgen/internal/domain"
)

// ErrMalformedLine is returned by Load for a line that is not a record
var ErrMalformedLine = errors.New("malformed record line")

// Open opens the output file in append mode, creating it and its directory if needed.
func (s *JSONLStorage) Open() (RecordSink, error) {
	path := s.Path()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	s.logger.Debug("opened output", zap.String("path", path))
	return &fileSink{file: f, logger: s.logger}, nil
}

// Append writes records and closes the file again
func (s *JSONLStorage) Append(records ...domain.ConversationRecord) (int64, error) {
	sink, err := s.Open()
	if err != nil {
		return 0, err
	}
	for _, record := range records {
		if err := sink.Write(record); err != nil {
			sink.Close()
			return sink.Bytes(), err
		}
	}
	if err := sink.Close(); err != nil {
		return sink.Bytes(), err
	}
	return sink.Bytes(), nil
}

// Load reads every non-blank line of the output file
func (s *JSONLStorage) Load() ([]domain.ConversationRecord, error) {
	path := s.Path()
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses JSON Lines records from r. Lines may be arbitrarily long.
func Decode(r io.Reader) ([]domain.ConversationRecord, error) {
	var records []domain.ConversationRecord
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var record domain.ConversationRecord
			if uerr := json.Unmarshal(trimmed, &record); uerr != nil {
				return nil, fmt.Errorf("%w at line %d: %v", ErrMalformedLine, lineNo, uerr)
			}
			records = append(records, record)
		}
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", lineNo, err)
		}
	}
}

// Encode renders a record as a single JSON line, newline included
func Encode(record domain.ConversationRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	return buf.Bytes(), nil
}

type fileSink struct {
	file    *os.File
	logger  *zap.Logger
	records int
	bytes   int64
}

// Write marshals the whole record before touching the file so a failed
// marshal never leaves a partial line.
func (k *fileSink) Write(record domain.ConversationRecord) error {
	line, err := Encode(record)
	if err != nil {
		return err
	}
	n, err := k.file.Write(line)
	k.bytes += int64(n)
	if err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	k.records++
	k.logger.Debug("appended record", zap.Int("messages", len(record.Messages)), zap.Int("bytes", n))
	return nil
}

func (k *fileSink) Records() int { return k.records }

func (k *fileSink) Bytes() int64 { return k.bytes }

func (k *fileSink) Close() error {
	if err := k.file.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
