package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Snapshot mirrors written price rows to a local CSV file, so a run's
// output survives even when the spreadsheet is unreachable afterwards.
type Snapshot struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewSnapshot creates (or truncates) the snapshot file and writes the
// header row.
func NewSnapshot(filename string, header []string) (*Snapshot, error) {
	if err := ensureDir(filename); err != nil {
		return nil, err
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("create snapshot file: %w", err)
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write snapshot header: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		f.Close()
		return nil, fmt.Errorf("flush snapshot header: %w", err)
	}

	return &Snapshot{file: f, writer: writer}, nil
}

// Append writes one record and flushes it immediately. Flushing per row
// keeps the snapshot current through a mid-run crash.
func (s *Snapshot) Append(record []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writer.Write(record); err != nil {
		return fmt.Errorf("write snapshot record: %w", err)
	}
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("flush snapshot record: %w", err)
	}
	return nil
}

// Close flushes and closes the file handle.
func (s *Snapshot) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		return fmt.Errorf("flush snapshot writer: %w", err)
	}
	return s.file.Close()
}

func ensureDir(filename string) error {
	dir := filepath.Dir(filename)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}
	return nil
}
