package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yildizm/bfhlctl/internal/bfhl"
	"github.com/yildizm/bfhlctl/internal/config"
	"github.com/yildizm/bfhlctl/internal/logger"
	"github.com/yildizm/go-logparser"
)

// Store is an append-only JSON-lines log of completed submissions.
// It records what happened; nothing is ever resubmitted from it.
type Store struct {
	path       string
	maxEntries int
	disabled   bool
	log        *logger.Logger
}

// logLine is the wire shape of one history entry. The standard
// timestamp/level/message triple keeps the file parseable as an
// ordinary JSON log; the full record rides along.
type logLine struct {
	Timestamp time.Time    `json:"timestamp"`
	Level     string       `json:"level"`
	Message   string       `json:"message"`
	Record    *bfhl.Record `json:"record"`
}

// NewStore creates a history store from configuration
func NewStore(cfg config.HistoryConfig) *Store {
	return &Store{
		path:       config.ExpandPath(cfg.File),
		maxEntries: cfg.MaxEntries,
		disabled:   cfg.Disabled,
		log:        logger.Default("history"),
	}
}

// Append records a completed submission attempt.
// The oldest entries are dropped once the log exceeds max_entries.
func (s *Store) Append(record *bfhl.Record) error {
	if s.disabled {
		return nil
	}

	level := "info"
	message := "Data processed successfully"
	if record.Error != "" {
		level = "error"
		message = record.Error
	}

	data, err := json.Marshal(logLine{
		Timestamp: record.SubmittedAt,
		Level:     level,
		Message:   message,
		Record:    record,
	})
	if err != nil {
		return fmt.Errorf("failed to encode history entry: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	lines, err := s.readLines()
	if err != nil {
		// A corrupt log should not block new submissions; start over
		s.log.Warn("resetting unreadable history log", logger.Err(err))
		lines = nil
	}

	lines = append(lines, string(data))
	if len(lines) > s.maxEntries {
		lines = lines[len(lines)-s.maxEntries:]
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(s.path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write history log: %w", err)
	}

	s.log.Debug("recorded submission", logger.F("id", record.ID), logger.F("entries", len(lines)))
	return nil
}

// List returns up to limit records, newest first.
// A limit of 0 returns everything.
func (s *Store) List(limit int) ([]*bfhl.Record, error) {
	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}

	p := logparser.NewWithFormat(logparser.FormatJSON)
	entries, err := p.ParseString(strings.Join(lines, "\n"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse history log: %w", err)
	}

	records := make([]*bfhl.Record, 0, len(entries))
	for i := range entries {
		record, err := recordFromEntry(&entries[i])
		if err != nil {
			s.log.Warn("skipping malformed history entry", logger.Err(err))
			continue
		}
		records = append(records, record)
	}

	// The file is oldest-first; the listing is newest-first
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

// Path returns the expanded history file location
func (s *Store) Path() string {
	return s.path
}

// readLines reads the raw log lines, tolerating a missing file
func (s *Store) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history log: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

// recordFromEntry maps a parsed log entry back to a submission record
func recordFromEntry(entry *logparser.LogEntry) (*bfhl.Record, error) {
	raw, ok := entry.Fields["record"]
	if !ok {
		return nil, fmt.Errorf("entry has no record field")
	}

	// The parser decodes nested objects generically; round-trip
	// through JSON to get the typed record back.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode record field: %w", err)
	}

	var record bfhl.Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	return &record, nil
}
