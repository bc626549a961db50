package activity

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Log appends human-readable activity lines to a file. Entries are never
// read back by the program. Every line written through one Log carries the
// same run id.
type Log struct {
	file   *os.File
	logger *slog.Logger
	runID  string
}

// Open opens (or creates) the activity file at path for appending
func Open(path string) (*Log, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create activity log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity log: %w", err)
	}

	runID := uuid.NewString()
	return &Log{
		file:   f,
		logger: New(f).With("run", runID),
		runID:  runID,
	}, nil
}

// New returns a logger writing activity lines to w
func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// Logger returns the underlying structured logger
func (l *Log) Logger() *slog.Logger {
	return l.logger
}

// RunID identifies the invocation that owns this log
func (l *Log) RunID() string {
	return l.runID
}

// Close releases the file handle
func (l *Log) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Discard returns a logger that drops every entry
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
