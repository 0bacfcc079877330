// File: internal/logger/logger.go
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// DefaultName is used when Options.Name is empty
const DefaultName = "root"

// ErrOpenLogFile is returned when the log file cannot be created or truncated
var ErrOpenLogFile = errors.New("cannot open log file")

// Options controls how Configure builds a Logger
type Options struct {
	// Name appears in every file sink record
	Name string
	// Level is the console threshold as a severity name, e.g. "INFO"
	Level string
	// LogFile, when set, receives every record at DEBUG and above
	LogFile string
	// Console defaults to os.Stderr
	Console io.Writer
}

// Logger is an explicitly constructed logging context. It owns its sinks,
// so building a second Logger never adds handlers to the first.
type Logger struct {
	*slog.Logger

	name  string
	level slog.Level
	sinks []*sink
	file  *os.File
}

// Creates the bootstrap logger that reports failures before, or instead of,
// a configured run
func New(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// Like New, and also installs the logger as the process default
func NewLogger(w io.Writer) *slog.Logger {
	logger := New(w)
	slog.SetDefault(logger)
	return logger
}

// Builds a Logger with a console sink filtered at opts.Level and, if
// opts.LogFile is set, a file sink that records everything
func Configure(opts Options) (*Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = DefaultName
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	sinks := []*sink{newConsoleSink(console, level)}

	var file *os.File
	if opts.LogFile != "" {
		file, err = os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpenLogFile, err)
		}
		sinks = append(sinks, newFileSink(file, opts.LogFile))
	}

	return &Logger{
		Logger: slog.New(newFanoutHandler(name, sinks)),
		name:   name,
		level:  level,
		sinks:  sinks,
		file:   file,
	}, nil
}

func (l *Logger) Name() string {
	return l.name
}

// Level is the console threshold
func (l *Logger) Level() slog.Level {
	return l.level
}

// Returns the attached sinks in the order they receive records
func (l *Logger) Sinks() []SinkInfo {
	infos := make([]SinkInfo, 0, len(l.sinks))
	for _, s := range l.sinks {
		infos = append(infos, SinkInfo{Kind: s.kind, Level: s.level, Path: s.path})
	}
	return infos
}

// Close releases the log file, if any. It is safe to call more than once.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
