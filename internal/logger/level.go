// File: internal/logger/level.go
package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// LevelCritical sits one step above slog.LevelError, mirroring the gap between
// the other built-in levels
const LevelCritical = slog.LevelError + 4

// ErrInvalidLevel is returned when a severity name is not in the level table
var ErrInvalidLevel = errors.New("invalid log level")

var levelNames = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

var levelTable = map[string]slog.Level{
	"DEBUG":    slog.LevelDebug,
	"INFO":     slog.LevelInfo,
	"WARNING":  slog.LevelWarn,
	"ERROR":    slog.LevelError,
	"CRITICAL": LevelCritical,
}

type levelError struct {
	value string
}

func (e *levelError) Error() string {
	return "Invalid log level: " + e.value
}

func (e *levelError) Unwrap() error {
	return ErrInvalidLevel
}

// Resolves a severity name (case-insensitive) to its slog level
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levelTable[strings.ToUpper(name)]
	if !ok {
		return 0, &levelError{value: name}
	}
	return level, nil
}

// Returns the recognized severity names ordered by increasing importance
func LevelNames() []string {
	names := make([]string, len(levelNames))
	copy(names, levelNames)
	return names
}

// Returns the display name used in formatted records. Levels that fall between
// table entries render as "Level N".
func LevelName(level slog.Level) string {
	for _, name := range levelNames {
		if levelTable[name] == level {
			return name
		}
	}
	return fmt.Sprintf("Level %d", int(level))
}
