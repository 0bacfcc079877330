package logger

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_AllNamesAnyCase(t *testing.T) {
	expected := map[string]slog.Level{
		"DEBUG":    slog.LevelDebug,
		"INFO":     slog.LevelInfo,
		"WARNING":  slog.LevelWarn,
		"ERROR":    slog.LevelError,
		"CRITICAL": LevelCritical,
	}

	for name, want := range expected {
		for _, variant := range []string{name, strings.ToLower(name), strings.ToUpper(name[:1]) + strings.ToLower(name[1:])} {
			t.Run(variant, func(t *testing.T) {
				got, err := ParseLevel(variant)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			})
		}
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	for _, value := range []string{"VERBOSE", "", "WARN", "trace", " info"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParseLevel(value)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLevel)
			assert.Equal(t, "Invalid log level: "+value, err.Error())
		})
	}
}

func TestLevelNames_Ordered(t *testing.T) {
	names := LevelNames()
	assert.Equal(t, []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}, names)

	for i := 1; i < len(names); i++ {
		prev, _ := ParseLevel(names[i-1])
		cur, _ := ParseLevel(names[i])
		assert.Less(t, prev, cur)
	}

	// Callers get a copy
	names[0] = "changed"
	assert.Equal(t, "DEBUG", LevelNames()[0])
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "WARNING", LevelName(slog.LevelWarn))
	assert.Equal(t, "CRITICAL", LevelName(LevelCritical))
	assert.Equal(t, "Level 2", LevelName(slog.Level(2)))
}
