// File: internal/logger/sink.go
package logger

import (
	"bytes"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// fileTimeFormat renders timestamps as "2006-01-02 15:04:05,000"
const fileTimeFormat = "2006-01-02 15:04:05,000"

type SinkKind string

const (
	SinkConsole SinkKind = "console"
	SinkFile    SinkKind = "file"
)

// SinkInfo describes an attached sink for inspection
type SinkInfo struct {
	Kind  SinkKind
	Level slog.Level
	Path  string
}

type formatFunc func(buf *bytes.Buffer, name string, r slog.Record, attrs string)

// sink is a single destination with its own threshold and line format
type sink struct {
	kind   SinkKind
	level  slog.Level
	path   string
	format formatFunc

	mu *sync.Mutex
	w  io.Writer
}

func (s *sink) write(name string, r slog.Record, attrs string) error {
	var buf bytes.Buffer
	s.format(&buf, name, r, attrs)
	buf.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(buf.Bytes())
	return err
}

func newConsoleSink(w io.Writer, level slog.Level) *sink {
	styles := newLevelStyles(w)
	return &sink{
		kind:  SinkConsole,
		level: level,
		// Bare message; the level only shows through its color on a terminal
		format: func(buf *bytes.Buffer, _ string, r slog.Record, attrs string) {
			msg := r.Message
			if style, ok := styles[r.Level]; ok {
				msg = style.Render(msg)
			}
			buf.WriteString(msg)
			buf.WriteString(attrs)
		},
		mu: &sync.Mutex{},
		w:  w,
	}
}

func newFileSink(w io.Writer, path string) *sink {
	return &sink{
		kind:  SinkFile,
		level: slog.LevelDebug,
		path:  path,
		format: func(buf *bytes.Buffer, name string, r slog.Record, attrs string) {
			ts := r.Time
			if ts.IsZero() {
				ts = time.Now()
			}
			buf.WriteString(ts.Format(fileTimeFormat))
			buf.WriteString(" - ")
			buf.WriteString(name)
			buf.WriteString(" - ")
			buf.WriteString(LevelName(r.Level))
			buf.WriteString(" - ")
			buf.WriteString(r.Message)
			buf.WriteString(attrs)
		},
		mu: &sync.Mutex{},
		w:  w,
	}
}

// The renderer is bound to the sink's writer. Writers without color support
// get no styles, so messages pass through byte for byte.
func newLevelStyles(w io.Writer) map[slog.Level]lipgloss.Style {
	r := lipgloss.NewRenderer(w)
	if r.ColorProfile() == termenv.Ascii {
		return nil
	}
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return map[slog.Level]lipgloss.Style{
		slog.LevelDebug: base.Foreground(lipgloss.Color("8")),
		slog.LevelInfo:  base.Foreground(lipgloss.Color("12")),
		slog.LevelWarn:  base.Foreground(lipgloss.Color("11")),
		slog.LevelError: base.Foreground(lipgloss.Color("9")),
		LevelCritical:   base.Foreground(lipgloss.Color("9")).Bold(true),
	}
}
