// File: internal/logger/handler.go
package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// fanoutHandler passes every record at or above its threshold to each sink,
// and each sink then applies its own level filter
type fanoutHandler struct {
	name      string
	threshold slog.Level
	sinks     []*sink

	// attrs holds attributes added through WithAttrs, already rendered
	attrs  string
	prefix string
}

func newFanoutHandler(name string, sinks []*sink) *fanoutHandler {
	return &fanoutHandler{
		name:      name,
		threshold: slog.LevelDebug,
		sinks:     sinks,
	}
}

func (h *fanoutHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.threshold
}

func (h *fanoutHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, h.prefix, a)
		return true
	})
	attrs := buf.String()

	var errs []error
	for _, s := range h.sinks {
		if r.Level < s.level {
			continue
		}
		if err := s.write(h.name, r, attrs); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (h *fanoutHandler) WithAttrs(as []slog.Attr) slog.Handler {
	if len(as) == 0 {
		return h
	}
	var buf bytes.Buffer
	buf.WriteString(h.attrs)
	for _, a := range as {
		appendAttr(&buf, h.prefix, a)
	}
	clone := *h
	clone.attrs = buf.String()
	return &clone
}

func (h *fanoutHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return
		}
		// Inline groups (empty key) keep the current prefix
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range group {
			appendAttr(buf, prefix, ga)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	if strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '=' || !unicode.IsPrint(r)
	}) >= 0 {
		return strconv.Quote(s)
	}
	return s
}
