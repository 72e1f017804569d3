// Package actionlog writes the append-only diagnostic log: one line per
// record, "[YYYY-MM-DD HH:MM:SS] [LEVEL] message key=value ...".
package actionlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const timeLayout = "2006-01-02 15:04:05"

// lineHandler formats records as single text lines
type lineHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewHandler returns a handler writing lines to w at or above level
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return &lineHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *lineHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *lineHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	fmt.Fprintf(&b, "[%s] [%s] %s", ts.Format(timeLayout), record.Level.String(), record.Message)
	for _, a := range h.attrs {
		writeAttr(&b, h.group, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	val := a.Value.Resolve().String()
	// newlines would break the one-record-per-line format
	val = strings.ReplaceAll(val, "\n", `\n`)
	if strings.ContainsAny(val, " \t\"") {
		val = fmt.Sprintf("%q", val)
	}
	fmt.Fprintf(b, " %s=%s", key, val)
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

// ParseLevel maps debug/info/warn/error onto a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log-level %q: %w", s, err)
	}
	return level, nil
}

// Open installs a rotating file logger at path as the slog default. The
// returned closer flushes and closes the file.
func Open(path string, level slog.Level) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    1, // megabytes
		MaxBackups: 2,
		MaxAge:     30, // days
	}
	slog.SetDefault(slog.New(NewHandler(file, level)))
	return file, nil
}

// Discard installs a logger that drops every record
func Discard() {
	slog.SetDefault(slog.New(NewHandler(io.Discard, slog.LevelError+1)))
}
