// Package logging provides leveled logging and per-game tracing for montyhall.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A TraceLogger writing one JSON line per simulated game
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LevelTrace is a custom slog level below Debug. At this level every
// simulated game is recorded by the TraceLogger.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// TraceLogger writes game events to a JSONL file. Runs are single-threaded,
// so no locking is done. A nil TraceLogger is safe to use; all methods are
// no-ops on a nil receiver.
type TraceLogger struct {
	file  *os.File
	enc   *json.Encoder
	count int
}

// NewTraceLogger opens path for writing when level is "trace".
// At any other level it returns nil and creates no file.
func NewTraceLogger(path string, level string) (*TraceLogger, error) {
	if ParseLevel(level) != LevelTrace {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}

	return &TraceLogger{file: f, enc: json.NewEncoder(f)}, nil
}

// Log writes an event as a single JSONL line. A "time" field is added;
// the caller's map is not mutated. Write errors are dropped so that
// tracing never interrupts a run.
func (tl *TraceLogger) Log(event map[string]any) {
	if tl == nil || tl.file == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	if err := tl.enc.Encode(entry); err == nil {
		tl.count++
	}
}

// Count returns the number of events written so far.
func (tl *TraceLogger) Count() int {
	if tl == nil {
		return 0
	}
	return tl.count
}

// Close closes the underlying file. Safe to call on nil receiver.
func (tl *TraceLogger) Close() error {
	if tl == nil || tl.file == nil {
		return nil
	}

	err := tl.file.Close()
	tl.file = nil
	return err
}
