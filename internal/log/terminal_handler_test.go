package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func testRecord(level slog.Level, msg string, args ...any) slog.Record {
	r := slog.NewRecord(time.Date(2025, 6, 1, 12, 30, 45, 0, time.UTC), level, msg, 0)
	r.Add(args...)
	return r
}

func TestTerminalHandler_Format(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug)

	if err := h.Handle(context.Background(), testRecord(slog.LevelInfo, "listening", "addr", "0.0.0.0:8080")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"12:30:45", "INFO", "listening", "addr=", "0.0.0.0:8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("output should end with newline")
	}
}

func TestTerminalHandler_LevelTags(t *testing.T) {
	tests := []struct {
		level slog.Level
		tag   string
	}{
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARN"},
		{slog.LevelError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTerminalHandler(&buf, slog.LevelDebug)
			if err := h.Handle(context.Background(), testRecord(tt.level, "msg")); err != nil {
				t.Fatalf("Handle() error: %v", err)
			}
			if !strings.Contains(buf.String(), tt.tag) {
				t.Errorf("output missing level tag %q: %s", tt.tag, buf.String())
			}
		})
	}
}

func TestTerminalHandler_Enabled(t *testing.T) {
	h := newTerminalHandler(&bytes.Buffer{}, slog.LevelWarn)

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestTerminalHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug).WithAttrs([]slog.Attr{slog.String("voice", "tenor")})

	if err := h.Handle(context.Background(), testRecord(slog.LevelInfo, "resolved")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !strings.Contains(buf.String(), "voice=") || !strings.Contains(buf.String(), "tenor") {
		t.Errorf("output missing handler attr: %s", buf.String())
	}
}

func TestTerminalHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug).WithGroup("song")

	if err := h.Handle(context.Background(), testRecord(slog.LevelInfo, "transposed", "key", "D")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !strings.Contains(buf.String(), "song.key=") {
		t.Errorf("output missing grouped attr key: %s", buf.String())
	}
}

func TestTerminalHandler_QuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, slog.LevelDebug)

	if err := h.Handle(context.Background(), testRecord(slog.LevelInfo, "msg", "desc", "original key (no transposition)")); err != nil {
		t.Fatalf("Handle() error: %v", err)
	}
	if !strings.Contains(buf.String(), `"original key (no transposition)"`) {
		t.Errorf("value with spaces should be quoted: %s", buf.String())
	}
}
