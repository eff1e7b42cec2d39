package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsoleHandler(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "info", Format: "console", Output: &buf})

	lg.Debug("hidden")
	lg.With("paddle", 1).WithGroup("ball").Info("paddle hit", "vx", 5.05)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug record written at info level: %q", out)
	}
	for _, want := range []string{"INFO ", "paddle hit", "  paddle=1", "  ball.vx=5.05"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "ball.paddle") {
		t.Errorf("attr added before WithGroup got the group prefix: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("output %q, want exactly one line", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "debug", Format: "json", Output: &buf})
	lg.Debug("winner", "result", "Player 1 wins!")

	if !strings.Contains(buf.String(), `"result":"Player 1 wins!"`) {
		t.Errorf("json output = %q", buf.String())
	}
}

func TestConsoleHandlerNestedGroups(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Config{Level: "info", Output: &buf})

	lg.WithGroup("game").With("frame", 65).WithGroup("ball").Info("left field", "x", -5)

	out := buf.String()
	for _, want := range []string{"  game.frame=65", "  game.ball.x=-5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "game.ball.frame") {
		t.Errorf("frame attr picked up the later group: %q", out)
	}
}
