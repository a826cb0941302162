package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDisabledIsNop(t *testing.T) {
	l, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("disabled logger accepts entries")
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing file", Config{Enabled: true, Level: "info"}},
		{"bad level", Config{Enabled: true, File: "x.log", Level: "loud"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arcade.log")
	l, err := New(Config{Enabled: true, File: path, Level: "debug", MaxSizeMB: 1})
	if err != nil {
		t.Fatal(err)
	}
	l.Named("session").Info("status changed", zap.String("to", "playing"))
	Sync(l)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	line := string(data)
	for _, want := range []string{"INFO", "session", "status changed", "playing"} {
		if !strings.Contains(line, want) {
			t.Errorf("log line %q missing %q", line, want)
		}
	}
}

func TestCoreLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := zap.New(NewCore(zapcore.AddSync(&buf), zapcore.WarnLevel, true))
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("output = %q", out)
	}
}
