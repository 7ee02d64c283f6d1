package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLoggerLevels(t *testing.T) {
	t.Setenv(EnvDebug, "")

	SetupLogger(true, false)
	if GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %v after debug setup, want LevelDebug", GetLevel())
	}
	if !IsDebugEnabled() {
		t.Error("IsDebugEnabled() = false after debug setup")
	}

	SetupLogger(false, false)
	if GetLevel() != LevelInfo {
		t.Errorf("GetLevel() = %v after default setup, want LevelInfo", GetLevel())
	}
	if IsDebugEnabled() {
		t.Error("IsDebugEnabled() = true after default setup")
	}
}

func TestDebugEnvOverride(t *testing.T) {
	SetupLogger(false, false)

	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Errorf("IsDebugEnabled() = false with %s=true", EnvDebug)
	}

	t.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Errorf("IsDebugEnabled() = true with %s unset", EnvDebug)
	}
}

func TestTextOutput(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)

	Debug("document scanned", "document", "doc-7", "urls", 3)

	out := buf.String()
	if !strings.Contains(out, "document scanned") {
		t.Errorf("output missing message: %s", out)
	}
	if !strings.Contains(out, "document=doc-7") || !strings.Contains(out, "urls=3") {
		t.Errorf("output missing attributes: %s", out)
	}
}

func TestStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)

	Info("profiles loaded", "count", 2)

	out := buf.String()
	if !strings.Contains(out, `"msg":"profiles loaded"`) {
		t.Errorf("output missing JSON msg field: %s", out)
	}
	if !strings.Contains(out, `"count":2`) {
		t.Errorf("output missing JSON count field: %s", out)
	}
}

func TestSetLevelRebuildsHandler(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	// Raising the level suppresses info output through the same writer.
	SetLevel(LevelWarn)
	Info("detector pool resized")
	if got := buf.String(); got != "" {
		t.Errorf("info logged at warn level: %s", got)
	}
	Warn("rate limit reached", "limit", 100)
	if !strings.Contains(buf.String(), "rate limit reached") {
		t.Errorf("warning missing at warn level: %s", buf.String())
	}

	// Lowering it back re-enables debug on the same writer.
	buf.Reset()
	SetLevel(LevelDebug)
	if !IsDebugEnabled() {
		t.Error("IsDebugEnabled() = false after SetLevel(LevelDebug)")
	}
	Debug("scan queued", "document", "doc-1")
	if !strings.Contains(buf.String(), "scan queued") {
		t.Errorf("debug missing at debug level: %s", buf.String())
	}
}

func TestSetOutputKeepsLevel(t *testing.T) {
	SetupLogger(true, false)

	var buf bytes.Buffer
	SetOutput(&buf)

	Debug("config reloaded", "path", "profiles.yaml")
	if !strings.Contains(buf.String(), "config reloaded") {
		t.Errorf("debug missing after SetOutput: %s", buf.String())
	}
	if GetLevel() != LevelDebug {
		t.Errorf("GetLevel() = %v after SetOutput, want LevelDebug", GetLevel())
	}
}

func TestDebugSuppressedWhenDisabled(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	Debug("should not appear")
	if strings.Contains(buf.String(), "should not appear") {
		t.Errorf("debug logged while disabled: %s", buf.String())
	}
}

func TestErrorAlwaysLogged(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	SetLevel(LevelError)

	Error("failed to load profiles", "path", "missing.yaml")
	if !strings.Contains(buf.String(), "failed to load profiles") {
		t.Errorf("error missing at error level: %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLoggerNeverNil(t *testing.T) {
	SetupLogger(false, false)
	if Logger() == nil {
		t.Fatal("Logger() = nil")
	}
}
