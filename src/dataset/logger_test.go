package dataset

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	Infof("loaded 3 columns (100.0% numeric)")

	out := buf.String()
	if !strings.Contains(out, "(100.0% numeric)") {
		t.Fatalf("log output missing percent segment: %s", out)
	}
	if strings.Contains(out, "%!n(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestSetLogLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() {
		baseLogger = saved
		SetLogLevel("info")
	}()

	SetLogLevel("warn")
	Debugf("hidden")
	Infof("also hidden")
	Warnf("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("filtered levels leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] shown") {
		t.Fatalf("warn line missing: %s", out)
	}

	SetLogLevel("bogus") // unknown levels are ignored
	if GetLogLevel() != LevelWarn {
		t.Fatalf("unknown level changed state: %v", GetLogLevel())
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want LogLevel
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{" Info ", LevelInfo, true},
		{"WARN", LevelWarn, true},
		{"error", LevelError, true},
		{"trace", LevelInfo, false},
		{"", LevelInfo, false},
	}
	for _, tc := range cases {
		got, ok := ParseLevel(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLogLevelString(t *testing.T) {
	if got := LevelWarn.String(); got != "WARN" {
		t.Fatalf("LevelWarn prints as %q", got)
	}
	if got := LogLevel(42).String(); got != "INFO" {
		t.Fatalf("out of range level prints as %q", got)
	}
}
