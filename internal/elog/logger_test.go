package elog

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogAtOrAboveLevelIsEmitted(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelInfo, Output: &buf, Prefix: "test"})
	l.Info("hello %s", "world")
	if !strings.Contains(buf.String(), "hello world") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "hello world")
	}
	if !strings.Contains(buf.String(), "[INFO]") {
		t.Errorf("output = %q, want it to contain level tag", buf.String())
	}
}

func TestLogBelowLevelIsSuppressed(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelWarn, Output: &buf})
	l.Debug("should not appear")
	l.Info("should not appear either")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestWithFieldAttachesKeyValue(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf})
	l = l.WithField("buffer", 3)
	l.Debug("loaded")
	if !strings.Contains(buf.String(), "buffer=3") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "buffer=3")
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: LevelDebug, Output: &buf})
	child := parent.WithField("a", 1)
	child.WithField("b", 2)
	parent.Debug("parent line")
	if strings.Contains(buf.String(), "a=1") || strings.Contains(buf.String(), "b=2") {
		t.Errorf("parent logger leaked child fields: %q", buf.String())
	}
}

func TestWithComponentSetsComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelDebug, Output: &buf}).WithComponent("movement")
	l.Debug("step")
	if !strings.Contains(buf.String(), "component=movement") {
		t.Errorf("output = %q, want it to contain component field", buf.String())
	}
}

func TestDiscardLoggerEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	Discard.SetOutput(&buf)
	Discard.Error("ignored")
	if buf.Len() != 0 {
		t.Errorf("Discard wrote %q, want nothing", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSetLevelChangesFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: LevelError, Output: &buf})
	l.Warn("filtered")
	if buf.Len() != 0 {
		t.Fatalf("expected warn to be filtered, got %q", buf.String())
	}
	l.SetLevel(LevelWarn)
	l.Warn("not filtered")
	if !strings.Contains(buf.String(), "not filtered") {
		t.Errorf("output = %q, want it to contain %q", buf.String(), "not filtered")
	}
}
