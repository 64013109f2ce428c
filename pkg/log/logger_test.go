package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	tests := []struct {
		name    string
		level   Level
		emit    func()
		visible bool
	}{
		{"debug hidden at notice", Notice, func() { logger.Debug("debug message") }, false},
		{"info hidden at notice", Notice, func() { logger.Info("info message") }, false},
		{"notice shown at notice", Notice, func() { logger.Notice("notice message") }, true},
		{"info shown at info", Info, func() { logger.Infof("info %s", "message") }, true},
		{"debug shown at debug", Debug, func() { logger.Debugf("debug %d", 1) }, true},
		{"warning hidden at error", Error, func() { logger.Warning("warning message") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			SetLevel(tt.level)
			tt.emit()
			if got := buf.Len() > 0; got != tt.visible {
				t.Errorf("Expected visible=%t, got output %q", tt.visible, buf.String())
			}
		})
	}
}

func TestModuleName(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("renderer").Error("boom")
	if !strings.Contains(buf.String(), "[renderer]") || !strings.Contains(buf.String(), "boom") {
		t.Errorf("Expected module name and message in output, got %q", buf.String())
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	SetLevel(Debug)
	defer SetLevel(Notice)

	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)

	New("sink").Debug("still visible")
	if !strings.Contains(buf.String(), "still visible") {
		t.Errorf("Expected debug output after switching sinks, got %q", buf.String())
	}
}
