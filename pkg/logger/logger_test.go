package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestNewTagsComponent(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	New("miniprofiler").Warn("hello")

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry")
	}
	if got := entry.Data["component"]; got != "miniprofiler" {
		t.Errorf("component field: got %v, want miniprofiler", got)
	}
	if entry.Level != logrus.WarnLevel {
		t.Errorf("level: got %v, want %v", entry.Level, logrus.WarnLevel)
	}
}

// TestNewUsesStandardLogger verifies the entry shares the host's logger.
func TestNewUsesStandardLogger(t *testing.T) {
	if New("x").Logger != logrus.StandardLogger() {
		t.Error("entry should be bound to logrus.StandardLogger()")
	}
}
