package logger

import (
	"testing"

	"github.com/avensko/ringlog/core"
	"github.com/avensko/ringlog/sink"
)

func TestDefaultLogger(t *testing.T) {
	if Default() == nil {
		t.Fatal("Default() returned nil")
	}
	if Default().MinLevel() != core.InfoLevel {
		t.Errorf("default MinLevel = %s, want INFO", Default().MinLevel())
	}
}

func TestSetDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	l, err := New(sink.NewStdout(), Config{Sync: true, MinLevel: core.ErrorLevel})
	if err != nil {
		t.Fatal(err)
	}
	SetDefault(l)

	if Default() != l {
		t.Error("Default() did not return the logger passed to SetDefault")
	}

	// Package-level helpers route through the replaced default; below
	// the floor they are no-ops.
	Debugf("filtered %d", 1)
	Flush()
}
