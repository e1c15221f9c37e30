package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestToZapLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  defaultZapLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Fatalf("toZapLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestGetIsSingletonAndSetLevel(t *testing.T) {
	a := Get(InfoLevel)
	b := Get(ErrorLevel)
	if a != b {
		t.Fatalf("Get must return the same instance")
	}
	a.SetLevel(WarnLevel)
	if b.Level() != zapcore.WarnLevel {
		t.Fatalf("level=%v, want warn", b.Level())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Infow("discarded", "k", "v")
	if l.Level() != zapcore.FatalLevel {
		t.Fatalf("unexpected nop level %v", l.Level())
	}
}

func TestFromCore(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := FromCore(core)
	l.Debugw("dropped")
	l.Infow("kept", "k", "v")
	if logs.Len() != 1 || logs.All()[0].ContextMap()["k"] != "v" {
		t.Fatalf("unexpected entries: %+v", logs.All())
	}
}
