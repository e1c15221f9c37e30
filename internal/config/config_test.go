package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" || cfg.Mode != ModeBoth || cfg.MaxLogs != 1000 || cfg.MaxTopicMessages != 100 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LogRetention != 24*time.Hour || cfg.SubscriberTimeout != 5*time.Minute {
		t.Fatalf("unexpected janitor defaults: %+v", cfg)
	}
	if !cfg.PubSub() || !cfg.Stats() {
		t.Fatalf("both mode should enable every surface")
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
port: "4000"
server:
  mode: stats
stats:
  timezone: Asia/Seoul
store:
  max_logs: 50
janitor:
  log_retention: 2h
`)
	t.Setenv("PORT", "5000")
	t.Setenv("EMOLAMP_LOG_LEVEL", "DEBUG")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Fatalf("PORT env should win, got %q", cfg.Port)
	}
	if cfg.Mode != ModeStats || cfg.PubSub() || !cfg.Stats() {
		t.Fatalf("unexpected mode: %q", cfg.Mode)
	}
	if cfg.LogLevel != "debug" || cfg.MaxLogs != 50 || cfg.LogRetention != 2*time.Hour {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "Asia/Seoul" {
		t.Fatalf("location=%v err=%v", loc, err)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"bad mode", "server:\n  mode: mqtt\n"},
		{"bad timezone", "stats:\n  timezone: Mars/Olympus\n"},
		{"zero limit", "store:\n  max_topic_messages: 0\n"},
		{"broken yaml", "server: [\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.body)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}
