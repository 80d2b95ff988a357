package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoad_FileValues(t *testing.T) {
	p := writeConfig(t, `
port: "8081"
db:
  path: /tmp/x.db
stream:
  tick: 250ms
  keepalive: 30s
  degraded_after: 5
evaluator:
  lookahead: 15m
  query_timeout: 1s
  timezone: UTC
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8081" || cfg.DB.Path != "/tmp/x.db" {
		t.Errorf("port/db: %+v", cfg)
	}
	if cfg.Stream.Tick != 250*time.Millisecond || cfg.Stream.KeepAlive != 30*time.Second || cfg.Stream.DegradedAfter != 5 {
		t.Errorf("stream: %+v", cfg.Stream)
	}
	if cfg.Evaluator.Lookahead != 15*time.Minute || cfg.Evaluator.QueryTimeout != time.Second {
		t.Errorf("evaluator: %+v", cfg.Evaluator)
	}
	loc, err := cfg.Evaluator.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location() = %v, %v", loc, err)
	}
	// untouched keys keep defaults
	if cfg.Static.Dir != DefaultStaticDir || cfg.Log.Level != DefaultLogLevel {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "port: \"8081\"\n")
	t.Setenv("HEATER_PORT", "9090")
	t.Setenv("HEATER_STREAM_TICK", "3s")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.Stream.Tick != 3*time.Second {
		t.Errorf("Tick = %v, want 3s", cfg.Stream.Tick)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero tick":    "stream:\n  tick: 0s\n",
		"bad timezone": "evaluator:\n  timezone: Mars/Olympus\n",
		"zero timeout": "evaluator:\n  query_timeout: 0s\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
	if cfg.Stream.Tick != DefaultTick {
		t.Errorf("config should still carry defaults, got %+v", cfg.Stream)
	}
}
