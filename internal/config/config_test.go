package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteDefaultLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portwatch.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := DefaultConfig()
	if cfg.Host != want.Host {
		t.Fatalf("host = %q, want %q", cfg.Host, want.Host)
	}
	if cfg.Probe.TimeoutMS != want.Probe.TimeoutMS {
		t.Fatalf("probe.timeout_ms = %d, want %d", cfg.Probe.TimeoutMS, want.Probe.TimeoutMS)
	}
	if cfg.Probe.Concurrency != want.Probe.Concurrency {
		t.Fatalf("probe.concurrency = %d, want %d", cfg.Probe.Concurrency, want.Probe.Concurrency)
	}
	if cfg.Watch.IntervalSeconds != want.Watch.IntervalSeconds {
		t.Fatalf("watch.interval_seconds = %d, want %d", cfg.Watch.IntervalSeconds, want.Watch.IntervalSeconds)
	}
	if cfg.Kill.RequireConfirmation != want.Kill.RequireConfirmation {
		t.Fatalf("kill.require_confirmation = %v, want %v", cfg.Kill.RequireConfirmation, want.Kill.RequireConfirmation)
	}
}

func TestLoad_PartialFileKeepsParsedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portwatch.yaml")
	content := `host: 127.0.0.1
db_path: /tmp/pw.db
probe:
  timeout_ms: 150
  concurrency: 4
watch:
  interval_seconds: 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Probe.TimeoutMS != 150 || cfg.Probe.Concurrency != 4 {
		t.Fatalf("probe = %+v, want timeout 150 concurrency 4", cfg.Probe)
	}
	if cfg.Watch.IntervalSeconds != 10 {
		t.Fatalf("interval = %d, want 10", cfg.Watch.IntervalSeconds)
	}
	if cfg.Kill.RequireConfirmation {
		t.Fatal("unset require_confirmation should parse as false")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("empty config must fail validation")
	}

	msg := err.Error()
	for _, want := range []string{
		"host cannot be empty",
		"probe.timeout_ms must be positive",
		"probe.concurrency must be positive",
		"watch.interval_seconds must be positive",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("error %q missing %q", msg, want)
		}
	}
}

func TestValidate_DefaultsPass(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}
}
