package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
interval_minutes: 30
prometheus:
  port: 9090
database_path: /var/lib/dirsweep/sweep.db
log_file: /var/log/dirsweep.log
no_color: true
protected_paths:
  - /srv/keep
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.IntervalMinutes != 30 {
		t.Errorf("expected interval 30, got %d", cfg.IntervalMinutes)
	}
	if cfg.Prometheus.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Prometheus.Port)
	}
	if cfg.DatabasePath != "/var/lib/dirsweep/sweep.db" {
		t.Errorf("unexpected database path %q", cfg.DatabasePath)
	}
	if !cfg.NoColor {
		t.Error("expected no_color true")
	}
	if len(cfg.ProtectedPaths) != 1 || cfg.ProtectedPaths[0] != "/srv/keep" {
		t.Errorf("unexpected protected paths %v", cfg.ProtectedPaths)
	}
	if cfg.PrometheusAddress() != ":9090" {
		t.Errorf("unexpected prometheus address %q", cfg.PrometheusAddress())
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `no_color: false`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.IntervalMinutes != 15 {
		t.Errorf("expected default interval 15, got %d", cfg.IntervalMinutes)
	}
	if cfg.Prometheus.Port != 0 {
		t.Errorf("metrics server should default to disabled, got port %d", cfg.Prometheus.Port)
	}
	if cfg.DatabasePath != "" {
		t.Errorf("journal should default to disabled, got %q", cfg.DatabasePath)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.IntervalMinutes != 15 {
		t.Errorf("expected default interval 15, got %d", cfg.IntervalMinutes)
	}
}

func TestLoadRejectsNegativeInterval(t *testing.T) {
	if _, err := Load(writeConfig(t, `interval_minutes: -5`)); err == nil {
		t.Error("expected error for negative interval")
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	if _, err := Load(writeConfig(t, "prometheus:\n  port: 70000\n")); err == nil {
		t.Error("expected error for out-of-range port")
	}
}

func TestLoadRejectsRelativeProtectedPath(t *testing.T) {
	_, err := Load(writeConfig(t, "protected_paths:\n  - relative/path\n"))
	if err == nil {
		t.Fatal("expected error for relative protected path")
	}
	if !strings.Contains(err.Error(), "absolute") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
