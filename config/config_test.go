package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 9095 || cfg.MinProcesses != 2 || cfg.MaxProcesses != 9 || !cfg.LowerIsHigherPriority {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Errorf("unexpected log defaults %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `port: 8080
log:
  level: debug
  format: json
scheduler:
  max_processes: -3
  priority:
    lower_is_higher: false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.LowerIsHigherPriority {
		t.Errorf("expected lower_is_higher false")
	}
	if cfg.MaxProcesses != 0 {
		t.Errorf("expected negative max to clamp to 0, got %d", cfg.MaxProcesses)
	}
	if cfg.MinProcesses != 2 {
		t.Errorf("expected default min, got %d", cfg.MinProcesses)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SCHED_PORT", "7000")
	t.Setenv("SCHED_SCHEDULER_MAX_PROCESSES", "20")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Port != 7000 || cfg.MaxProcesses != 20 {
		t.Errorf("expected env overrides, got %+v", cfg)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for a missing explicit config file")
	}
}
