package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Backend != BackendSQLite {
		t.Fatalf("backend=%q, want sqlite", cfg.General.Backend)
	}
	if cfg.Consumption.PricePerGram != 7.0 {
		t.Fatalf("price=%v, want 7.0", cfg.Consumption.PricePerGram)
	}
	if len(cfg.Rewards) != 3 || cfg.Rewards[0].Cost != 30 {
		t.Fatalf("rewards=%+v", cfg.Rewards)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := `
[general]
backend = "csv"

[consumption]
price_per_gram = 9.5

[[rewards]]
label = "Kino"
cost = 80
`
	if err := os.MkdirAll(filepath.Join(dir, "xp-tracker"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "xp-tracker", "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.General.Backend != BackendCSV {
		t.Fatalf("backend=%q, want csv", cfg.General.Backend)
	}
	if cfg.Consumption.PricePerGram != 9.5 {
		t.Fatalf("price=%v, want 9.5", cfg.Consumption.PricePerGram)
	}
	if len(cfg.Rewards) != 1 || cfg.Rewards[0].Label != "Kino" {
		t.Fatalf("rewards=%+v", cfg.Rewards)
	}
}

func TestDataDirOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/tmp/xpt-test"
	if cfg.DBPath() != "/tmp/xpt-test/tracker.db" {
		t.Fatalf("db path=%q", cfg.DBPath())
	}
	if cfg.CatalogPath() != "/tmp/xpt-test/xp_tasks.json" {
		t.Fatalf("catalog path=%q", cfg.CatalogPath())
	}
}
