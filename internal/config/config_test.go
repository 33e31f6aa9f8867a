package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvCatalog, EnvThreshold, EnvContextBoost, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	setupHome(t)
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CatalogPath != "filum_features.json" || cfg.Threshold != 0.1 || cfg.ContextBoost != 0.15 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Source != "" {
		t.Fatalf("expected no source, got %q", cfg.Source)
	}
	want := "No matching Filum.ai features were found for this specific pain point."
	if cfg.NoMatchReason() != want {
		t.Fatalf("unexpected no-match reason: %q", cfg.NoMatchReason())
	}
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	home := setupHome(t)
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "painmatch.yaml")
	if err := os.WriteFile(p, []byte("catalog_path: ~/features.json\nthreshold: 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CatalogPath != filepath.Join(home, "features.json") {
		t.Fatalf("catalog path not expanded: %q", cfg.CatalogPath)
	}
	if cfg.Threshold != 0.25 {
		t.Fatalf("threshold not read: %v", cfg.Threshold)
	}
	if cfg.ContextBoost != 0.15 {
		t.Fatalf("unset key should keep default, got %v", cfg.ContextBoost)
	}
	if cfg.Source != p {
		t.Fatalf("unexpected source %q", cfg.Source)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	setupHome(t)
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "painmatch.yaml")
	if err := os.WriteFile(p, []byte("threshold: 0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvThreshold, "0.4")
	t.Setenv(EnvCatalog, "/data/catalog.json")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threshold != 0.4 || cfg.CatalogPath != "/data/catalog.json" {
		t.Fatalf("env did not override: %+v", cfg)
	}
}

func TestLoad_InvalidEnvNumber(t *testing.T) {
	setupHome(t)
	clearEnv(t)
	t.Setenv(EnvContextBoost, "lots")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), EnvContextBoost) {
		t.Fatalf("expected error naming %s, got %v", EnvContextBoost, err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	setupHome(t)
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "painmatch.yaml")
	if err := os.WriteFile(p, []byte("threshold: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(p); err == nil {
		t.Fatal("expected YAML error")
	}
}

func TestLoad_OutOfRangeRejected(t *testing.T) {
	setupHome(t)
	clearEnv(t)
	t.Setenv(EnvThreshold, "1.5")

	if _, err := Load(""); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	setupHome(t)
	clearEnv(t)
	p := filepath.Join(t.TempDir(), "nested", "painmatch.yaml")
	cfg := DefaultConfig()
	cfg.ProductName = "Acme"
	cfg.Threshold = 0.3

	if err := Save(p, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.ProductName != "Acme" || got.Threshold != 0.3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if !strings.Contains(got.NoMatchReason(), "Acme") {
		t.Fatalf("unexpected reason %q", got.NoMatchReason())
	}
}

func TestSave_LockHeld(t *testing.T) {
	p := filepath.Join(t.TempDir(), "painmatch.yaml")
	unlock, err := lockFile(p+".lock", saveLockTimeout)
	if err != nil {
		t.Fatal(err)
	}
	defer unlock()

	if _, err := lockFile(p+".lock", 0); err == nil {
		t.Fatal("expected second lock attempt to fail")
	}
}
