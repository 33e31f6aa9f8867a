package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeDotEnv(t *testing.T, home, content string) string {
	t.Helper()
	dir := filepath.Join(home, ".painmatch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDotEnv_NotExist(t *testing.T) {
	setupHome(t)

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	home := setupHome(t)
	writeDotEnv(t, home, "# comment\nA=1\nB=\"two words\"\nexport C=three\n")

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if m["A"] != "1" || m["B"] != "two words" || m["C"] != "three" {
		t.Fatalf("unexpected map: %v", m)
	}
}

func TestGetConfigValue_EnvOverridesDotEnv(t *testing.T) {
	home := setupHome(t)
	writeDotEnv(t, home, "K=fromdotenv\n")
	t.Setenv("K", "fromenv")

	v, err := GetConfigValue("K")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "fromenv" {
		t.Fatalf("expected env override, got %q", v)
	}
}

func TestGetConfigValue_FallsBackToDotEnv(t *testing.T) {
	home := setupHome(t)
	writeDotEnv(t, home, "K=fromdotenv\n")
	t.Setenv("K", "")

	v, err := GetConfigValue("K")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "fromdotenv" {
		t.Fatalf("expected dotenv value, got %q", v)
	}
}

func TestEnsureDotEnvTemplate_DoesNotOverwrite(t *testing.T) {
	home := setupHome(t)
	p := writeDotEnv(t, home, "PAINMATCH_CATALOG=keep\n")

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "PAINMATCH_CATALOG=keep\n" {
		t.Fatalf("template overwrote existing file: %q", string(b))
	}
}

func TestEnsureDotEnvTemplate_CreatesWhenMissing(t *testing.T) {
	home := setupHome(t)

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if _, ok := m[EnvCatalog]; !ok {
		t.Fatalf("template missing %s: %v", EnvCatalog, m)
	}
	if _, err := os.Stat(filepath.Join(home, ".painmatch", ".env")); err != nil {
		t.Fatal(err)
	}
}
