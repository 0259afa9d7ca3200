package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, `
store: /var/lib/confvar/store.jsonl
color: never
rules:
  - file: /etc/app.json
    profile: prod
    when: env["DEPLOY_ENV"] == "prod"
`)
	t.Setenv("CONFVAR_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Store != "/var/lib/confvar/store.jsonl" {
		t.Errorf("store = %q", cfg.Store)
	}
	if cfg.Color != "never" {
		t.Errorf("color = %q", cfg.Color)
	}
	if len(cfg.Rules) != 1 || cfg.Rules[0].Profile != "prod" {
		t.Errorf("rules = %+v", cfg.Rules)
	}
}

func TestLoadEnvPathMissing(t *testing.T) {
	t.Setenv("CONFVAR_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("an explicitly named config file must exist")
	}
}

func TestLoadMissingDefaults(t *testing.T) {
	t.Setenv("CONFVAR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "auto" {
		t.Errorf("color = %q", cfg.Color)
	}
	want := filepath.Join("/data", "confvar", "store.jsonl")
	if cfg.Store != want {
		t.Errorf("store = %q, want %q", cfg.Store, want)
	}
}

func TestLoadXDGConfigHome(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "confvar"), 0o755); err != nil {
		t.Fatal(err)
	}
	body := "color: always\n"
	if err := os.WriteFile(filepath.Join(dir, "confvar", "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFVAR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", "/data")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color != "always" {
		t.Errorf("color = %q", cfg.Color)
	}
}

func TestLoadBadRule(t *testing.T) {
	path := writeConfig(t, `
rules:
  - file: /f
    profile: p
    when: "env["
`)
	t.Setenv("CONFVAR_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatal("a rule that does not compile must be rejected at load")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "store: [unclosed\n")
	t.Setenv("CONFVAR_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatal("expected a parse error")
	}
}
