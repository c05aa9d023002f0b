package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.FallbackLocale != "en" || cfg.OSC8 != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Catalog != "" || cfg.Locale != "" || cfg.Theme != "" {
		t.Fatalf("unexpected values: %+v", cfg)
	}
}

func TestFromEnvValues(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		EnvCatalog:        " i18n ",
		EnvLocale:         "fr-CA",
		EnvFallbackLocale: "de",
		EnvTheme:          "nord",
		EnvOSC8:           "OFF",
	}))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	want := Config{Catalog: "i18n", Locale: "fr-CA", FallbackLocale: "de", Theme: "nord", OSC8: "off"}
	if *cfg != want {
		t.Fatalf("config = %+v, want %+v", *cfg, want)
	}
}

func TestFromEnvRejectsBadOSC8(t *testing.T) {
	_, err := FromEnv(envMap(map[string]string{EnvOSC8: "sometimes"}))
	if err == nil || !strings.Contains(err.Error(), EnvOSC8) {
		t.Fatalf("expected OSC8 error, got %v", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trmarkup.env")
	if err := os.WriteFile(path, []byte("TRMARKUP_THEME=dracula\nTRMARKUP_LOCALE=sv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLocale, "fi")
	t.Setenv(EnvTheme, "")
	os.Unsetenv(EnvTheme)

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("theme = %q, want value from .env", cfg.Theme)
	}
	if cfg.Locale != "fi" {
		t.Fatalf("locale = %q, environment must win over .env", cfg.Locale)
	}
}
