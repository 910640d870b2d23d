package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROVEKIT_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.VimKeys {
		t.Error("expected vim keys off by default")
	}
	if !cfg.UI.Mouse {
		t.Error("expected mouse on by default")
	}
	if cfg.UI.Accent != "86" || cfg.UI.Highlight != "205" {
		t.Errorf("unexpected default colors: %+v", cfg.UI)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROVEKIT_CONFIG", "")
	t.Setenv("ROVEKIT_UI_VIM_KEYS", "true")
	t.Setenv("ROVEKIT_UI_ACCENT", "39")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.VimKeys {
		t.Error("expected env override to enable vim keys")
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("expected accent 39, got %q", cfg.UI.Accent)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[ui]\nvim_keys = true\nmouse = false\nhighlight = \"196\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROVEKIT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UI.VimKeys || cfg.UI.Mouse {
		t.Errorf("file settings not applied: %+v", cfg.UI)
	}
	if cfg.UI.Highlight != "196" {
		t.Errorf("expected highlight 196, got %q", cfg.UI.Highlight)
	}
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("ui = {{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROVEKIT_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config file")
	}
}
