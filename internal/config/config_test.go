package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != "~/.alauncher" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.AppsDir != "~/.alauncher/apps" {
		t.Errorf("AppsDir = %q", cfg.AppsDir)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
	if cfg.RecordDelayMS != 1000 {
		t.Errorf("RecordDelayMS = %d", cfg.RecordDelayMS)
	}
	if len(cfg.NotificationDenylist) != 1 {
		t.Errorf("NotificationDenylist = %v", cfg.NotificationDenylist)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	// Point XDG to an empty dir so no config file is found
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Should have expanded defaults (DataDir no longer starts with ~/)
	if strings.HasPrefix(cfg.DataDir, "~/") {
		t.Errorf("DataDir not expanded: %q", cfg.DataDir)
	}
	if !strings.HasSuffix(cfg.DataDir, ".alauncher") {
		t.Errorf("DataDir = %q, want suffix .alauncher", cfg.DataDir)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "alauncher")
	os.MkdirAll(configDir, 0o755)

	tomlContent := `data_dir = "/custom/data"
apps_dir = "/custom/apps"
debug = true
settings_label = "Réglages"
record_delay_ms = 0
notification_denylist = ["com.example.clock", "com.example.timer"]
`
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(tomlContent), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/custom/data" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.AppsDir != "/custom/apps" {
		t.Errorf("AppsDir = %q", cfg.AppsDir)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
	if cfg.SettingsLabel != "Réglages" {
		t.Errorf("SettingsLabel = %q", cfg.SettingsLabel)
	}
	if cfg.RecordDelayMS != 0 {
		t.Errorf("RecordDelayMS = %d", cfg.RecordDelayMS)
	}
	if !cfg.Denylisted("com.example.timer") {
		t.Error("expected com.example.timer to be denylisted")
	}
	if cfg.Denylisted("com.google.android.deskclock") {
		t.Error("default denylist should be replaced, not merged")
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	os.WriteFile(path, []byte(`data_dir = "/explicit"`), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/explicit" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	configDir := filepath.Join(xdg, "alauncher")
	os.MkdirAll(configDir, 0o755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`data_dir = "~/my-data"`), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := filepath.Join(home, "my-data")
	if cfg.DataDir != want {
		t.Errorf("DataDir = %q, want %q", cfg.DataDir, want)
	}
}

func TestLoad_XDGPriority(t *testing.T) {
	xdg := t.TempDir()
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", home)

	xdgDir := filepath.Join(xdg, "alauncher")
	os.MkdirAll(xdgDir, 0o755)
	os.WriteFile(filepath.Join(xdgDir, "config.toml"), []byte(`data_dir = "/from-xdg"`), 0o644)

	homeDir := filepath.Join(home, ".config", "alauncher")
	os.MkdirAll(homeDir, 0o755)
	os.WriteFile(filepath.Join(homeDir, "config.toml"), []byte(`data_dir = "/from-home"`), 0o644)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/from-xdg" {
		t.Errorf("DataDir = %q, want /from-xdg (XDG should take priority)", cfg.DataDir)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	configDir := filepath.Join(xdg, "alauncher")
	os.MkdirAll(configDir, 0o755)
	os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(`data_dir = [broken`), 0o644)

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for invalid TOML")
	}
}

func TestDBPath(t *testing.T) {
	cfg := Config{DataDir: "/home/user/.alauncher"}
	if got := cfg.DBPath(); got != "/home/user/.alauncher/a.db" {
		t.Errorf("DBPath = %q", got)
	}
}
