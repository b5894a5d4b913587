package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all alauncher configuration.
type Config struct {
	DataDir string `toml:"data_dir"`
	AppsDir string `toml:"apps_dir"`

	Debug       bool   `toml:"debug"`
	SelfPackage string `toml:"self_package"`

	SettingsLabel string `toml:"settings_label"`
	RecordDelayMS int    `toml:"record_delay_ms"`

	// NotificationDenylist lists packages whose notifications never
	// influence ordering.
	NotificationDenylist []string `toml:"notification_denylist"`
}

// DefaultConfig returns config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DataDir:       "~/.alauncher",
		AppsDir:       "~/.alauncher/apps",
		SelfPackage:   "org.jraf.alauncher",
		RecordDelayMS: 1000,
		NotificationDenylist: []string{
			"com.google.android.deskclock",
		},
	}
}

// Load reads config from path if given, else from the standard locations,
// falling back to defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	paths := configPaths()
	if path != "" {
		paths = []string{path}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			if _, err := toml.DecodeFile(p, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", p, err)
			}
			break
		} else if path != "" {
			return cfg, fmt.Errorf("read config %s: %w", p, err)
		}
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.AppsDir = expandHome(cfg.AppsDir)

	return cfg, nil
}

func configPaths() []string {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "alauncher", "config.toml"))
	}

	home, _ := os.UserHomeDir()
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", "alauncher", "config.toml"))
	}

	return paths
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// DBPath returns the usage database path inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "a.db")
}

// Denylisted reports whether pkg is on the notification denylist.
func (c Config) Denylisted(pkg string) bool {
	for _, p := range c.NotificationDenylist {
		if p == pkg {
			return true
		}
	}
	return false
}
