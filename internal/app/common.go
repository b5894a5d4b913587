package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/BoD/a/internal/config"
	"github.com/BoD/a/internal/counter"
	"github.com/BoD/a/internal/engine"
	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/sources"
	"github.com/BoD/a/internal/store"
)

// newLogger builds the CLI logger. Debug mode lowers the level.
func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// readApps enumerates the launchable apps from the apps directory across
// all profiles.
func readApps(dir *sources.DirectoryApps) ([]sources.App, error) {
	var apps []sources.App
	for _, profile := range dir.Profiles() {
		list, err := dir.ListLaunchable(profile)
		if err != nil {
			return nil, fmt.Errorf("failed to list apps for profile %s: %w", profile, err)
		}
		apps = append(apps, list...)
	}
	return apps, nil
}

// buildSnapshot computes a one-shot ranked item list from the apps
// directory and the usage database. Notifications do not apply to one-shot
// invocations; the watch command carries them.
func buildSnapshot(cfg config.Config, st *store.Store, logger *slog.Logger, query string) ([]launcher.Item, map[string]int64, error) {
	dir, err := sources.NewDirectoryApps(cfg.AppsDir, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open apps directory: %w", err)
	}
	defer dir.Close()

	apps, err := readApps(dir)
	if err != nil {
		return nil, nil, err
	}

	renamed, err := st.RenamedItems()
	if err != nil {
		return nil, nil, err
	}
	ignored, err := st.IgnoredNotificationsItems()
	if err != nil {
		return nil, nil, err
	}
	deleted, err := st.DeletedItems()
	if err != nil {
		return nil, nil, err
	}

	counters := counter.New(st, logger).Counters()
	items := engine.BuildSnapshot(engine.Inputs{
		Apps:          apps,
		SettingsLabel: cfg.SettingsLabel,
		Counters:      counters,
		Renamed:       renamed,
		Ignored:       ignored,
		Deleted:       deleted,
		Query:         query,
	})
	return items, counters, nil
}
