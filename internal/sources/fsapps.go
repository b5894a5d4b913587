package sources

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"

	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/live"
)

// DefaultProfile is the profile assigned to application entries that do not
// declare one.
const DefaultProfile = "main"

// appEntry is the on-disk TOML shape of one application entry.
type appEntry struct {
	Label    string `toml:"label"`
	Package  string `toml:"package"`
	Activity string `toml:"activity"`
	Icon     string `toml:"icon"`
	Profile  string `toml:"profile"`
}

// DirectoryApps enumerates launchable applications from a directory of TOML
// entry files (one file per activity, in the spirit of freedesktop .desktop
// entries) and signals a change whenever the directory contents change.
type DirectoryApps struct {
	dir     string
	logger  *slog.Logger
	changed *live.Signal
	watcher *fsnotify.Watcher
	stop    chan struct{}
	wg      sync.WaitGroup
}

// NewDirectoryApps creates a DirectoryApps over dir and starts watching it.
// The directory is created if missing.
func NewDirectoryApps(dir string, logger *slog.Logger) (*DirectoryApps, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create apps directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch apps directory: %w", err)
	}

	d := &DirectoryApps{
		dir:     dir,
		logger:  logger,
		changed: live.NewSignal(),
		watcher: watcher,
		stop:    make(chan struct{}),
	}

	d.wg.Add(1)
	go d.forwardEvents()
	return d, nil
}

// forwardEvents collapses filesystem events into change signals.
func (d *DirectoryApps) forwardEvents() {
	defer d.wg.Done()
	for {
		select {
		case <-d.stop:
			return
		case ev, ok := <-d.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				d.changed.Raise()
			}
		case err, ok := <-d.watcher.Errors:
			if !ok {
				return
			}
			d.logger.Warn("apps directory watch error", "error", err)
		}
	}
}

// Close stops watching the directory.
func (d *DirectoryApps) Close() error {
	close(d.stop)
	err := d.watcher.Close()
	d.wg.Wait()
	return err
}

// Changed returns a primed tick channel firing on directory changes.
func (d *DirectoryApps) Changed() <-chan struct{} {
	return d.changed.Subscribe()
}

// Profiles returns the distinct profiles declared by the entries, sorted.
func (d *DirectoryApps) Profiles() []string {
	entries, err := d.readEntries()
	if err != nil {
		d.logger.Warn("failed to read apps directory", "error", err)
		return nil
	}

	seen := make(map[string]struct{})
	var profiles []string
	for _, e := range entries {
		p := e.Profile
		if p == "" {
			p = DefaultProfile
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		profiles = append(profiles, p)
	}
	sort.Strings(profiles)
	return profiles
}

// ListLaunchable returns the entries belonging to profile.
func (d *DirectoryApps) ListLaunchable(profile string) ([]App, error) {
	entries, err := d.readEntries()
	if err != nil {
		return nil, err
	}

	var apps []App
	for _, e := range entries {
		p := e.Profile
		if p == "" {
			p = DefaultProfile
		}
		if p != profile {
			continue
		}
		icon := launcher.IconRef(e.Icon)
		if icon == "" {
			icon = launcher.DefaultAppIcon
		}
		apps = append(apps, App{
			Label:        e.Label,
			PackageName:  e.Package,
			ActivityName: e.Activity,
			Icon:         icon,
		})
	}
	return apps, nil
}

// readEntries decodes every *.toml file in the directory, sorted by file
// name for deterministic output. Malformed or incomplete entries are skipped.
func (d *DirectoryApps) readEntries() ([]appEntry, error) {
	dirEntries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read apps directory: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".toml") {
			continue
		}
		names = append(names, de.Name())
	}
	sort.Strings(names)

	var entries []appEntry
	for _, name := range names {
		var e appEntry
		if _, err := toml.DecodeFile(filepath.Join(d.dir, name), &e); err != nil {
			d.logger.Warn("skipping malformed app entry", "file", name, "error", err)
			continue
		}
		if e.Package == "" || e.Activity == "" {
			d.logger.Warn("skipping incomplete app entry", "file", name)
			continue
		}
		if e.Label == "" {
			e.Label = e.Package
		}
		entries = append(entries, e)
	}
	return entries, nil
}
