package sources

import (
	"log/slog"
	"sync"

	"github.com/BoD/a/internal/live"
)

// ShortcutSource maintains the live collection of pinned shortcuts,
// restricted to the packages currently known to the app source. It
// recomputes when either the shortcut service signals a change or the app
// collection itself changes.
//
// Disabled shortcuts and shortcuts whose icon cannot be resolved are
// dropped. Without host permission the collection is empty.
type ShortcutSource struct {
	svc    ShortcutService
	apps   *live.Value[[]App]
	logger *slog.Logger

	items *live.Value[[]Shortcut]
	stop  chan struct{}
	wg    sync.WaitGroup
}

// NewShortcutSource creates a ShortcutSource over svc, scoped to the
// packages in apps.
func NewShortcutSource(svc ShortcutService, apps *live.Value[[]App], logger *slog.Logger) *ShortcutSource {
	return &ShortcutSource{
		svc:    svc,
		apps:   apps,
		logger: logger,
		items:  live.NewValue[[]Shortcut](nil),
		stop:   make(chan struct{}),
	}
}

// Items returns the live shortcut collection.
func (s *ShortcutSource) Items() *live.Value[[]Shortcut] {
	return s.items
}

// Start begins recomputing on service and app changes.
func (s *ShortcutSource) Start() {
	svcCh := s.svc.Changed()
	appCh := s.apps.Subscribe()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.stop:
				return
			case <-svcCh:
			case <-appCh:
			}
			s.reload()
		}
	}()
}

// Stop halts the reload loop.
func (s *ShortcutSource) Stop() {
	close(s.stop)
	s.wg.Wait()
}

func (s *ShortcutSource) reload() {
	if !s.svc.HasHostPermission() {
		s.items.Set(nil)
		return
	}

	packages := make([]string, 0)
	seen := make(map[string]struct{})
	for _, a := range s.apps.Get() {
		if _, ok := seen[a.PackageName]; ok {
			continue
		}
		seen[a.PackageName] = struct{}{}
		packages = append(packages, a.PackageName)
	}

	pinned, err := s.svc.QueryPinned(packages)
	if err != nil {
		// Keep serving the previous collection.
		s.logger.Warn("shortcut query failed", "error", err)
		return
	}

	var kept []Shortcut
	for _, sc := range pinned {
		if !sc.Enabled {
			continue
		}
		if sc.Icon == "" {
			// A broken icon is worse than no shortcut.
			continue
		}
		kept = append(kept, sc)
	}
	s.items.Set(kept)
}
