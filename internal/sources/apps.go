package sources

import (
	"log/slog"
	"sync"

	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/live"
)

// AppSource maintains the live collection of launchable apps across all
// profiles, reloading whenever the enumerator signals a change.
//
// The launcher's own package is excluded unless debug is set. On the very
// first load the source emits a fast snapshot with placeholder icons before
// the full one; consumers must only rely on the final snapshot.
type AppSource struct {
	enum        AppEnumerator
	selfPackage string
	debug       bool
	logger      *slog.Logger

	items     *live.Value[[]App]
	firstLoad bool
	stop      chan struct{}
	wg        sync.WaitGroup
}

// NewAppSource creates an AppSource over enum. selfPackage is the launcher's
// own package name, hidden from the list unless debug is true.
func NewAppSource(enum AppEnumerator, selfPackage string, debug bool, logger *slog.Logger) *AppSource {
	return &AppSource{
		enum:        enum,
		selfPackage: selfPackage,
		debug:       debug,
		logger:      logger,
		items:       live.NewValue[[]App](nil),
		firstLoad:   true,
		stop:        make(chan struct{}),
	}
}

// Items returns the live app collection.
func (s *AppSource) Items() *live.Value[[]App] {
	return s.items
}

// Start begins watching the enumerator's change signal. The signal is primed,
// so the initial enumeration happens immediately.
func (s *AppSource) Start() {
	ch := s.enum.Changed()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-s.stop:
				return
			case <-ch:
				s.reload()
			}
		}
	}()
}

// Stop halts the reload loop.
func (s *AppSource) Stop() {
	close(s.stop)
	s.wg.Wait()
}

func (s *AppSource) reload() {
	var apps []App
	for _, profile := range s.enum.Profiles() {
		list, err := s.enum.ListLaunchable(profile)
		if err != nil {
			// A failing profile degrades to its absence, it doesn't
			// fail the whole source.
			s.logger.Warn("app enumeration failed", "profile", profile, "error", err)
			continue
		}
		for _, a := range list {
			if !s.debug && a.PackageName == s.selfPackage {
				continue
			}
			apps = append(apps, a)
		}
	}

	if s.firstLoad {
		s.firstLoad = false
		fast := make([]App, len(apps))
		copy(fast, apps)
		for i := range fast {
			fast[i].Icon = launcher.PlaceholderIcon
		}
		s.items.Set(fast)
	}
	s.items.Set(apps)
}
