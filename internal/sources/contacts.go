package sources

import (
	"log/slog"
	"sync"

	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/live"
)

// ContactSource maintains the live collection of starred contacts. Without
// the contacts-read permission it emits an empty collection rather than
// failing.
type ContactSource struct {
	svc    ContactsService
	logger *slog.Logger

	items *live.Value[[]Contact]
	stop  chan struct{}
	wg    sync.WaitGroup
}

// NewContactSource creates a ContactSource over svc.
func NewContactSource(svc ContactsService, logger *slog.Logger) *ContactSource {
	return &ContactSource{
		svc:    svc,
		logger: logger,
		items:  live.NewValue[[]Contact](nil),
		stop:   make(chan struct{}),
	}
}

// Items returns the live contact collection.
func (s *ContactSource) Items() *live.Value[[]Contact] {
	return s.items
}

// Start begins recomputing on contact change signals.
func (s *ContactSource) Start() {
	ch := s.svc.Changed()
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
func (s *ContactSource) Stop() {
	close(s.stop)
	s.wg.Wait()
}

func (s *ContactSource) reload() {
	if !s.svc.HasPermission() {
		s.items.Set(nil)
		return
	}

	records, err := s.svc.QueryStarred()
	if err != nil {
		// Keep serving the previous collection.
		s.logger.Warn("contact query failed", "error", err)
		return
	}

	contacts := make([]Contact, 0, len(records))
	for _, r := range records {
		photo := r.Photo
		if photo == "" {
			photo = launcher.DefaultContactIcon
		}
		contacts = append(contacts, Contact{
			ContactID:   r.ContactID,
			LookupKey:   r.LookupKey,
			DisplayName: r.DisplayName,
			Photo:       photo,
			PhoneNumber: preferredPhone(r.Phones),
		})
	}
	s.items.Set(contacts)
}

// preferredPhone picks the primary number if any, else the first one.
func preferredPhone(phones []Phone) string {
	for _, p := range phones {
		if p.Primary {
			return p.Number
		}
	}
	if len(phones) > 0 {
		return phones[0].Number
	}
	return ""
}
