package sources

import (
	"github.com/BoD/a/internal/live"
	"github.com/BoD/a/internal/notify"
)

// NotificationSource is a push target, not a query source: the notification
// preprocessor (see internal/notify) computes packageName → rank and pushes
// the whole mapping here whenever the OS notification state changes. The
// source merely re-exposes the latest pushed value.
type NotificationSource struct {
	rankings          *live.Value[map[string]int]
	listenerPermitted *live.Value[bool]
}

// NewNotificationSource creates a NotificationSource with no rankings and no
// listener permission.
func NewNotificationSource() *NotificationSource {
	return &NotificationSource{
		rankings:          live.NewValue(map[string]int{}),
		listenerPermitted: live.NewValue(false),
	}
}

// Publish replaces the current rankings with the latest pushed mapping.
func (s *NotificationSource) Publish(rankings map[string]int) {
	s.rankings.Set(rankings)
}

// PublishActive ranks the raw active notifications and publishes the result.
// This is the entry point for the notification listener callback.
func (s *NotificationSource) PublishActive(active []notify.Notification, denylist []string) {
	deny := make(map[string]struct{}, len(denylist))
	for _, pkg := range denylist {
		deny[pkg] = struct{}{}
	}
	s.rankings.Set(notify.Rank(active, deny))
}

// Rankings returns the live packageName → rank mapping.
func (s *NotificationSource) Rankings() *live.Value[map[string]int] {
	return s.rankings
}

// SetListenerPermitted records whether the notification-listener permission
// is currently granted. Without it, no item surfaces a notification rank.
func (s *NotificationSource) SetListenerPermitted(ok bool) {
	s.listenerPermitted.Set(ok)
}

// ListenerPermitted returns the live permission state.
func (s *NotificationSource) ListenerPermitted() *live.Value[bool] {
	return s.listenerPermitted
}

// EmptyShortcutService is a ShortcutService for environments without a
// shortcut host (headless CLI use). It reports no permission and never
// signals.
type EmptyShortcutService struct{}

func (EmptyShortcutService) HasHostPermission() bool { return false }

func (EmptyShortcutService) QueryPinned([]string) ([]Shortcut, error) { return nil, nil }

func (EmptyShortcutService) Launch(string) error { return nil }

func (EmptyShortcutService) Changed() <-chan struct{} { return nil }

// EmptyContactsService is a ContactsService for environments without
// contacts access. It reports no permission and emits one initial tick so
// the adapter settles on the empty collection.
type EmptyContactsService struct{}

func (EmptyContactsService) HasPermission() bool { return false }

func (EmptyContactsService) QueryStarred() ([]ContactRecord, error) { return nil, nil }

func (EmptyContactsService) Changed() <-chan struct{} {
	ch := make(chan struct{}, 1)
	ch <- struct{}{}
	return ch
}
