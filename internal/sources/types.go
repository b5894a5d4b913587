// Package sources contains the four launch-item source adapters.
//
// Each adapter owns a live collection that it recomputes on an external
// change signal and re-emits as a whole (no incremental diffs). The OS-level
// enumeration behind an adapter is abstracted as a small service interface;
// a directory-backed enumerator (see DirectoryApps) provides a concrete
// application source for headless use and tests.
package sources

import "github.com/BoD/a/internal/launcher"

// App is a launchable activity as reported by an enumerator.
type App struct {
	Label        string
	PackageName  string
	ActivityName string
	Icon         launcher.IconRef
}

// AppEnumerator lists launchable activities per user profile.
//
// Changed must return a primed tick channel (a tick is pending at
// subscription time) so the adapter performs its initial load as soon as it
// starts.
type AppEnumerator interface {
	Profiles() []string
	ListLaunchable(profile string) ([]App, error)
	Changed() <-chan struct{}
}

// Shortcut is a pinned app shortcut as reported by the shortcut service.
type Shortcut struct {
	ID          string
	Label       string
	PackageName string
	Icon        launcher.IconRef
	Enabled     bool
}

// ShortcutService is the platform surface for pinned shortcuts.
// A nil Changed channel is allowed and means the service never signals.
type ShortcutService interface {
	HasHostPermission() bool
	QueryPinned(packageNames []string) ([]Shortcut, error)
	Launch(shortcutID string) error
	Changed() <-chan struct{}
}

// Phone is one phone number of a contact.
type Phone struct {
	Number  string
	Primary bool
}

// ContactRecord is a starred contact as reported by the contacts service.
// Photo may be empty; the adapter substitutes the default avatar.
type ContactRecord struct {
	ContactID   int64
	LookupKey   string
	DisplayName string
	Photo       launcher.IconRef
	Phones      []Phone
}

// ContactsService is the platform surface for starred contacts.
// QueryStarred is only called while HasPermission reports true.
type ContactsService interface {
	HasPermission() bool
	QueryStarred() ([]ContactRecord, error)
	Changed() <-chan struct{}
}

// Contact is the adapter's resolved view of a starred contact: photo with
// avatar fallback applied, and the single preferred phone number.
type Contact struct {
	ContactID   int64
	LookupKey   string
	DisplayName string
	Photo       launcher.IconRef
	PhoneNumber string
}
