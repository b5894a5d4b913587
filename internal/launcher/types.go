// Package launcher defines the launch-item model shared by the source
// adapters, the aggregation engine, and the CLI.
//
// A launch item is anything the user can open from the home screen: an
// application activity, a starred contact, a pinned shortcut, or the
// launcher's own settings panel. Items from all sources share one flat
// struct distinguished by Kind; the item's ID is the join key across the
// usage store, the overlay sets, and the final sort.
package launcher

// Kind identifies the variant of a launch item.
type Kind int

const (
	KindApp Kind = iota
	KindContact
	KindShortcut
	KindSettings
)

func (k Kind) String() string {
	switch k {
	case KindApp:
		return "app"
	case KindContact:
		return "contact"
	case KindShortcut:
		return "shortcut"
	case KindSettings:
		return "settings"
	}
	return "unknown"
}

// SettingsItemID is the fixed id of the settings pseudo-item.
const SettingsItemID = "asettings"

// IconRef is an opaque reference to an icon owned by a source adapter.
// Items reference icons, they never copy them.
type IconRef string

const (
	// PlaceholderIcon marks app snapshots emitted before icons are resolved.
	PlaceholderIcon IconRef = "builtin:pending"
	// DefaultContactIcon is the avatar used for contacts without a photo.
	DefaultContactIcon IconRef = "builtin:contact"
	// DefaultAppIcon is used for application entries that declare no icon.
	DefaultAppIcon IconRef = "builtin:app"
	// SettingsIcon is the icon of the settings pseudo-item.
	SettingsIcon IconRef = "builtin:settings"
)

// Item is a launchable unit. Fields that only apply to some kinds are zero
// for the others (PackageName/ActivityName for apps, ContactID/LookupKey
// payloads for contacts, ShortcutID for shortcuts).
type Item struct {
	Kind  Kind
	ID    string
	Label string
	Icon  IconRef

	// App payload. PackageName is also the join key into the notification
	// rankings map.
	PackageName  string
	ActivityName string

	// Contact payload.
	ContactID   int64
	LookupKey   string
	PhoneNumber string

	// Shortcut payload.
	ShortcutID string

	IsDeprioritized     bool
	IsRenamed           bool
	IgnoreNotifications bool

	// NotificationRank is set iff the item currently has an active,
	// high-importance, non-ignored notification. Lower is more important.
	NotificationRank *int
}

// HasNotification reports whether the item currently surfaces a notification.
func (it Item) HasNotification() bool {
	return it.NotificationRank != nil
}

// AppID builds the stable id of an application activity.
func AppID(packageName, activityName string) string {
	return packageName + "/" + activityName
}

// ShortcutItemID builds the stable id of a pinned shortcut.
func ShortcutItemID(shortcutID string) string {
	return "shortcut/" + shortcutID
}
