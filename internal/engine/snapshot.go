// Package engine combines the latest emission of every item source with the
// persisted overlays and usage counters into the single ordered, filtered
// list the presentation layer observes, and exposes the action surface that
// writes back into the usage store.
package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/BoD/a/internal/counter"
	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/sources"
)

// DefaultSettingsLabel is the label of the settings pseudo-item when none is
// configured.
const DefaultSettingsLabel = "Settings"

// Inputs is one consistent snapshot of every value the aggregation depends
// on. The engine's loop fills it from the latest value of each upstream;
// one-shot callers (CLI, tests) fill it directly.
type Inputs struct {
	Apps      []sources.App
	Shortcuts []sources.Shortcut
	Contacts  []sources.Contact

	SettingsLabel string

	Rankings          map[string]int
	ListenerPermitted bool

	Counters map[string]int64

	Renamed map[string]string
	Ignored map[string]struct{}
	Deleted map[string]struct{}

	Query string
}

// BuildSnapshot computes the ordered, filtered launch-item list from one
// consistent set of inputs. It is pure: identical inputs produce identical
// output.
func BuildSnapshot(in Inputs) []launcher.Item {
	items := make([]launcher.Item, 0, len(in.Apps)+len(in.Shortcuts)+len(in.Contacts)+1)

	for _, a := range in.Apps {
		id := launcher.AppID(a.PackageName, a.ActivityName)
		label, renamed := in.Renamed[id]
		if !renamed {
			label = a.Label
		}
		_, ignore := in.Ignored[id]
		var rank *int
		if in.ListenerPermitted && !ignore {
			if r, ok := in.Rankings[a.PackageName]; ok {
				r := r
				rank = &r
			}
		}
		items = append(items, launcher.Item{
			Kind:                launcher.KindApp,
			ID:                  id,
			Label:               label,
			Icon:                a.Icon,
			PackageName:         a.PackageName,
			ActivityName:        a.ActivityName,
			IsRenamed:           renamed,
			IgnoreNotifications: ignore,
			NotificationRank:    rank,
		})
	}

	for _, sc := range in.Shortcuts {
		id := launcher.ShortcutItemID(sc.ID)
		label, renamed := in.Renamed[id]
		if !renamed {
			label = sc.Label
		}
		items = append(items, launcher.Item{
			Kind:        launcher.KindShortcut,
			ID:          id,
			Label:       label,
			Icon:        sc.Icon,
			PackageName: sc.PackageName,
			ShortcutID:  sc.ID,
			IsRenamed:   renamed,
		})
	}

	for _, c := range in.Contacts {
		items = append(items, launcher.Item{
			Kind:        launcher.KindContact,
			ID:          c.LookupKey,
			Label:       c.DisplayName,
			Icon:        c.Photo,
			ContactID:   c.ContactID,
			LookupKey:   c.LookupKey,
			PhoneNumber: c.PhoneNumber,
		})
	}

	settingsLabel := in.SettingsLabel
	if settingsLabel == "" {
		settingsLabel = DefaultSettingsLabel
	}
	items = append(items, launcher.Item{
		Kind:  launcher.KindSettings,
		ID:    launcher.SettingsItemID,
		Label: settingsLabel,
		Icon:  launcher.SettingsIcon,
	})

	items = dedupeByID(items)

	query := strings.TrimSpace(in.Query)
	kept := items[:0]
	for _, it := range items {
		if _, deleted := in.Deleted[it.ID]; deleted {
			continue
		}
		if !it.MatchesFilter(query) {
			continue
		}
		if score, ok := in.Counters[it.ID]; ok && score == counter.Deprioritized {
			it.IsDeprioritized = true
		}
		kept = append(kept, it)
	}

	// Primary order: usage score descending (absent means 0, deprioritized
	// is -1 and lands last). The secondary pass is a stable re-sort by
	// notification priority, so notified items float above everything
	// while ties keep the usage order.
	sort.SliceStable(kept, func(i, j int) bool {
		return in.Counters[kept[i].ID] > in.Counters[kept[j].ID]
	})
	sort.SliceStable(kept, func(i, j int) bool {
		return notificationKey(kept[i]) < notificationKey(kept[j])
	})

	return kept
}

// notificationKey is the secondary sort key: the notification rank, or
// "worst possible" for items without an active, non-ignored notification.
func notificationKey(it launcher.Item) int {
	if it.NotificationRank != nil && !it.IgnoreNotifications {
		return *it.NotificationRank
	}
	return math.MaxInt
}

// dedupeByID drops earlier occurrences of a duplicated id, keeping the later
// one in merge order. Duplicates should not happen by construction; this
// pins the behavior if they do.
func dedupeByID(items []launcher.Item) []launcher.Item {
	last := make(map[string]int, len(items))
	for i, it := range items {
		last[it.ID] = i
	}
	if len(last) == len(items) {
		return items
	}
	kept := make([]launcher.Item, 0, len(last))
	for i, it := range items {
		if last[it.ID] == i {
			kept = append(kept, it)
		}
	}
	return kept
}
