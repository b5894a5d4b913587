// Package notify turns the set of active notifications into the
// packageName → rank mapping the ranking engine consumes.
//
// The selection mirrors what a launcher wants on its grid: no ongoing or
// media-session noise, one representative per notification group,
// conversations surfaced first, and low-importance channels dropped. Rank 0
// is the most important surviving notification.
package notify

import "sort"

// Importance mirrors the platform notification importance scale.
type Importance int

const (
	ImportanceMin Importance = iota
	ImportanceLow
	ImportanceDefault
	ImportanceHigh
)

// Notification is a platform-neutral view of one active notification plus
// its OS-provided ranking attributes.
type Notification struct {
	Key         string
	PackageName string
	GroupKey    string

	// Rank is the OS-provided position; lower is more important.
	Rank int

	Importance        Importance
	ChannelImportance Importance

	Ongoing      bool
	Clearable    bool
	MediaSession bool
	GroupSummary bool
	Conversation bool
	Ambient      bool
	Suspended    bool
	CanShowBadge bool
}

// Rank derives the packageName → rank mapping from the active notifications.
//
// Pipeline: drop denylisted/ongoing/non-clearable/media notifications, keep
// one representative per group (the summary, or the group's first member),
// marking it as a conversation if any group member is one; sort
// conversations first, then by OS rank ascending; drop representatives with
// LOW/MIN importance (notification or channel), ambient or suspended ones,
// and ones that cannot badge; assign 0-based positions in what survives.
//
// When two representatives survive for the same package the later (worse
// ranked) one overwrites the earlier in the map.
func Rank(active []Notification, denylist map[string]struct{}) map[string]int {
	var filtered []Notification
	for _, n := range active {
		if _, ignored := denylist[n.PackageName]; ignored {
			continue
		}
		if n.Ongoing || !n.Clearable || n.MediaSession {
			continue
		}
		filtered = append(filtered, n)
	}

	// Group by group key, preserving first-occurrence order of groups.
	groupIndex := make(map[string]int)
	var groups [][]Notification
	for _, n := range filtered {
		i, ok := groupIndex[n.GroupKey]
		if !ok {
			i = len(groups)
			groupIndex[n.GroupKey] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], n)
	}

	type representative struct {
		n            Notification
		conversation bool
	}
	reps := make([]representative, 0, len(groups))
	for _, members := range groups {
		rep := members[0]
		for _, n := range members {
			if n.GroupSummary {
				rep = n
				break
			}
		}
		conversation := false
		for _, n := range members {
			if n.Conversation {
				conversation = true
				break
			}
		}
		reps = append(reps, representative{n: rep, conversation: conversation})
	}

	sort.SliceStable(reps, func(i, j int) bool {
		if reps[i].conversation != reps[j].conversation {
			return reps[i].conversation
		}
		return reps[i].n.Rank < reps[j].n.Rank
	})

	var surviving []Notification
	for _, r := range reps {
		n := r.n
		if n.Importance <= ImportanceLow || n.ChannelImportance <= ImportanceLow {
			continue
		}
		if n.Ambient || n.Suspended || !n.CanShowBadge {
			continue
		}
		surviving = append(surviving, n)
	}

	rankings := make(map[string]int, len(surviving))
	for i, n := range surviving {
		rankings[n.PackageName] = i
	}
	return rankings
}
