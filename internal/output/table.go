// Package output provides terminal output utilities for alauncher.
//
// All table rendering functions use ASCII characters and ANSI color codes
// for terminal output.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/BoD/a/internal/launcher"
	"github.com/BoD/a/internal/store"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderItemTable renders the launch-item list in its given order.
// Does not sort: the list arrives already ranked.
func RenderItemTable(items []launcher.Item, counters map[string]int64) string {
	if len(items) == 0 {
		return "No items.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-24s %-9s %-36s %-7s %s\n",
		"Label", "Kind", "ID", "Score", "Notif"))
	sb.WriteString(strings.Repeat("─", 88))
	sb.WriteString("\n")

	for _, it := range items {
		score := formatScore(counters[it.ID])

		notif := ""
		if it.HasNotification() {
			notif = fmt.Sprintf("#%d", *it.NotificationRank)
		} else if it.IgnoreNotifications {
			notif = "ignored"
		}

		label := truncate(it.Label, 24)
		if it.IsRenamed {
			label = colorize(colorYellow, fmt.Sprintf("%-24s", label))
		} else if it.IsDeprioritized {
			label = colorize(colorGray, fmt.Sprintf("%-24s", label))
		} else if it.HasNotification() {
			label = colorize(colorGreen, fmt.Sprintf("%-24s", label))
		} else {
			label = fmt.Sprintf("%-24s", label)
		}

		sb.WriteString(fmt.Sprintf("%s %-9s %-36s %-7s %s\n",
			label,
			it.Kind,
			truncate(it.ID, 36),
			score,
			notif))
	}

	return sb.String()
}

// RenderItemStats renders the per-item usage breakdown.
func RenderItemStats(stats *store.ItemStats) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Item:       %s\n", stats.ID))
	if stats.Deprioritized {
		sb.WriteString("Status:     deprioritized\n")
	}
	sb.WriteString(fmt.Sprintf("Long term:  %d launches (window %d)\n", stats.LongTermCount, store.LongTermWindowSize))
	sb.WriteString(fmt.Sprintf("Short term: %d launches (window %d)\n", stats.ShortTermCount, store.ShortTermWindowSize))
	sb.WriteString(fmt.Sprintf("Score:      %s\n", formatScore(combinedScore(stats))))

	return sb.String()
}

func combinedScore(stats *store.ItemStats) int64 {
	if stats.Deprioritized {
		return -1
	}
	return stats.LongTermCount + 3*stats.ShortTermCount
}

// formatScore renders a combined usage score, with the deprioritized
// sentinel shown as a word rather than a number.
func formatScore(score int64) string {
	if score < 0 {
		return "deprio"
	}
	return fmt.Sprintf("%d", score)
}

// truncate truncates a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
