// Package timeago renders timestamps the way the forum views show them:
// relative to now, coarse buckets, months approximated as 30 days.
package timeago

import (
	"fmt"
	"time"
)

// Format renders t relative to now ("5 minutes ago", "2 days from now").
// Durations under five seconds collapse to "just now".
func Format(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())

	if seconds < 0 {
		positive := -seconds
		switch {
		case positive < 60:
			return fmt.Sprintf("%d seconds from now", positive)
		case positive < 3600:
			return fmt.Sprintf("%d minutes from now", positive/60)
		case positive < 86400:
			return fmt.Sprintf("%d hours from now", positive/3600)
		default:
			return fmt.Sprintf("%d days from now", positive/86400)
		}
	}

	if seconds < 5 {
		return "just now"
	}
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%d days ago", days)
	}

	months := days / 30
	if months < 12 {
		return fmt.Sprintf("%d months ago", months)
	}

	return fmt.Sprintf("%d years ago", months/12)
}

// FormatNow renders t relative to the current wall clock
func FormatNow(t time.Time) string {
	return Format(t, time.Now())
}
