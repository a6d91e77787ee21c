package ui

import (
	"fmt"
	"time"
)

// shortUnits are tried largest first.
var shortUnits = []struct {
	size   time.Duration
	suffix string
}{
	{7 * 24 * time.Hour, "w"},
	{24 * time.Hour, "d"},
	{time.Hour, "h"},
	{time.Minute, "m"},
}

// FormatDurationShort formats a duration in its largest whole unit
// (s/m/h/d/w). Negative durations format as "0s".
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}
	for _, unit := range shortUnits {
		if duration >= unit.size {
			return fmt.Sprintf("%d%s", duration/unit.size, unit.suffix)
		}
	}
	return fmt.Sprintf("%ds", duration/time.Second)
}

// FormatTimeAgo returns a compact age string like "2m ago", or "-" when
// either time is unknown.
func FormatTimeAgo(then time.Time, now time.Time) string {
	if then.IsZero() || now.IsZero() {
		return "-"
	}
	return FormatDurationShort(now.Sub(then)) + " ago"
}

// FormatTimestamp renders an absolute time in the local zone.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format("2006-01-02 15:04")
}
