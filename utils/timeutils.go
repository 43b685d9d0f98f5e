package utils

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the date layout used in search queries and estimate responses
	DateLayout = "2006-01-02"

	// DateClockLayout renders a date with a 12-hour clock, e.g. 2022-06-02 08:00 AM
	DateClockLayout = "2006-01-02 03:04 PM"

	// ClockLayout renders a 12-hour clock, e.g. 08:00 AM
	ClockLayout = "03:04 PM"

	// HourMinuteLayout renders a 24-hour clock, e.g. 08:00
	HourMinuteLayout = "15:04"
)

// FormatElapsed renders a duration as H:MM. Zero is rendered as 0:00.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	total := int(d / time.Minute)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatTime renders t with layout, or "" when t is nil.
func FormatTime(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return t.Format(layout)
}

// SameDay reports whether both timestamps fall on the same calendar date in their own offsets.
func SameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return false
	}
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Ternary returns a when cond holds and b otherwise.
func Ternary[T any](cond bool, a, b T) T {
	if cond {
		return a
	}
	return b
}

// FormatISODuration renders a duration in the PT<H>H<M>M form accepted by ParseDuration.
func FormatISODuration(d time.Duration) string {
	total := int(d / time.Minute)
	return fmt.Sprintf("PT%dH%dM", total/60, total%60)
}
