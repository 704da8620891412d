package entry

import (
	"time"
)

const (
	// LayoutDay is the day bucket format used by statistics.
	LayoutDay = "2006-01-02"
	// LayoutMinute is how start and end times are shown and typed.
	LayoutMinute = "2006-01-02 15:04"
)

// FormatDay renders t as a day bucket in local time.
func FormatDay(t time.Time) string {
	return t.Local().Format(LayoutDay)
}

// FormatMinute renders t for display, or "N/A" for the zero time.
func FormatMinute(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Local().Format(LayoutMinute)
}

// ParseMinute parses a local "yyyy-MM-dd HH:mm" time.
func ParseMinute(v string) (time.Time, error) {
	return time.ParseInLocation(LayoutMinute, v, time.Local)
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
