package timeutil

import (
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ClockLayout is the canonical HH:MM start time.
const ClockLayout = "15:04"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SplitTimestamp turns an upstream date or RFC 3339 timestamp into a canonical
// date plus HH:MM clock in the timestamp's own offset.
// Unrecognized values come back trimmed with an empty clock.
func SplitTimestamp(raw string) (date, clock string) {
	raw = strings.TrimSpace(raw)
	if _, err := ParseDate(raw); err == nil {
		return raw, ""
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return FormatDate(t), t.Format(ClockLayout)
	}
	return raw, ""
}
