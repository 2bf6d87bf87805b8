package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestSplitTimestamp(t *testing.T) {
	cases := []struct {
		raw, date, clock string
	}{
		{"2024-04-20", "2024-04-20", ""},
		{" 2024-04-20 ", "2024-04-20", ""},
		{"2024-04-20T19:30:00-04:00", "2024-04-20", "19:30"},
		{"2024-04-21T01:00:00+00:00", "2024-04-21", "01:00"},
		{"next tuesday", "next tuesday", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		date, clock := SplitTimestamp(tc.raw)
		if date != tc.date || clock != tc.clock {
			t.Fatalf("SplitTimestamp(%q) = %q, %q; want %q, %q", tc.raw, date, clock, tc.date, tc.clock)
		}
	}
}
