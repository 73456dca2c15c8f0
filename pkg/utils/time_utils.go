package utils

import (
	"fmt"
	"time"
)

// DepartureLayout is the only accepted departure_date form: ISO-8601 UTC with milliseconds.
const DepartureLayout = "2006-01-02T15:04:05.000Z"

// ParseDeparture parses s with DepartureLayout and rejects anything that does
// not format back to s, such as a comma before the fractional seconds.
func ParseDeparture(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DepartureLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	if t.Format(DepartureLayout) != s {
		return time.Time{}, fmt.Errorf("departure %q is not in layout %s", s, DepartureLayout)
	}
	return t, nil
}

// FormatDeparture renders t in UTC using DepartureLayout.
// Returns "" for the zero time to let callers decide how to render.
func FormatDeparture(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DepartureLayout)
}

func NowUnixSeconds() int64 { return time.Now().Unix() }
