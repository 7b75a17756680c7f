// Package planner turns a trip configuration into an itemized expense plan.
// Every function here is pure: no I/O, no clock, no shared state. Dates are
// treated as UTC calendar days so day arithmetic is unaffected by DST.
package planner

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DatesInRange returns every calendar date from start to end, both inclusive,
// in ascending order. It returns an empty slice when end precedes start or
// when either endpoint is empty or not a "2006-01-02" date.
func DatesInRange(start, end string) []string {
	first, ok := parseDate(start)
	if !ok {
		return []string{}
	}
	last, ok := parseDate(end)
	if !ok {
		return []string{}
	}

	dates := []string{}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// parseDate parses a trimmed "2006-01-02" string as a UTC date.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// validClock reports whether s is empty or a "15:04" time of day.
func validClock(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// instant combines a date with a time of day, using fallback when clock is
// empty. Both inputs are assumed valid; Build checks them first.
func instant(date, clock, fallback string) (time.Time, error) {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		clock = fallback
	}
	t, err := time.Parse(dateLayout+" "+timeLayout, strings.TrimSpace(date)+" "+clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse instant %q %q: %w", date, clock, err)
	}
	return t, nil
}
