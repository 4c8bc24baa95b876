package main

import (
	"strings"
	"time"
)

const timeInputLayout = "2006-01-02 15:04:05"

// What the drawer accepts; seconds are optional.
var windowInputLayouts = []string{
	timeInputLayout,
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseWindowInput(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range windowInputLayouts {
		if ts, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

func clampTimeToBounds(t time.Time, min time.Time, max time.Time) time.Time {
	if t.Before(min) {
		return min
	}
	if t.After(max) {
		return max
	}
	return t
}

func defaultWindowBounds(min time.Time, max time.Time) (time.Time, time.Time) {
	return min, max
}
