package utils

import (
	"fmt"
	"strings"
	"time"
)

// Accepted input layouts for date/time form fields. The admin console submits
// the HTML datetime-local shape without a zone; those values are taken as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// NormalizeTimestamp parses a submitted date/time string and canonicalizes it
// to a UTC timestamp.
func NormalizeTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %q", value)
}
