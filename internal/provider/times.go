package provider

import (
	"fmt"
	"time"
)

// Timestamp layouts seen across provider payloads. The first group carries
// an offset and passes through; the naive group is interpreted in loc.
var (
	awareLayouts = []string{
		time.RubyDate, // Twitter created_at
		"2006-01-02T15:04:05-0700",
		time.RFC3339,
	}
	naiveLayouts = []string{
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}
)

// ParseTime parses a provider timestamp. Values without timezone
// information are interpreted in loc; everything is returned in UTC.
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
