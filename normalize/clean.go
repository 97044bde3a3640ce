package normalize

import (
	"strings"
	"time"
)

var (
	symbolPrefixes = []string{"NASDAQ:", "NYSE:", "AMEX:"}
	symbolSuffixes = []string{".US", ".USA"}
)

// Symbol trims and upper-cases a raw instrument name and strips the common
// exchange prefixes and country suffixes brokers attach. An empty result
// means the cell is unusable.
func Symbol(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, p := range symbolPrefixes {
		s = strings.TrimPrefix(s, p)
	}
	for _, suf := range symbolSuffixes {
		s = strings.TrimSuffix(s, suf)
	}
	return s
}

// SplitTags splits a raw tag cell on commas and semicolons, trimming each
// segment and dropping empties. Order is preserved and duplicates are kept.
func SplitTags(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// timeLayouts are tried in order. Layouts without a zone are read as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
	"01/02/2006",
	"2006/01/02 15:04:05",
	"2006/01/02",
}

// timeFloor guards against obviously corrupted exports; so does the
// future check in ParseTime. Neither is timezone validation.
var timeFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParseTime parses a raw timestamp cell against the known broker layouts.
// Timestamps strictly after now or before the year-2000 floor are rejected
// with ErrBadTime.
func ParseTime(raw string, now time.Time) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrBadTime
	}
	for _, layout := range timeLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			continue
		}
		if t.After(now) || t.Before(timeFloor) {
			return time.Time{}, ErrBadTime
		}
		return t, nil
	}
	return time.Time{}, ErrBadTime
}
