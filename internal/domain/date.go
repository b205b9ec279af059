package domain

import (
	"strings"
	"time"
)

const (
	// NormalizedDateLayout is how exercise dates are stored, e.g. "Fri Jan 05 2024".
	NormalizedDateLayout = "Mon Jan 02 2006"
	// DisplayDateLayout is how dates appear in a log, e.g. "Fri Jan 5 2024".
	DisplayDateLayout = "Mon Jan 2 2006"
)

// acceptedDateLayouts lists the input forms recognised when logging an exercise.
var acceptedDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	NormalizedDateLayout,
	DisplayDateLayout,
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseDate parses input in any accepted layout and returns the calendar day
// at UTC midnight. Time of day and zone offset are discarded.
func ParseDate(input string) (time.Time, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedDateLayouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return StartOfDay(t), true
		}
	}
	return time.Time{}, false
}

// StartOfDay keeps only the calendar date of t, as seen in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NormalizeDate resolves an optional date input to a calendar day. Missing or
// unparseable input falls back to the day of now.
func NormalizeDate(input string, now time.Time) time.Time {
	if day, ok := ParseDate(input); ok {
		return day
	}
	return StartOfDay(now.UTC())
}

// FormatNormalized renders day in the stored form.
func FormatNormalized(day time.Time) string {
	return day.Format(NormalizedDateLayout)
}

// FormatDisplay converts a stored date to the log form. Values that cannot be
// parsed are returned unchanged.
func FormatDisplay(stored string) string {
	day, ok := ParseDate(stored)
	if !ok {
		return stored
	}
	return day.Format(DisplayDateLayout)
}
