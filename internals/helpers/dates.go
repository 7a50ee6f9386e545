package helper

import (
	"time"
)

// Content dates are stored structured and rendered to the display string
// the app has always shown ("May 1, 2025"). Sorting happens on the
// structured column, never on the display text.
const (
	ContentDateLayout = "2006-01-02"
	DisplayDateLayout = "January 2, 2006"
)

func ParseContentDate(raw string) (time.Time, error) {
	return time.Parse(ContentDateLayout, raw)
}

func FormatContentDate(t time.Time) string {
	return t.Format(ContentDateLayout)
}

func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}

// StartOfToday is the server-local calendar day at UTC midnight, the same
// form ParseContentDate produces for stored dates. Comparing against it
// keeps "today" aligned with the server clock, not the UTC day.
func StartOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
