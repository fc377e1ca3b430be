package match

import (
	"math"
	"time"
)

// dateLayouts are tried in order; the first layout that parses the whole
// string wins. The vocabulary matches what the scraper captures: dotted
// day.month.year with 2 or 4 digit years, ISO dates, and spelled-out months.
var dateLayouts = []string{
	"2.1.2006",
	"2.1.06",
	"2006-01-02",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate attempts to normalize raw date text into a point in time.
// Returns ok=false for empty or unrecognized input; that is a normal
// outcome, not an error, and callers skip date-dependent behavior.
func ParseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysUntil returns the number of whole days from now until dt, floored.
// A match half a day in the past reports -1, not 0.
func DaysUntil(dt, now time.Time) int {
	return int(math.Floor(dt.Sub(now).Hours() / 24))
}
