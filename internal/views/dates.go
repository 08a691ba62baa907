package views

import "time"

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// MonthYearUTC extracts the calendar month and year from a stored ISO
// date string using UTC semantics, so filtering and display never shift
// by a day across timezones.
func MonthYearUTC(iso string) (time.Month, int, bool) {
	t, ok := ParseDateUTC(iso)
	if !ok {
		return 0, 0, false
	}
	return t.Month(), t.Year(), true
}

// ParseDateUTC parses a stored ISO date string in UTC.
func ParseDateUTC(iso string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, iso, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
