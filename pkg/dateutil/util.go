package dateutil

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func IsSameDay(a, b time.Time) bool {
	return BeginningOfDay(a).Equal(BeginningOfDay(b.In(a.Location())))
}

// IsYesterday tells whether a falls on the calendar day immediately before
// the day of b.
func IsYesterday(a, b time.Time) bool {
	return IsSameDay(a.AddDate(0, 0, 1), b)
}
