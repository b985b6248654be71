// Package calendar holds the week and day arithmetic used by the schedule
// and the diary. Weeks start on Monday; Sunday is the seventh day.
package calendar

import "time"

// DayLayout is the layout of a day key, e.g. "2025-03-17".
const DayLayout = "2006-01-02"

const daysInWeek = 7

// WeekStart returns Monday 00:00:00.000 of the week containing t, in t's location.
func WeekStart(t time.Time) time.Time {
	y, m, d := t.Date()
	// Weekday() counts from Sunday=0; shift so Monday=0 ... Sunday=6
	offset := (int(t.Weekday()) + 6) % daysInWeek
	return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
}

// WeekEnd returns Sunday 23:59:59.999 of the week containing t.
func WeekEnd(t time.Time) time.Time {
	start := WeekStart(t)
	y, m, d := start.Date()
	return time.Date(y, m, d+daysInWeek-1, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// WeekDays returns the seven days of t's week at midnight, Monday first.
func WeekDays(t time.Time) []time.Time {
	start := WeekStart(t)
	y, m, d := start.Date()
	days := make([]time.Time, 0, daysInWeek)
	for i := 0; i < daysInWeek; i++ {
		days = append(days, time.Date(y, m, d+i, 0, 0, 0, 0, t.Location()))
	}
	return days
}

// Midday returns 12:00 of t's calendar day. Scheduled trainings are stored
// at midday so that a shift of a few hours never moves them to another date.
func Midday(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// DayKey is the UTC date portion of t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// InRange reports whether t lies in [from, to], both ends inclusive.
func InRange(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}
