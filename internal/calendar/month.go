// Package calendar holds the date math behind the calendar screens: month
// grids, the navigation/selection state, the week projection and the rules
// that switch between month and week display.
package calendar

import "time"

// Month identifies a calendar month independent of any day or time.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t. The day and time are ignored.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// First returns midnight local time on the 1st of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.Local)
}

// Days returns the number of days in the month, accounting for leap years.
func (m Month) Days() int {
	// Day 0 of the next month normalises to the last day of this one.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// Prev returns the month before m.
func (m Month) Prev() Month {
	return MonthOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.Local))
}

// Next returns the month after m.
func (m Month) Next() Month {
	return MonthOf(time.Date(m.Year, m.Month+1, 1, 0, 0, 0, 0, time.Local))
}

// Contains reports whether t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// String formats the month as YYYY-MM.
func (m Month) String() string {
	return m.First().Format("2006-01")
}

// ParseMonth parses a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return Month{}, err
	}
	return MonthOf(t), nil
}

// SameDay reports whether a and b denote the same calendar day. Time of day
// is not compared.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// dateOnly truncates t to midnight local time.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
