package calendar

import "time"

// ProjectWeek returns the week of grid that contains today as a
// current-month cell. When the reference month does not contain today the
// first week is returned. Only the first five weeks are searched.
func ProjectWeek(grid []DayCell, today time.Time) []DayCell {
	weeks := Weeks(grid)
	if len(weeks) == 0 {
		return nil
	}
	return weeks[WeekIndex(grid, today)]
}

// WeekIndex returns the row ProjectWeek picks.
func WeekIndex(grid []DayCell, today time.Time) int {
	for i, week := range Weeks(grid) {
		if i == GridRows {
			break
		}
		for _, c := range week {
			if c.InMonth && SameDay(c.Date, today) {
				return i
			}
		}
	}
	return 0
}
