package calendar

import "time"

const (
	// DaysPerWeek is the number of columns in a grid.
	DaysPerWeek = 7

	// GridRows is the default number of week rows in a grid.
	GridRows = 5

	// GridCells is the default grid length (5 rows x 7 columns).
	GridCells = GridRows * DaysPerWeek
)

// DayCell is one entry of a month grid.
type DayCell struct {
	Day     int       // Day-of-month label
	InMonth bool      // True only for days of the reference month
	Date    time.Time // Midnight local time of the day this cell shows
}

// Weekday returns the day of the week of the cell.
func (c DayCell) Weekday() time.Weekday {
	return c.Date.Weekday()
}

// IsWeekend reports whether the cell falls on a Sunday or Saturday.
func (c DayCell) IsWeekend() bool {
	wd := c.Weekday()
	return wd == time.Sunday || wd == time.Saturday
}

// BuildGrid returns the Sunday-first, row-major grid for m: leading days of
// the previous month, every day of m, then days of the next month until the
// grid is full.
//
// The grid has 35 cells. A month that does not fit in five rows (its 1st
// falls late in the week and it is long enough to spill over) keeps all of
// its days and gets no trailing cells, leaving a partial sixth row.
func BuildGrid(m Month) []DayCell {
	first := m.First()
	lead := int(first.Weekday())
	days := m.Days()

	cells := make([]DayCell, 0, GridCells)

	// Leading days, oldest first, ending the day before the 1st.
	for i := lead; i > 0; i-- {
		d := first.AddDate(0, 0, -i)
		cells = append(cells, DayCell{Day: d.Day(), InMonth: false, Date: d})
	}

	for day := 1; day <= days; day++ {
		d := time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, DayCell{Day: day, InMonth: true, Date: d})
	}

	next := m.Next().First()
	for i := 0; len(cells) < GridCells; i++ {
		d := next.AddDate(0, 0, i)
		cells = append(cells, DayCell{Day: d.Day(), InMonth: false, Date: d})
	}

	return cells
}

// Rows returns the number of week rows in grid.
func Rows(grid []DayCell) int {
	return (len(grid) + DaysPerWeek - 1) / DaysPerWeek
}

// Weeks splits grid into consecutive 7-cell rows.
func Weeks(grid []DayCell) [][]DayCell {
	weeks := make([][]DayCell, 0, Rows(grid))
	for start := 0; start < len(grid); start += DaysPerWeek {
		end := start + DaysPerWeek
		if end > len(grid) {
			end = len(grid)
		}
		weeks = append(weeks, grid[start:end])
	}
	return weeks
}

// IndexOf returns the grid index of the cell showing date, or -1.
func IndexOf(grid []DayCell, date time.Time) int {
	for i, c := range grid {
		if SameDay(c.Date, date) {
			return i
		}
	}
	return -1
}
