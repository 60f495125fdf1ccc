package components

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
	"github.com/hy4ri/calendar-tui/internal/tui/utils"
)

// cellWidth is the display width of one day cell.
const cellWidth = 5

// gridWidth is the display width of a full week row.
const gridWidth = cellWidth * calendar.DaysPerWeek

// firstSunday is any Sunday; weekday labels are formatted from the week
// starting on it.
var firstSunday = time.Date(2024, time.January, 7, 0, 0, 0, 0, time.Local)

// renderMonthHeader renders "<  Month Year  >" across the grid width.
func renderMonthHeader(label string) string {
	inner := gridWidth - 2
	return styles.CalendarNav.Render("<") +
		styles.CalendarHeader.Render(utils.Center(label, inner)) +
		styles.CalendarNav.Render(">")
}

// renderWeekdayHeader renders the Sunday-first weekday labels in the
// formatter's locale.
func renderWeekdayHeader(format *locale.Formatter) string {
	var b strings.Builder
	for i := 0; i < calendar.DaysPerWeek; i++ {
		wd := utils.TruncateString(format.Date(firstSunday.AddDate(0, 0, i), "Mon"), cellWidth-1)
		style := styles.CalendarWeekday
		switch i {
		case 0:
			style = styles.CalendarDaySunday
		case 6:
			style = styles.CalendarDaySaturday
		}
		b.WriteString(style.Render(utils.Center(wd, cellWidth)))
	}
	return b.String()
}

// renderWeeks renders cells as one line per week.
func renderWeeks(cells []calendar.DayCell, st *calendar.State, cursor time.Time, showCursor bool) []string {
	weeks := calendar.Weeks(cells)
	lines := make([]string, 0, len(weeks))
	for _, week := range weeks {
		var b strings.Builder
		for _, c := range week {
			isCursor := showCursor && c.InMonth && calendar.SameDay(c.Date, cursor)
			label := utils.Center(strconv.Itoa(c.Day), cellWidth)
			b.WriteString(dayStyle(c, st, isCursor).Render(label))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// dayStyle picks the visual treatment of a cell: text color from month
// membership, selection and weekday; background from today or selection.
func dayStyle(c calendar.DayCell, st *calendar.State, isCursor bool) lipgloss.Style {
	style := styles.CalendarDay
	selected := c.InMonth && st.IsSelected(c.Date)

	switch {
	case !c.InMonth:
		style = styles.CalendarDayOtherMonth
	case selected:
		style = styles.CalendarDaySelected
	case c.Weekday() == time.Sunday:
		style = styles.CalendarDaySunday
	case c.Weekday() == time.Saturday:
		style = styles.CalendarDaySaturday
	}

	if st.IsToday(c.Date) {
		style = style.Bold(true).
			Background(styles.TodayBackground).
			Foreground(styles.TodayForeground)
	}

	if isCursor {
		style = style.Underline(true).Bold(true)
	}
	return style
}

// cellIndexAt maps a position inside the grid (column in cells, row in
// lines) to an index into a row-major cell slice, or -1.
func cellIndexAt(x, row, count int) int {
	if x < 0 || x >= gridWidth || row < 0 {
		return -1
	}
	idx := row*calendar.DaysPerWeek + x/cellWidth
	if idx >= count {
		return -1
	}
	return idx
}

// fitLines clips or pads lines to exactly height lines of the given width.
func fitLines(lines []string, height, width int) []string {
	if height < 0 {
		height = 0
	}
	out := make([]string, 0, height)
	for i := 0; i < height; i++ {
		if i < len(lines) {
			out = append(out, lines[i])
		} else {
			out = append(out, strings.Repeat(" ", width))
		}
	}
	return out
}

// clampToMonth returns the date in m with the same day number as d, capped
// at the month's length.
func clampToMonth(d time.Time, m calendar.Month) time.Time {
	day := d.Day()
	if n := m.Days(); day > n {
		day = n
	}
	return time.Date(m.Year, m.Month, day, 0, 0, 0, 0, time.Local)
}
