package components

import (
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/stretchr/testify/assert"
)

func TestCellIndexAt(t *testing.T) {
	assert.Equal(t, 0, cellIndexAt(0, 0, 35))
	assert.Equal(t, 0, cellIndexAt(cellWidth-1, 0, 35))
	assert.Equal(t, 1, cellIndexAt(cellWidth, 0, 35))
	assert.Equal(t, 13, cellIndexAt(gridWidth-1, 1, 35))
	assert.Equal(t, 34, cellIndexAt(gridWidth-1, 4, 35))

	assert.Equal(t, -1, cellIndexAt(-1, 0, 35))
	assert.Equal(t, -1, cellIndexAt(gridWidth, 0, 35))
	assert.Equal(t, -1, cellIndexAt(0, -1, 35))
	assert.Equal(t, -1, cellIndexAt(0, 5, 35))
	// Overflow months leave a partial sixth row.
	assert.Equal(t, 35, cellIndexAt(0, 5, 36))
	assert.Equal(t, -1, cellIndexAt(cellWidth, 5, 36))
}

func TestFitLines(t *testing.T) {
	lines := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "b"}, fitLines(lines, 2, 3))
	assert.Equal(t, []string{"a", "b", "c", "   "}, fitLines(lines, 4, 3))
	assert.Empty(t, fitLines(lines, -1, 3))
}

func TestClampToMonth(t *testing.T) {
	feb := calendar.Month{Year: 2023, Month: time.February}
	assert.Equal(t, date(2023, time.February, 28), clampToMonth(date(2023, time.January, 31), feb))
	assert.Equal(t, date(2023, time.February, 15), clampToMonth(date(2023, time.March, 15), feb))
}

func TestRenderHeaders(t *testing.T) {
	format := locale.New("en_US", "")

	header := renderMonthHeader(format.MonthYear(date(2024, time.April, 1)))
	assert.Contains(t, header, "April 2024")
	assert.Equal(t, gridWidth, lipgloss.Width(header))

	weekdays := renderWeekdayHeader(format)
	assert.Contains(t, weekdays, "Sun")
	assert.Contains(t, weekdays, "Sat")
}
