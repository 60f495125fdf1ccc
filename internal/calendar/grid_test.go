package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestBuildGrid_April2024(t *testing.T) {
	grid := BuildGrid(Month{Year: 2024, Month: time.April})
	require.Len(t, grid, GridCells)

	// 1 leading, 30 current, 4 trailing
	assert.False(t, grid[0].InMonth)
	assert.True(t, SameDay(grid[0].Date, date(2024, time.March, 31)))
	assert.Equal(t, 31, grid[0].Day)

	for i := 1; i <= 30; i++ {
		assert.True(t, grid[i].InMonth, "index %d", i)
		assert.Equal(t, i, grid[i].Day)
		assert.True(t, SameDay(grid[i].Date, date(2024, time.April, i)))
	}

	for i, want := range []int{1, 2, 3, 4} {
		c := grid[31+i]
		assert.False(t, c.InMonth)
		assert.Equal(t, want, c.Day)
		assert.Equal(t, time.May, c.Date.Month())
	}
}

func TestBuildGrid_Properties(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for month := time.January; month <= time.December; month++ {
			m := Month{Year: year, Month: month}
			grid := BuildGrid(m)
			lead := int(m.First().Weekday())

			if lead+m.Days() <= GridCells {
				require.Len(t, grid, GridCells, "%s", m)
			} else {
				require.Len(t, grid, lead+m.Days(), "%s", m)
				require.True(t, grid[len(grid)-1].InMonth, "%s: trailing cells after overflow", m)
			}

			inMonth := 0
			firstIdx := -1
			for i, c := range grid {
				if c.InMonth {
					inMonth++
					if firstIdx < 0 {
						firstIdx = i
					}
				}
				assert.Equal(t, c.Date.Day(), c.Day, "%s index %d", m, i)
				if i > 0 {
					want := grid[i-1].Date.AddDate(0, 0, 1)
					require.True(t, SameDay(want, c.Date), "%s: gap at index %d", m, i)
				}
			}
			require.Equal(t, m.Days(), inMonth, "%s", m)
			require.Equal(t, lead, firstIdx, "%s", m)
		}
	}
}

func TestBuildGrid_LeapFebruary(t *testing.T) {
	tests := []struct {
		year int
		days int
	}{
		{2024, 29},
		{2023, 28},
		{2000, 29},
		{1900, 28},
	}

	for _, tt := range tests {
		m := Month{Year: tt.year, Month: time.February}
		assert.Equal(t, tt.days, m.Days(), "%d", tt.year)

		count := 0
		for _, c := range BuildGrid(m) {
			if c.InMonth {
				count++
			}
		}
		assert.Equal(t, tt.days, count, "%d", tt.year)
	}
}

func TestBuildGrid_OverflowMonthHasNoTrailingCells(t *testing.T) {
	tests := []struct {
		month Month
		size  int
	}{
		{Month{Year: 2024, Month: time.March}, 36},  // Friday start, 31 days
		{Month{Year: 2024, Month: time.June}, 36},   // Saturday start, 30 days
		{Month{Year: 2025, Month: time.August}, 36}, // Friday start, 31 days
		{Month{Year: 2025, Month: time.May}, 35},    // Thursday start, 31 days fits
	}

	for _, tt := range tests {
		grid := BuildGrid(tt.month)
		require.Len(t, grid, tt.size, "%s", tt.month)

		last := grid[len(grid)-1]
		assert.True(t, last.InMonth, "%s", tt.month)
		assert.Equal(t, tt.month.Days(), last.Day, "%s", tt.month)
	}

	assert.Equal(t, 6, Rows(BuildGrid(Month{Year: 2024, Month: time.March})))
}

func TestBuildGrid_MonthStartingSunday(t *testing.T) {
	// September 2024 starts on a Sunday: no leading cells.
	grid := BuildGrid(Month{Year: 2024, Month: time.September})
	require.Len(t, grid, GridCells)
	assert.True(t, grid[0].InMonth)
	assert.Equal(t, 1, grid[0].Day)
}

func TestMonth_PrevNextRollOver(t *testing.T) {
	jan := Month{Year: 2025, Month: time.January}
	assert.Equal(t, Month{Year: 2024, Month: time.December}, jan.Prev())
	assert.Equal(t, jan, jan.Prev().Next())

	dec := Month{Year: 2025, Month: time.December}
	assert.Equal(t, Month{Year: 2026, Month: time.January}, dec.Next())
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-04")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2024, Month: time.April}, m)
	assert.Equal(t, "2024-04", m.String())

	_, err = ParseMonth("April")
	assert.Error(t, err)
}

func TestDayCell_IsWeekend(t *testing.T) {
	grid := BuildGrid(Month{Year: 2024, Month: time.April})
	for i, c := range grid {
		col := i % DaysPerWeek
		assert.Equal(t, col == 0 || col == 6, c.IsWeekend(), "index %d", i)
	}
}

func TestIndexOf(t *testing.T) {
	grid := BuildGrid(Month{Year: 2024, Month: time.April})
	assert.Equal(t, 15, IndexOf(grid, date(2024, time.April, 15).Add(13*time.Hour)))
	assert.Equal(t, -1, IndexOf(grid, date(2024, time.June, 1)))
}
