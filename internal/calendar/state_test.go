package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestNewState(t *testing.T) {
	now := time.Date(2024, time.April, 17, 15, 30, 0, 0, time.Local)
	s := NewState(fixedClock(now))

	assert.Equal(t, Month{Year: 2024, Month: time.April}, s.ReferenceMonth())
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Equal(t, ModeMonth, s.Mode())
	assert.False(t, s.IsWeekView())
	assert.True(t, s.IsToday(date(2024, time.April, 17)))
	assert.False(t, s.IsToday(date(2024, time.April, 18)))
}

func TestState_Paging(t *testing.T) {
	s := NewState(fixedClock(date(2024, time.January, 10)))

	s.GoToPreviousMonth()
	assert.Equal(t, Month{Year: 2023, Month: time.December}, s.ReferenceMonth())

	s.GoToNextMonth()
	assert.Equal(t, Month{Year: 2024, Month: time.January}, s.ReferenceMonth())

	for i := 0; i < 12; i++ {
		s.GoToNextMonth()
	}
	assert.Equal(t, Month{Year: 2025, Month: time.January}, s.ReferenceMonth())

	s.GoToToday()
	assert.Equal(t, Month{Year: 2024, Month: time.January}, s.ReferenceMonth())
}

func TestState_PrevThenNextRestores(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		s := NewState(fixedClock(date(2024, month, 1)))
		orig := s.ReferenceMonth()
		s.GoToPreviousMonth()
		s.GoToNextMonth()
		assert.Equal(t, orig, s.ReferenceMonth())
	}
}

func TestState_SelectDate(t *testing.T) {
	s := NewState(fixedClock(date(2024, time.April, 17)))
	grid := s.Grid()

	// Leading cell from March is rejected.
	require.False(t, grid[0].InMonth)
	assert.False(t, s.SelectDate(grid[0]))
	_, ok := s.Selected()
	assert.False(t, ok)
	assert.False(t, s.IsSelected(grid[0].Date))

	// Current-month cell is accepted.
	assert.True(t, s.SelectDate(grid[10]))
	sel, ok := s.Selected()
	require.True(t, ok)
	assert.True(t, SameDay(sel, date(2024, time.April, 10)))
	assert.True(t, s.IsSelected(date(2024, time.April, 10).Add(22*time.Hour)))

	// Trailing cell does not replace the selection.
	assert.False(t, s.SelectDate(grid[len(grid)-1]))
	assert.True(t, s.IsSelected(date(2024, time.April, 10)))

	// Paging keeps the selection.
	s.GoToNextMonth()
	assert.True(t, s.IsSelected(date(2024, time.April, 10)))

	s.ClearSelection()
	assert.False(t, s.IsSelected(date(2024, time.April, 10)))
}

func TestState_IsSelectedUnset(t *testing.T) {
	s := NewState(fixedClock(date(2024, time.April, 17)))
	for _, c := range s.Grid() {
		assert.False(t, s.IsSelected(c.Date))
	}
}

func TestState_TodayIsCapturedOnce(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return date(2024, time.April, 17).AddDate(0, 0, calls)
	}
	s := NewState(clock)
	require.Equal(t, 1, calls)

	today := s.Today()
	s.GoToNextMonth()
	s.GoToToday()
	assert.True(t, SameDay(today, s.Today()))
	assert.Equal(t, 1, calls)
}

func TestState_ModeAndVisible(t *testing.T) {
	s := NewState(fixedClock(date(2024, time.April, 17)))
	assert.Len(t, s.Visible(), GridCells)

	assert.True(t, s.SetMode(ModeWeek))
	assert.False(t, s.SetMode(ModeWeek))
	assert.True(t, s.IsWeekView())

	week := s.Visible()
	require.Len(t, week, DaysPerWeek)
	assert.NotEqual(t, -1, IndexOf(week, date(2024, time.April, 17)))

	assert.Equal(t, ModeMonth, s.ToggleMode())
	assert.Equal(t, ModeWeek, s.ToggleMode())
}
