package calendar

import "time"

// Clock returns the current time.
type Clock func() time.Time

// State is the navigation and selection state of one calendar screen. It
// lives in memory only.
type State struct {
	reference Month
	selected  *time.Time
	mode      ViewMode
	today     time.Time
}

// NewState creates a State whose reference month and "today" are taken from
// clock once. A nil clock means time.Now.
func NewState(clock Clock) *State {
	if clock == nil {
		clock = time.Now
	}
	now := clock()
	return &State{
		reference: MonthOf(now),
		mode:      ModeMonth,
		today:     dateOnly(now),
	}
}

// ReferenceMonth returns the month being displayed.
func (s *State) ReferenceMonth() Month {
	return s.reference
}

// SetReferenceMonth jumps to m. The selection is kept.
func (s *State) SetReferenceMonth(m Month) {
	s.reference = m
}

// GoToPreviousMonth pages back one month.
func (s *State) GoToPreviousMonth() {
	s.reference = s.reference.Prev()
}

// GoToNextMonth pages forward one month.
func (s *State) GoToNextMonth() {
	s.reference = s.reference.Next()
}

// GoToToday pages to the month containing the captured today.
func (s *State) GoToToday() {
	s.reference = MonthOf(s.today)
}

// Today returns the day captured when the state was created.
func (s *State) Today() time.Time {
	return s.today
}

// Grid builds the grid of the reference month.
func (s *State) Grid() []DayCell {
	return BuildGrid(s.reference)
}

// SelectDate selects the cell's date if the cell belongs to the reference
// month. Cells from adjacent months are ignored. It reports whether the
// selection was applied.
func (s *State) SelectDate(c DayCell) bool {
	if !c.InMonth {
		return false
	}
	d := dateOnly(c.Date)
	s.selected = &d
	return true
}

// ClearSelection unsets the selected date.
func (s *State) ClearSelection() {
	s.selected = nil
}

// Selected returns the selected date, if any.
func (s *State) Selected() (time.Time, bool) {
	if s.selected == nil {
		return time.Time{}, false
	}
	return *s.selected, true
}

// IsSelected reports whether date is the selected calendar day.
func (s *State) IsSelected(date time.Time) bool {
	return s.selected != nil && SameDay(*s.selected, date)
}

// IsToday reports whether date is the captured today.
func (s *State) IsToday(date time.Time) bool {
	return SameDay(s.today, date)
}

// Mode returns the display mode.
func (s *State) Mode() ViewMode {
	return s.mode
}

// IsWeekView reports whether the state is in week mode.
func (s *State) IsWeekView() bool {
	return s.mode == ModeWeek
}

// SetMode sets the display mode and reports whether it changed.
func (s *State) SetMode(m ViewMode) bool {
	if s.mode == m {
		return false
	}
	s.mode = m
	return true
}

// ToggleMode flips between month and week mode and returns the new mode.
func (s *State) ToggleMode() ViewMode {
	if s.mode == ModeMonth {
		s.mode = ModeWeek
	} else {
		s.mode = ModeMonth
	}
	return s.mode
}

// Visible returns the cells shown in the current mode: the full grid in
// month mode, the projected week in week mode.
func (s *State) Visible() []DayCell {
	grid := s.Grid()
	if s.mode == ModeWeek {
		return ProjectWeek(grid, s.today)
	}
	return grid
}
