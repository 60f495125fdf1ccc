package components

import (
	"time"

	"github.com/hy4ri/calendar-tui/internal/calendar"
)

// DateSelectedMsg is emitted when a current-month day is selected.
type DateSelectedMsg struct {
	Date time.Time
}

// MonthChangedMsg is emitted when a calendar pages to another month.
type MonthChangedMsg struct {
	Month calendar.Month
}

// ModeChangedMsg is emitted when the home calendar switches between month
// and week display.
type ModeChangedMsg struct {
	Mode calendar.ViewMode
}

// StatusMsg asks the app to show a message in the status bar.
type StatusMsg struct {
	Text string
	Err  bool
}

// AnimationFrameMsg drives the height transition. Frames whose ID does not
// match the running transition are stale and ignored.
type AnimationFrameMsg struct {
	ID int
}

// SaveDefaultsMsg asks the app to persist the current view and tab as the
// startup defaults.
type SaveDefaultsMsg struct{}
