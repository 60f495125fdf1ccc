// Package state holds the shared enums and key bindings of the TUI.
package state

// Tab represents a top-level tab.
type Tab int

const (
	TabHome     Tab = iota // Month calendar with week-view gesture
	TabCalendar            // Swipe-paged calendar
	TabMyPage              // Settings and session summary
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabHome, TabCalendar, TabMyPage}

// String returns the config name of the tab.
func (t Tab) String() string {
	switch t {
	case TabCalendar:
		return "calendar"
	case TabMyPage:
		return "mypage"
	default:
		return "home"
	}
}

// ParseTab maps a config name to a Tab, defaulting to TabHome.
func ParseTab(s string) Tab {
	switch s {
	case "calendar":
		return TabCalendar
	case "mypage":
		return TabMyPage
	default:
		return TabHome
	}
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(int(t)+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(int(t)+len(Tabs)-1)%len(Tabs)]
}
