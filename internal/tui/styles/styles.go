// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#8E8E93", Dark: "#8E8E93"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#0A84FF"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}

	// Weekend colors
	SundayColor   = lipgloss.AdaptiveColor{Light: "#FF3B30", Dark: "#FF453A"}
	SaturdayColor = lipgloss.AdaptiveColor{Light: "#007AFF", Dark: "#0A84FF"}

	// Today highlight colors
	TodayBackground = lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"}
	TodayForeground = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}

	// Inactive is used for days outside the reference month
	Inactive = lipgloss.AdaptiveColor{Light: "#C7C7CC", Dark: "#48484A"}
)

// Base styles
var (
	// Title is the style for section titles
	// NOTE: No margins - they break mouse hit-testing line counts
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)
)

// Main content area styles
var (
	// MainContent is the style for the main content area
	MainContent = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Subtle).
			Padding(0, 1)
)

// StatusBar styles
var (
	statusBackground = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#1F1F1F"}

	// StatusBar is the base style for the status bar
	StatusBar = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}).
			Background(statusBackground).
			Padding(0, 1)

	// StatusBarError is for error messages
	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Background(statusBackground).
			Bold(true)

	// StatusBarSuccess is for success messages
	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Background(statusBackground).
				Bold(true)
)

// Help styles
var (
	// HelpKey is for key bindings in help
	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// HelpDesc is for key binding descriptions
	HelpDesc = lipgloss.NewStyle().
			Foreground(Subtle)

	// HelpSeparator is the separator between key and description
	HelpSeparator = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Dialog styles
var (
	// Dialog is the base style for dialog boxes
	Dialog = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Highlight).
		Padding(1, 2)
)

// Calendar styles
var (
	// CalendarHeader is for month/year header
	CalendarHeader = lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center)

	// CalendarNav is for the < and > paging buttons
	CalendarNav = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight)

	// CalendarWeekday is for day-of-week headers
	CalendarWeekday = lipgloss.NewStyle().
			Foreground(Subtle)

	// CalendarDay is for regular days
	CalendarDay = lipgloss.NewStyle()

	// CalendarDaySunday and CalendarDaySaturday color weekend columns
	CalendarDaySunday   = lipgloss.NewStyle().Foreground(SundayColor)
	CalendarDaySaturday = lipgloss.NewStyle().Foreground(SaturdayColor)

	// CalendarDaySelected is for the selected day
	CalendarDaySelected = lipgloss.NewStyle().
				Bold(true).
				Background(Highlight).
				Foreground(lipgloss.Color("#FFFFFF"))

	// CalendarDayOtherMonth is for days from other months
	CalendarDayOtherMonth = lipgloss.NewStyle().
				Foreground(Inactive)

	// PageDot and PageDotActive render the pager indicator
	PageDot       = lipgloss.NewStyle().Foreground(Inactive)
	PageDotActive = lipgloss.NewStyle().Foreground(Highlight)
)

// Tab bar styles
var (
	// TabBar is the container for the tab bar
	TabBar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Subtle).
		PaddingLeft(1).
		PaddingRight(1)

	// Tab is for inactive tabs
	Tab = lipgloss.NewStyle().
		Padding(0, 2).
		Foreground(Subtle)

	// TabActive is for the active tab
	TabActive = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Highlight)
)

// Detail styles used by the my page screen
var (
	// DetailLabel is for field labels
	DetailLabel = lipgloss.NewStyle().
			Foreground(Subtle).
			Bold(true).
			Width(20)

	// DetailValue is for field values
	DetailValue = lipgloss.NewStyle().
			PaddingLeft(1)
)
