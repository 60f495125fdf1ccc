// Package tui provides the terminal user interface for the calendar.
package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/hy4ri/calendar-tui/internal/tui/components"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
)

// Options tune how the app starts.
type Options struct {
	// InitialTab overrides config.UI.StartTab when set.
	InitialTab string

	// InitialMonth, when set, is shown instead of the current month.
	InitialMonth *calendar.Month

	// Clock defaults to time.Now.
	Clock calendar.Clock
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	config *config.Config
	format *locale.Formatter
	keys   state.KeyMap

	// View state
	currentTab      state.Tab
	lastCalendarTab state.Tab // Last of Home/Calendar visited, saved as start tab
	showHelp        bool

	// UI Components
	home     *components.MonthView
	pager    *components.PagerView
	mypage   *components.MyPage
	helpComp *components.HelpModel

	// UI state
	statusMsg string
	statusErr bool
	width     int
	height    int

	// saveConfig is swapped out in tests.
	saveConfig func(*config.Config) error
}

// NewApp creates a new App instance.
func NewApp(cfg *config.Config, opts Options) *App {
	cfg.Validate()

	format := locale.New(cfg.UI.Locale, cfg.UI.MonthFormat)
	keys := state.DefaultKeyMap()

	app := &App{
		config:     cfg,
		format:     format,
		keys:       keys,
		home:       components.NewMonthView(cfg.UI, format, keys, opts.Clock),
		pager:      components.NewPagerView(cfg.UI, format, keys, opts.Clock),
		mypage:     components.NewMyPage(cfg, format, keys),
		helpComp:   components.NewHelp(keys),
		saveConfig: config.Save,
	}

	if opts.InitialMonth != nil {
		app.home.JumpTo(*opts.InitialMonth)
		app.pager.State().SetReferenceMonth(*opts.InitialMonth)
	}

	tabName := cfg.UI.StartTab
	if opts.InitialTab != "" {
		tabName = opts.InitialTab
	}
	app.currentTab = state.TabHome
	app.lastCalendarTab = state.TabHome
	app.switchTab(state.ParseTab(tabName))

	return app
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	log.Printf("app: start on %s tab, %s view, locale %s", a.currentTab, a.home.State().Mode(), a.format.Locale())
	return nil
}

// activeComponent returns the component of the current tab.
func (a *App) activeComponent() components.Component {
	switch a.currentTab {
	case state.TabCalendar:
		return a.pager
	case state.TabMyPage:
		return a.mypage
	default:
		return a.home
	}
}

// switchTab focuses the component of tab and blurs the others.
func (a *App) switchTab(tab state.Tab) {
	a.home.Blur()
	a.pager.Blur()

	a.currentTab = tab
	switch tab {
	case state.TabHome:
		a.home.Focus()
		a.lastCalendarTab = tab
	case state.TabCalendar:
		a.pager.Focus()
		a.lastCalendarTab = tab
	case state.TabMyPage:
		a.mypage.SetSelections(selectionOf(a.home.State()), selectionOf(a.pager.State()))
	}
	log.Printf("app: tab -> %s", tab)
}

// CurrentTab returns the active tab.
func (a *App) CurrentTab() state.Tab {
	return a.currentTab
}

// Home returns the home calendar component.
func (a *App) Home() *components.MonthView {
	return a.home
}

// Pager returns the paged calendar component.
func (a *App) Pager() *components.PagerView {
	return a.pager
}

// StatusMessage returns the text shown in the status bar.
func (a *App) StatusMessage() string {
	return a.statusMsg
}

// selectionOf returns the selected date of s, or nil.
func selectionOf(s *calendar.State) *time.Time {
	sel, ok := s.Selected()
	if !ok {
		return nil
	}
	return &sel
}
