package tui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/tui/components"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
)

// contentLeft is the x offset of tab content: border plus padding of
// styles.MainContent.
const contentLeft = 2

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.MouseMsg:
		return a.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		contentWidth, contentHeight := a.contentSize()
		a.home.SetSize(contentWidth, contentHeight)
		a.pager.SetSize(contentWidth, contentHeight)
		a.mypage.SetSize(contentWidth, contentHeight)
		a.helpComp.SetSize(msg.Width, msg.Height)
		return a, nil

	case components.AnimationFrameMsg:
		_, cmd := a.home.Update(msg)
		return a, cmd

	case components.StatusMsg:
		a.statusMsg = msg.Text
		a.statusErr = msg.Err
		return a, nil

	case components.DateSelectedMsg:
		a.statusMsg = "Selected " + a.format.Date(msg.Date, "Monday, January 2, 2006")
		a.statusErr = false
		return a, nil

	case components.MonthChangedMsg:
		a.statusMsg = ""
		return a, nil

	case components.ModeChangedMsg:
		a.statusMsg = fmt.Sprintf("%s view", msg.Mode)
		a.statusErr = false
		return a, nil

	case components.SaveDefaultsMsg:
		return a, a.saveDefaults()

	case defaultsSavedMsg:
		a.config.UI = msg.ui
		a.statusMsg = fmt.Sprintf("Saved defaults: %s view, %s tab", msg.ui.StartView, msg.ui.StartTab)
		a.statusErr = false
		return a, nil
	}

	return a, nil
}

// handleKeyMsg routes global keys and forwards the rest to the active tab.
func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		switch {
		case key.Matches(msg, a.keys.Help), key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Quit):
			a.showHelp = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.showHelp = true
		return a, nil
	case key.Matches(msg, a.keys.NextTab):
		a.switchTab(a.currentTab.Next())
		return a, nil
	case key.Matches(msg, a.keys.PrevTab):
		a.switchTab(a.currentTab.Prev())
		return a, nil
	case key.Matches(msg, a.keys.TabHome):
		a.switchTab(state.TabHome)
		return a, nil
	case key.Matches(msg, a.keys.TabPager):
		a.switchTab(state.TabCalendar)
		return a, nil
	case key.Matches(msg, a.keys.TabMyPage):
		a.switchTab(state.TabMyPage)
		return a, nil
	case key.Matches(msg, a.keys.Back):
		a.statusMsg = ""
		return a, nil
	}

	_, cmd := a.activeComponent().Update(msg)
	return a, cmd
}

// handleMouseMsg handles tab clicks and forwards everything else to the
// active tab in content coordinates. Motion and release events are always
// forwarded so a drag that leaves the content area still ends.
func (a *App) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.showHelp {
		return a, nil
	}

	top := a.tabBarHeight()
	if msg.Action == tea.MouseActionPress && msg.Y < top {
		if msg.Button == tea.MouseButtonLeft {
			a.handleTabClick(msg.X)
		}
		return a, nil
	}

	// Skip the top border of the content box.
	msg.X -= contentLeft
	msg.Y -= top + 1

	_, cmd := a.activeComponent().Update(msg)
	return a, cmd
}

// handleTabClick switches to the tab under column x.
func (a *App) handleTabClick(x int) {
	// Start after TabBar left padding
	pos := 1
	for _, t := range getTabDefinitions() {
		w := lipgloss.Width(a.renderTab(t))
		if x >= pos && x < pos+w {
			a.switchTab(t.tab)
			return
		}
		pos += w + 1 // separator
	}
}

// defaultsSavedMsg carries the UI settings that were written to disk.
type defaultsSavedMsg struct {
	ui config.UIConfig
}

// saveDefaults stores the home view mode and last calendar tab as startup
// defaults. The live config is only updated once the write succeeds.
func (a *App) saveDefaults() tea.Cmd {
	cfg := *a.config
	cfg.UI.StartView = a.home.State().Mode().String()
	cfg.UI.StartTab = a.lastCalendarTab.String()
	save := a.saveConfig

	return func() tea.Msg {
		if err := save(&cfg); err != nil {
			log.Printf("app: save config: %v", err)
			return components.StatusMsg{Text: "Failed to save config: " + err.Error(), Err: true}
		}
		return defaultsSavedMsg{ui: cfg.UI}
	}
}

// contentSize returns the inner size of the content box.
func (a *App) contentSize() (int, int) {
	// total - tab bar - borders - status bar
	height := a.height - a.tabBarHeight() - 2 - 1
	if height < 1 {
		height = 1
	}
	return a.width - 2*contentLeft, height
}

// tabBarHeight is the rendered height of the tab bar.
func (a *App) tabBarHeight() int {
	return lipgloss.Height(a.renderTabBar())
}

// statusStyle picks the status bar style for the current message.
func (a *App) statusStyle() lipgloss.Style {
	if a.statusErr {
		return styles.StatusBarError
	}
	return styles.StatusBarSuccess
}
