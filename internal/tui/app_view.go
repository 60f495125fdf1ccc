package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
)

func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	tabBar := a.renderTabBar()
	contentWidth, contentHeight := a.contentSize()

	var content string
	if a.showHelp {
		content = a.helpComp.View()
	} else {
		content = a.activeComponent().View()
	}

	mainContent := styles.MainContent.
		Width(a.width - 2).
		Height(contentHeight).
		Render(lipgloss.Place(contentWidth, contentHeight, lipgloss.Left, lipgloss.Top, content))

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, mainContent, a.renderStatusBar())
}

// tabInfo holds tab metadata for rendering and click handling.
type tabInfo struct {
	tab       state.Tab
	icon      string
	name      string
	shortName string
}

// getTabDefinitions returns the tab definitions.
func getTabDefinitions() []tabInfo {
	return []tabInfo{
		{state.TabHome, "[H]", "Home", "Home"},
		{state.TabCalendar, "[C]", "Calendar", "Cal"},
		{state.TabMyPage, "[M]", "My Page", "Me"},
	}
}

// renderTab renders a single tab label sized for the current width.
func (a *App) renderTab(t tabInfo) string {
	var label string
	switch {
	case a.width < 40:
		label = t.icon
	case a.width < 60:
		label = fmt.Sprintf("%s %s", t.icon, t.shortName)
	default:
		label = fmt.Sprintf("%s %s", t.icon, t.name)
	}

	if a.currentTab == t.tab {
		return styles.TabActive.Render(label)
	}
	return styles.Tab.Render(label)
}

// renderTabBar renders the top tab bar.
func (a *App) renderTabBar() string {
	var tabStrs []string
	for _, t := range getTabDefinitions() {
		tabStrs = append(tabStrs, a.renderTab(t))
	}
	tabLine := strings.Join(tabStrs, " ")

	// Truncate if still too wide
	maxWidth := a.width - 2
	if lipgloss.Width(tabLine) > maxWidth && maxWidth > 0 {
		tabLine = lipgloss.NewStyle().MaxWidth(maxWidth).Render(tabLine)
	}

	return styles.TabBar.Width(a.width).Render(tabLine)
}

// renderStatusBar renders the bottom status bar.
func (a *App) renderStatusBar() string {
	var content string
	if a.statusMsg != "" {
		content = a.statusStyle().Render(a.statusMsg)
	} else {
		content = a.helpComp.ShortView()
	}
	return styles.StatusBar.Width(a.width).MaxHeight(1).Render(content)
}
