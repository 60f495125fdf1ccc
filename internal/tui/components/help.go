package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
)

// HelpModel renders the help overlay with keyboard shortcuts.
type HelpModel struct {
	width, height int
	keys          state.KeyMap
	help          help.Model
}

// NewHelp creates a new HelpModel for keys.
func NewHelp(keys state.KeyMap) *HelpModel {
	h := help.New()
	h.ShowAll = true
	h.Styles.FullKey = styles.HelpKey
	h.Styles.FullDesc = styles.HelpDesc
	h.Styles.FullSeparator = styles.HelpSeparator
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSeparator
	return &HelpModel{keys: keys, help: h}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.help.FullHelpView(h.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.HelpDesc.Render("Mouse: drag ↓/↑ on Home for week/month · swipe ←/→ on Calendar to page"))
	b.WriteString("\n\n")

	footer := styles.HelpDesc.Render("Press ESC or ? to close")
	b.WriteString(lipgloss.NewStyle().Width(h.width).Align(lipgloss.Center).Render(footer))

	return styles.Dialog.Render(b.String())
}

// ShortView renders the one-line key hints for the status bar.
func (h *HelpModel) ShortView() string {
	return h.help.ShortHelpView(h.keys.ShortHelp())
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width - 8
	if h.width < 0 {
		h.width = 0
	}
	h.height = height
	h.help.Width = width
}
