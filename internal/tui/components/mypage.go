package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
)

// MyPage shows the settings in effect and a summary of the session.
type MyPage struct {
	cfg    *config.Config
	format *locale.Formatter
	keys   state.KeyMap

	homeSelected  *time.Time
	pagerSelected *time.Time

	width, height int
}

// NewMyPage creates the my page screen.
func NewMyPage(cfg *config.Config, format *locale.Formatter, keys state.KeyMap) *MyPage {
	return &MyPage{cfg: cfg, format: format, keys: keys}
}

// Init implements Component.
func (p *MyPage) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (p *MyPage) Update(msg tea.Msg) (Component, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, p.keys.SaveConfig) {
		return p, func() tea.Msg { return SaveDefaultsMsg{} }
	}
	return p, nil
}

// SetSelections records the selections of the two calendar screens.
func (p *MyPage) SetSelections(home, pager *time.Time) {
	p.homeSelected = home
	p.pagerSelected = pager
}

// View implements Component.
func (p *MyPage) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("My Page"))
	b.WriteString("\n\n")

	ui := p.cfg.UI
	rows := [][2]string{
		{"Config file", p.cfg.Path()},
		{"Locale", p.format.Locale()},
		{"Start view", ui.StartView},
		{"Start tab", ui.StartTab},
		{"Drag threshold", fmt.Sprintf("%.0f units (%.0f per row)", ui.DragThreshold, ui.DragUnitsPerRow)},
		{"Animation", fmt.Sprintf("%d ms", ui.AnimationMS)},
		{"Home selection", p.formatSelection(p.homeSelected)},
		{"Calendar selection", p.formatSelection(p.pagerSelected)},
	}
	for _, r := range rows {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			styles.DetailLabel.Render(r[0]),
			styles.DetailValue.Render(r[1]),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("s: save current home view and tab as startup defaults"))
	return b.String()
}

func (p *MyPage) formatSelection(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return p.format.Date(*t, "Monday, January 2, 2006")
}

// SetSize implements Component.
func (p *MyPage) SetSize(width, height int) {
	p.width = width
	p.height = height
}
