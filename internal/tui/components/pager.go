package components

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
	"github.com/hy4ri/calendar-tui/internal/tui/utils"
)

// Line offsets of the pager layout.
const (
	pagerHeaderLine = 0
	pagerGridTop    = 2
)

var _ Focusable = (*PagerView)(nil)

// PagerView is the swipe-paged calendar screen. It shares the grid builder
// with MonthView but pages months with horizontal drags instead of
// collapsing to a week.
type PagerView struct {
	state  *calendar.State
	format *locale.Formatter
	ui     config.UIConfig
	keys   state.KeyMap

	dragging       bool
	pressX, pressY int

	width, height int
	focused       bool
}

// NewPagerView creates the paged calendar.
func NewPagerView(ui config.UIConfig, format *locale.Formatter, keys state.KeyMap, clock calendar.Clock) *PagerView {
	return &PagerView{
		state:  calendar.NewState(clock),
		format: format,
		ui:     ui,
		keys:   keys,
	}
}

// Init implements Component.
func (p *PagerView) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (p *PagerView) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.PrevMonth), key.Matches(msg, p.keys.Left):
			return p, p.page(-1)
		case key.Matches(msg, p.keys.NextMonth), key.Matches(msg, p.keys.Right):
			return p, p.page(1)
		case key.Matches(msg, p.keys.Today):
			p.state.GoToToday()
			return p, p.monthChanged()
		case key.Matches(msg, p.keys.Clear):
			p.state.ClearSelection()
		}
	case tea.MouseMsg:
		return p, p.handleMouseMsg(msg)
	}
	return p, nil
}

// unitsPerColumn converts terminal columns to gesture units. A cell is
// cellWidth columns wide and counts as much as one grid row.
func (p *PagerView) unitsPerColumn() float64 {
	return p.ui.DragUnitsPerRow / cellWidth
}

func (p *PagerView) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		p.dragging = true
		p.pressX, p.pressY = msg.X, msg.Y
	case tea.MouseActionRelease:
		if !p.dragging {
			return nil
		}
		p.dragging = false
		dx := float64(msg.X-p.pressX) * p.unitsPerColumn()
		if delta := calendar.DecidePage(dx, p.ui.DragThreshold); delta != 0 {
			log.Printf("pager: swipe of %.0f units", dx)
			return p.page(delta)
		}
		if msg.X == p.pressX && msg.Y == p.pressY {
			return p.click(msg.X, msg.Y)
		}
	}
	return nil
}

func (p *PagerView) click(x, y int) tea.Cmd {
	if y == pagerHeaderLine {
		switch {
		case x <= 1:
			return p.page(-1)
		case x >= gridWidth-2 && x < gridWidth:
			return p.page(1)
		}
		return nil
	}

	grid := p.state.Grid()
	idx := cellIndexAt(x, y-pagerGridTop, len(grid))
	if idx < 0 || !p.state.SelectDate(grid[idx]) {
		return nil
	}
	date := grid[idx].Date
	return func() tea.Msg { return DateSelectedMsg{Date: date} }
}

func (p *PagerView) page(delta int) tea.Cmd {
	p.state.Page(delta)
	return p.monthChanged()
}

func (p *PagerView) monthChanged() tea.Cmd {
	ref := p.state.ReferenceMonth()
	log.Printf("pager: reference month %s", ref)
	return func() tea.Msg { return MonthChangedMsg{Month: ref} }
}

// View implements Component.
func (p *PagerView) View() string {
	var b strings.Builder
	ref := p.state.ReferenceMonth()

	b.WriteString(renderMonthHeader(p.format.MonthYear(ref.First())))
	b.WriteString("\n")
	b.WriteString(renderWeekdayHeader(p.format))
	b.WriteString("\n")

	for _, line := range renderWeeks(p.state.Grid(), p.state, time.Time{}, false) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.renderPageIndicator())
	b.WriteString("\n")
	b.WriteString(styles.HelpDesc.Render("swipe ← → or h/l to page · click a day to select"))

	return b.String()
}

// renderPageIndicator renders "March  ○ ● ○  May" centered under the grid.
func (p *PagerView) renderPageIndicator() string {
	ref := p.state.ReferenceMonth()
	prev := p.format.Date(ref.Prev().First(), "Jan")
	next := p.format.Date(ref.Next().First(), "Jan")

	dots := styles.PageDot.Render("○") + " " + styles.PageDotActive.Render("●") + " " + styles.PageDot.Render("○")
	side := (gridWidth - 5) / 2
	return styles.HelpDesc.Render(utils.PadRight("‹ "+prev, side)) +
		dots +
		styles.HelpDesc.Render(utils.PadLeft(next+" ›", side))
}

// SetSize implements Component.
func (p *PagerView) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Focus sets focus on the pager.
func (p *PagerView) Focus() {
	p.focused = true
}

// Blur removes focus.
func (p *PagerView) Blur() {
	p.focused = false
	p.dragging = false
}

// Focused returns focus state.
func (p *PagerView) Focused() bool {
	return p.focused
}

// State exposes the navigation state.
func (p *PagerView) State() *calendar.State {
	return p.state
}
