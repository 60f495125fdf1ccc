package components

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/hy4ri/calendar-tui/internal/tui/styles"
)

// Line offsets of the month view layout.
const (
	monthHeaderLine  = 0
	monthWeekdayLine = 1
	monthGridTop     = 2
)

// frameInterval is the delay between animation frames.
const frameInterval = 16 * time.Millisecond

var _ Focusable = (*MonthView)(nil)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// MonthView is the home screen calendar: a month grid that collapses to the
// current week when dragged down and expands again when dragged up.
type MonthView struct {
	state  *calendar.State
	format *locale.Formatter
	ui     config.UIConfig
	keys   state.KeyMap
	seq    state.KeyState
	clock  calendar.Clock

	cursor time.Time // keyboard cursor, always inside the reference month

	drag           *calendar.DragTracker
	pressX, pressY int

	tween     calendar.HeightTween
	animating bool
	animID    int

	width, height int
	focused       bool
}

// NewMonthView creates the home calendar. clock is used both for the
// "today" capture and for animation timing; nil means time.Now.
func NewMonthView(ui config.UIConfig, format *locale.Formatter, keys state.KeyMap, clock calendar.Clock) *MonthView {
	if clock == nil {
		clock = time.Now
	}
	st := calendar.NewState(clock)
	st.SetMode(calendar.ParseViewMode(ui.StartView))

	return &MonthView{
		state:   st,
		format:  format,
		ui:      ui,
		keys:    keys,
		clock:   clock,
		cursor:  st.Today(),
		drag:    calendar.NewDragTracker(ui.DragThreshold),
		focused: true,
	}
}

// Init implements Component.
func (m *MonthView) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (m *MonthView) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)
	case AnimationFrameMsg:
		return m, m.handleFrame(msg)
	}
	return m, nil
}

// handleKeyMsg processes keyboard input for calendar navigation.
func (m *MonthView) handleKeyMsg(msg tea.KeyMsg) tea.Cmd {
	if action, consumed := m.seq.HandleKey(msg); consumed {
		switch action {
		case state.ActionFirstDay:
			m.moveCursorTo(m.state.ReferenceMonth().First())
		case state.ActionLastDay:
			ref := m.state.ReferenceMonth()
			m.moveCursorTo(time.Date(ref.Year, ref.Month, ref.Days(), 0, 0, 0, 0, time.Local))
		case state.ActionCopy:
			return m.copySelected()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1)
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(calendar.DaysPerWeek)
	case key.Matches(msg, m.keys.PrevMonth):
		return m.PrevMonth()
	case key.Matches(msg, m.keys.NextMonth):
		return m.NextMonth()
	case key.Matches(msg, m.keys.Today):
		m.state.GoToToday()
		m.cursor = m.state.Today()
		return m.monthChanged()
	case key.Matches(msg, m.keys.Select):
		cells := m.state.Visible()
		idx := calendar.IndexOf(cells, m.cursor)
		if idx < 0 {
			return nil
		}
		return m.selectCell(cells[idx])
	case key.Matches(msg, m.keys.Clear):
		m.state.ClearSelection()
	case key.Matches(msg, m.keys.ToggleView):
		return m.setMode(otherMode(m.state.Mode()))
	case key.Matches(msg, m.keys.SwipeUp):
		return m.applyDrag(-2 * m.ui.DragThreshold)
	case key.Matches(msg, m.keys.SwipeDown):
		return m.applyDrag(2 * m.ui.DragThreshold)
	}
	return nil
}

// handleMouseMsg turns left-button drags into the month/week gesture and
// short clicks into paging or selection.
func (m *MonthView) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	units := m.ui.DragUnitsPerRow

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.pressX, m.pressY = msg.X, msg.Y
		m.drag.Start(float64(msg.Y) * units)
		return nil

	case tea.MouseActionMotion:
		m.drag.Move(float64(msg.Y) * units)
		return nil

	case tea.MouseActionRelease:
		if !m.drag.Active() {
			return nil
		}
		mode, changed := m.drag.End(float64(msg.Y) * units)
		if changed {
			log.Printf("home: drag of %.0f units", m.drag.Distance())
			return m.setMode(mode)
		}
		if msg.X == m.pressX && msg.Y == m.pressY {
			return m.click(msg.X, msg.Y)
		}
	}
	return nil
}

// click handles a press and release on the same cell.
func (m *MonthView) click(x, y int) tea.Cmd {
	if y == monthHeaderLine {
		switch {
		case x <= 1:
			return m.PrevMonth()
		case x >= gridWidth-2 && x < gridWidth:
			return m.NextMonth()
		}
		return nil
	}

	if m.animating || y < monthGridTop {
		return nil
	}
	cells := m.state.Visible()
	idx := cellIndexAt(x, y-monthGridTop, len(cells))
	if idx < 0 {
		return nil
	}
	return m.selectCell(cells[idx])
}

// applyDrag runs a synthetic drag of distance units through the release
// rule.
func (m *MonthView) applyDrag(distance float64) tea.Cmd {
	mode, changed := calendar.DecideModeWithThreshold(distance, m.ui.DragThreshold)
	if !changed {
		return nil
	}
	return m.setMode(mode)
}

// setMode switches the display mode and starts the height transition.
func (m *MonthView) setMode(mode calendar.ViewMode) tea.Cmd {
	from := m.displayRows()
	if !m.state.SetMode(mode) {
		return nil
	}
	log.Printf("home: mode -> %s", mode)

	notify := func() tea.Msg { return ModeChangedMsg{Mode: mode} }

	duration := time.Duration(m.ui.AnimationMS) * time.Millisecond
	if duration <= 0 {
		m.animating = false
		return notify
	}

	m.animID++
	m.tween = calendar.NewHeightTween(from, float64(m.targetRows()), m.clock(), duration)
	m.animating = true
	return tea.Batch(notify, m.nextFrame())
}

func (m *MonthView) nextFrame() tea.Cmd {
	id := m.animID
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return AnimationFrameMsg{ID: id}
	})
}

func (m *MonthView) handleFrame(msg AnimationFrameMsg) tea.Cmd {
	if msg.ID != m.animID || !m.animating {
		return nil
	}
	if m.tween.Done(m.clock()) {
		m.animating = false
		return nil
	}
	return m.nextFrame()
}

// targetRows is the grid height of the current mode once settled.
func (m *MonthView) targetRows() int {
	if m.state.IsWeekView() {
		return 1
	}
	return calendar.Rows(m.state.Grid())
}

// displayRows is the grid height right now, mid-transition or settled.
func (m *MonthView) displayRows() float64 {
	if m.animating {
		return m.tween.Value(m.clock())
	}
	return float64(m.targetRows())
}

// Animating reports whether a height transition is running.
func (m *MonthView) Animating() bool {
	return m.animating
}

// PrevMonth pages back, keeping the cursor's day where possible.
func (m *MonthView) PrevMonth() tea.Cmd {
	m.state.GoToPreviousMonth()
	m.cursor = clampToMonth(m.cursor, m.state.ReferenceMonth())
	return m.monthChanged()
}

// NextMonth pages forward, keeping the cursor's day where possible.
func (m *MonthView) NextMonth() tea.Cmd {
	m.state.GoToNextMonth()
	m.cursor = clampToMonth(m.cursor, m.state.ReferenceMonth())
	return m.monthChanged()
}

func (m *MonthView) monthChanged() tea.Cmd {
	ref := m.state.ReferenceMonth()
	log.Printf("home: reference month %s", ref)
	return func() tea.Msg { return MonthChangedMsg{Month: ref} }
}

// JumpTo shows month, keeping the cursor's day where possible.
func (m *MonthView) JumpTo(month calendar.Month) {
	m.state.SetReferenceMonth(month)
	m.cursor = clampToMonth(m.cursor, month)
}

// moveCursor moves the keyboard cursor by days, paging when it leaves the
// reference month. In week view the cursor stays inside the shown week.
func (m *MonthView) moveCursor(days int) tea.Cmd {
	return m.moveCursorTo(m.cursor.AddDate(0, 0, days))
}

func (m *MonthView) moveCursorTo(d time.Time) tea.Cmd {
	if m.state.IsWeekView() && calendar.IndexOf(m.state.Visible(), d) < 0 {
		return nil
	}
	m.cursor = d
	target := calendar.MonthOf(d)
	if target == m.state.ReferenceMonth() {
		return nil
	}
	m.state.SetReferenceMonth(target)
	return m.monthChanged()
}

// selectCell applies the selection rule and reports accepted selections.
func (m *MonthView) selectCell(c calendar.DayCell) tea.Cmd {
	if !m.state.SelectDate(c) {
		return nil
	}
	m.cursor = c.Date
	date := c.Date
	log.Printf("home: selected %s", date.Format("2006-01-02"))
	return func() tea.Msg { return DateSelectedMsg{Date: date} }
}

// copySelected copies the selected date to the clipboard.
func (m *MonthView) copySelected() tea.Cmd {
	sel, ok := m.state.Selected()
	if !ok {
		return func() tea.Msg { return StatusMsg{Text: "No date selected", Err: true} }
	}
	text := m.format.Date(sel, m.ui.CopyFormat)
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return StatusMsg{Text: "Failed to copy: " + err.Error(), Err: true}
		}
		return StatusMsg{Text: "Copied: " + text}
	}
}

// View implements Component.
func (m *MonthView) View() string {
	var b strings.Builder

	b.WriteString(renderMonthHeader(m.format.MonthYear(m.state.ReferenceMonth().First())))
	b.WriteString("\n")
	b.WriteString(renderWeekdayHeader(m.format))
	b.WriteString("\n")

	rows := int(math.Round(m.displayRows()))
	lines := renderWeeks(m.state.Visible(), m.state, m.cursor, m.focused)
	for _, line := range fitLines(lines, rows, gridWidth) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if sel, ok := m.state.Selected(); ok {
		b.WriteString(styles.Subtitle.Render(m.format.Date(sel, "Monday, January 2, 2006")))
	} else {
		b.WriteString(styles.HelpDesc.Render("No date selected"))
	}
	b.WriteString("\n")

	hint := "drag ↓ or J for week view"
	if m.state.IsWeekView() {
		hint = "drag ↑ or K for month view"
	}
	b.WriteString(styles.HelpDesc.Render(fmt.Sprintf("%s view · %s", m.state.Mode(), hint)))

	return b.String()
}

// SetSize implements Component.
func (m *MonthView) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Focus sets focus on the calendar.
func (m *MonthView) Focus() {
	m.focused = true
}

// Blur removes focus.
func (m *MonthView) Blur() {
	m.focused = false
	m.drag.Cancel()
	m.seq.Reset()
}

// Focused returns focus state.
func (m *MonthView) Focused() bool {
	return m.focused
}

// State exposes the navigation state.
func (m *MonthView) State() *calendar.State {
	return m.state
}

// Cursor returns the keyboard cursor date.
func (m *MonthView) Cursor() time.Time {
	return m.cursor
}

func otherMode(mode calendar.ViewMode) calendar.ViewMode {
	if mode == calendar.ModeWeek {
		return calendar.ModeMonth
	}
	return calendar.ModeWeek
}
