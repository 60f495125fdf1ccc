package components

import (
	"testing"
	"time"

	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/locale"
	"github.com/hy4ri/calendar-tui/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPager(t *testing.T) *PagerView {
	t.Helper()
	ui := config.DefaultConfig().UI
	format := locale.New(ui.Locale, ui.MonthFormat)
	return NewPagerView(ui, format, state.DefaultKeyMap(), func() time.Time { return testNow })
}

func swipe(p *PagerView, fromX, toX int) {
	p.Update(press(fromX, 4))
	p.Update(motion((fromX+toX)/2, 4))
	p.Update(release(toX, 4))
}

func TestPagerView_SwipeLeftShowsNextMonth(t *testing.T) {
	p := newTestPager(t)

	// 15 columns at 5 units per column is 75 units.
	swipe(p, 20, 5)
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.May}, p.State().ReferenceMonth())
}

func TestPagerView_SwipeRightShowsPreviousMonth(t *testing.T) {
	p := newTestPager(t)

	swipe(p, 5, 20)
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.March}, p.State().ReferenceMonth())
}

func TestPagerView_ShortSwipeStays(t *testing.T) {
	p := newTestPager(t)

	// 50 units does not exceed the threshold.
	swipe(p, 20, 30)
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.April}, p.State().ReferenceMonth())
}

func TestPagerView_Keys(t *testing.T) {
	p := newTestPager(t)

	_, cmd := p.Update(runeKey("l"))
	require.NotNil(t, cmd)
	assert.Equal(t, MonthChangedMsg{Month: calendar.Month{Year: 2024, Month: time.May}}, cmd())

	p.Update(runeKey("["))
	p.Update(runeKey("["))
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.March}, p.State().ReferenceMonth())

	p.Update(runeKey("t"))
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.April}, p.State().ReferenceMonth())
}

func TestPagerView_ClickSelects(t *testing.T) {
	p := newTestPager(t)

	cmd := click(p, 5, pagerGridTop)
	require.NotNil(t, cmd)
	assert.Equal(t, DateSelectedMsg{Date: date(2024, time.April, 1)}, cmd())

	// Padding cells are rejected and keep the selection.
	assert.Nil(t, click(p, 0, pagerGridTop))
	assert.True(t, p.State().IsSelected(date(2024, time.April, 1)))
}

func TestPagerView_SelectionSurvivesPaging(t *testing.T) {
	p := newTestPager(t)
	click(p, 5, pagerGridTop)

	swipe(p, 20, 5)
	sel, ok := p.State().Selected()
	require.True(t, ok)
	assert.True(t, calendar.SameDay(date(2024, time.April, 1), sel))
}

func TestPagerView_HeaderClickPages(t *testing.T) {
	p := newTestPager(t)

	click(p, gridWidth-1, pagerHeaderLine)
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.May}, p.State().ReferenceMonth())

	click(p, 0, pagerHeaderLine)
	assert.Equal(t, calendar.Month{Year: 2024, Month: time.April}, p.State().ReferenceMonth())
}

func TestPagerView_View(t *testing.T) {
	p := newTestPager(t)

	view := p.View()
	assert.Contains(t, view, "April 2024")
	assert.Contains(t, view, "Mar")
	assert.Contains(t, view, "May")
}
