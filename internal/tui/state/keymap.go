package state

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap contains all key bindings for the application.
type KeyMap struct {
	// Cursor movement
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Month paging
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding

	// Calendar actions
	Select     key.Binding
	ToggleView key.Binding
	SwipeUp    key.Binding
	SwipeDown  key.Binding
	Copy       key.Binding
	Clear      key.Binding

	// Tabs
	NextTab    key.Binding
	PrevTab    key.Binding
	TabHome    key.Binding
	TabPager   key.Binding
	TabMyPage  key.Binding
	SaveConfig key.Binding

	// General
	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default Vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous week")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next week")),
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "previous day")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "next day")),

		PrevMonth: key.NewBinding(key.WithKeys("[", "<"), key.WithHelp("[/<", "previous month")),
		NextMonth: key.NewBinding(key.WithKeys("]", ">"), key.WithHelp("]/>", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),

		Select:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select day")),
		ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "month/week view")),
		SwipeUp:    key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "swipe up (month)")),
		SwipeDown:  key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "swipe down (week)")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("yy", "copy selected date")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selection")),

		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		TabHome:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		TabPager:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "calendar")),
		TabMyPage:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "my page")),
		SaveConfig: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save as defaults")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevMonth, k.NextMonth, k.Select, k.ToggleView, k.NextTab, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Select, k.Clear},
		{k.PrevMonth, k.NextMonth, k.Today, k.ToggleView, k.SwipeUp, k.SwipeDown},
		{k.NextTab, k.PrevTab, k.TabHome, k.TabPager, k.TabMyPage, k.SaveConfig},
		{k.Copy, k.Help, k.Back, k.Quit},
	}
}

// Action names returned by KeyState.
const (
	ActionNone      = ""
	ActionFirstDay  = "first_day"
	ActionLastDay   = "last_day"
	ActionCopy      = "copy"
	ActionUnhandled = "unhandled"
)

// KeyState tracks multi-key sequences (like 'gg' or 'yy').
type KeyState struct {
	LastKey  string
	WaitingG bool // Waiting for second 'g' in 'gg'
	WaitingY bool // Waiting for second 'y' in 'yy'
}

// HandleKey resolves the vim-style sequences. It returns the action and
// whether the key was consumed; unconsumed keys go through the KeyMap.
func (ks *KeyState) HandleKey(msg tea.KeyMsg) (string, bool) {
	k := msg.String()

	// Handle 'gg' sequence (first day of month)
	if ks.WaitingG {
		ks.WaitingG = false
		if k == "g" {
			return ActionFirstDay, true
		}
		// If not 'g', reset and process normally
	}

	// Handle 'yy' sequence (copy)
	if ks.WaitingY {
		ks.WaitingY = false
		if k == "y" {
			return ActionCopy, true
		}
	}

	switch k {
	case "g":
		ks.WaitingG = true
		ks.LastKey = k
		return ActionNone, true
	case "y":
		ks.WaitingY = true
		ks.LastKey = k
		return ActionNone, true
	case "G":
		return ActionLastDay, true
	}

	ks.LastKey = k
	return ActionUnhandled, false
}

// Reset clears any pending sequence.
func (ks *KeyState) Reset() {
	ks.WaitingG = false
	ks.WaitingY = false
	ks.LastKey = ""
}
