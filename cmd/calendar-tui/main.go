// Package main is the entry point for the calendar TUI application.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/calendar-tui/internal/calendar"
	"github.com/hy4ri/calendar-tui/internal/config"
	"github.com/hy4ri/calendar-tui/internal/tui"
)

const version = "0.1.0"

// debugEnv enables debug logging when set to any non-empty value.
const debugEnv = "CALENDAR_TUI_DEBUG"

const helpText = `calendar-tui - Terminal month calendar with swipe and drag gestures

USAGE:
    calendar-tui [OPTIONS]

OPTIONS:
    -h, --help          Show this help message
    -v, --version       Show version information
    --init              Create a template config file
    --week              Start the home calendar in week view
    --month YYYY-MM     Start on the given month
    --calendar          Start on the paged calendar tab
    --mypage            Start on the my page tab
    --debug             Write debug logs to ./debug.log

CONFIGURATION:
    Config file: ~/.config/calendar-tui/config.yaml

KEYBINDINGS:
    Navigation:
        h/j/k/l     Move the cursor
        gg/G        First/last day of the month
        [ / ]       Previous/next month
        t           Jump to today
        Tab         Next tab
        1-3         Jump to tab

    Actions:
        Enter       Select the date under the cursor
        v           Toggle month/week view
        J / K       Swipe down/up (week/month view)
        yy          Copy the selected date
        x           Clear selection
        s           Save startup defaults (my page)

    Mouse:
        Drag down/up on Home to switch to month/week view
        Swipe left/right on Calendar to page months
        Click < or > in the header to page months

    Other:
        ?           Show help
        q           Quit
`

const configTemplate = `# Calendar TUI Configuration
# Location: ~/.config/calendar-tui/config.yaml

ui:
  # Initial view of the home calendar: "month" or "week"
  start_view: month

  # Tab shown at startup: "home", "calendar" or "mypage"
  start_tab: home

  # Locale for month and weekday names (e.g. en_US, de_DE, ko_KR)
  locale: en_US

  # Go time layouts for the month header and for copied dates
  month_format: "January 2006"
  copy_format: "2006-01-02"

  # Vertical drag distance needed to switch views, in drag units
  drag_threshold: 50
  # Drag units per terminal row
  drag_units_per_row: 25

  # Height animation duration in milliseconds (0 disables it)
  animation_ms: 300
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp     bool
		showVersion  bool
		initConfig   bool
		weekView     bool
		viewCalendar bool
		viewMyPage   bool
		debug        bool
		month        string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&weekView, "week", false, "Start in week view")
	flag.BoolVar(&viewCalendar, "calendar", false, "Start in calendar tab")
	flag.BoolVar(&viewMyPage, "mypage", false, "Start in my page tab")
	flag.BoolVar(&debug, "debug", false, "Write debug log")
	flag.StringVar(&month, "month", "", "Start month (YYYY-MM)")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("calendar-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	opts := tui.Options{}
	if month != "" {
		m, err := calendar.ParseMonth(month)
		if err != nil {
			return fmt.Errorf("invalid --month: %w", err)
		}
		opts.InitialMonth = &m
	}

	if viewCalendar {
		opts.InitialTab = "calendar"
	} else if viewMyPage {
		opts.InitialTab = "mypage"
	}

	// Normal application flow
	return runApp(opts, weekView, debug || os.Getenv(debugEnv) != "")
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// runApp starts the main TUI application.
func runApp(opts tui.Options, weekView, debug bool) error {
	if debug {
		f, err := tea.LogToFile("debug.log", "calendar-tui")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The flag overrides the config for this run only.
	if weekView {
		cfg.UI.StartView = calendar.ModeWeek.String()
	}

	app := tui.NewApp(cfg, opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
