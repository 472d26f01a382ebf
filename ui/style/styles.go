package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// Display panel
	Panel   lipgloss.Style
	Result  lipgloss.Style
	Entry   lipgloss.Style
	Pending lipgloss.Style

	// Keypad
	Digit    lipgloss.Style
	Operator lipgloss.Style
	Equals   lipgloss.Style
	Active   lipgloss.Style // key pressed most recently

	// Tape
	TapeHeader lipgloss.Style
	TapeLine   lipgloss.Style
	TapeBorder lipgloss.Style

	// Status line
	StatusBar lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
}

// palette is the handful of colors a theme chooses.
type palette struct {
	text, muted, panel, digit, operator, equals, active, err lipgloss.Color
}

var themes = map[string]palette{
	"dark": {
		text:     "252",
		muted:    "243",
		panel:    "240",
		digit:    "241", // Gray keys
		operator: "208", // Orange operators
		equals:   "62",
		active:   "230",
		err:      "196",
	},
	"light": {
		text:     "235",
		muted:    "245",
		panel:    "250",
		digit:    "252",
		operator: "214",
		equals:   "111",
		active:   "16",
		err:      "160",
	},
}

// DefaultStyles returns the dark theme.
func DefaultStyles() Styles {
	return ThemeStyles("dark")
}

// ThemeStyles returns styles for a named theme, falling back to dark.
func ThemeStyles(theme string) Styles {
	p, ok := themes[theme]
	if !ok {
		p = themes["dark"]
	}

	key := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Align(lipgloss.Center).
		Bold(true)

	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.panel).
			Padding(0, 1),
		Result: lipgloss.NewStyle().
			Foreground(p.muted).
			Align(lipgloss.Right),
		Entry: lipgloss.NewStyle().
			Foreground(p.text).
			Bold(true).
			Align(lipgloss.Right),
		Pending: lipgloss.NewStyle().
			Foreground(p.operator),

		Digit: key.
			BorderForeground(p.digit).
			Foreground(p.text),
		Operator: key.
			BorderForeground(p.operator).
			Foreground(p.operator),
		Equals: key.
			BorderForeground(p.equals).
			Foreground(p.equals),
		Active: key.
			BorderForeground(p.active).
			Foreground(p.active),

		TapeHeader: lipgloss.NewStyle().
			Foreground(p.muted).
			Bold(true),
		TapeLine: lipgloss.NewStyle().
			Foreground(p.text),
		TapeBorder: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(p.panel).
			PaddingLeft(1),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.text),
		Error: lipgloss.NewStyle().
			Foreground(p.err),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}
