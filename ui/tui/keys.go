package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the keys the model handles itself. Everything else is sent
// to the session, which resolves it against Lua binds and the configured
// key map.
type keyMap struct {
	Quit       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("pgup", "up"),
			key.WithHelp("pgup", "older"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("pgdown", "down"),
			key.WithHelp("pgdn", "newer"),
		),
	}
}

// helpBindings lists what the status line advertises. The yank and reload
// entries describe the default session key map.
func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("^r", "reload")),
		k.ScrollUp,
		k.Quit,
	}
}
