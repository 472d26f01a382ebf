package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/tally/config"
	"github.com/drake/tally/event"
	"github.com/drake/tally/ui"
	"github.com/drake/tally/ui/style"
	"github.com/drake/tally/ui/tui/widget"
)

// frameMsg carries a session frame into the Bubble Tea loop.
type frameMsg ui.Frame

// quitMsg asks the model to exit.
type quitMsg struct{}

// minTapeWidth is the narrowest terminal column count left over for the tape
// before it is hidden.
const minTapeWidth = 16

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	display *widget.Display
	keypad  *widget.Keypad
	tape    *widget.Tape
	status  *widget.Status
	styles  style.Styles
	keys    keyMap
	labels  map[string]string // key string -> calculator label

	width    int
	height   int
	showTape bool

	events   chan<- event.Event
	quitting bool
}

// NewModel creates a new TUI model that forwards user actions to events.
// labels maps key strings to calculator labels for keypad highlights; nil
// means config.DefaultKeys.
func NewModel(events chan<- event.Event, styles style.Styles, labels map[string]string) Model {
	if labels == nil {
		labels = config.DefaultKeys()
	}
	keys := defaultKeyMap()
	return Model{
		display: widget.NewDisplay(styles),
		keypad:  widget.NewKeypad(styles),
		tape:    widget.NewTape(styles),
		status:  widget.NewStatus(styles, keys.helpBindings()),
		styles:  styles,
		keys:    keys,
		labels:  labels,
		events:  events,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.send(event.NewControl(event.ActionQuit))
			return m, tea.Quit
		case key.Matches(msg, m.keys.ScrollUp):
			m.tape.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.tape.ScrollDown(1)
			return m, nil
		}
		k := msg.String()
		if label, ok := m.labels[k]; ok {
			m.keypad.SetActive(label)
		}
		m.send(event.NewKey(k))
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		m.display.Set(msg.Display, msg.Entry, msg.Pending)
		m.tape.SetLines(msg.Tape)
		m.status.SetMessage(msg.Status, msg.IsError)
		return m, nil

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		return m.tape.Update(msg)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
	default:
		return nil
	}

	// Keypad sits directly under the display in the left column.
	label, ok := m.keypad.HitTest(msg.X, msg.Y-m.display.Height())
	if !ok {
		return nil
	}
	m.keypad.SetActive(label)
	m.send(event.NewPress(label))
	return nil
}

func (m *Model) send(ev event.Event) {
	if m.events != nil {
		m.events <- ev
	}
}

// layout sizes widgets: display and keypad share the left column, the tape
// takes whatever is left on the right, the status line spans the bottom.
func (m *Model) layout() {
	m.keypad.SetSize(min(m.width, 40), 0)
	left := m.keypad.Width()
	m.display.SetSize(left, 0)

	tapeWidth := m.width - left - 1
	m.showTape = tapeWidth >= minTapeWidth
	bodyHeight := max(m.height-m.status.Height(), 0)
	if m.showTape {
		m.tape.SetSize(tapeWidth, bodyHeight)
	} else {
		m.tape.SetSize(0, 0)
	}
	m.status.SetSize(m.width, 0)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	left := lipgloss.JoinVertical(lipgloss.Left, m.display.View(), m.keypad.View())
	body := left
	if m.showTape {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, " ", m.tape.View())
	}

	bodyHeight := max(m.height-m.status.Height(), 0)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return body + "\n" + m.status.View()
}
