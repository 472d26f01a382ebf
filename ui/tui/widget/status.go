package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/drake/tally/ui/style"
	"github.com/drake/tally/ui/tui/util"
)

// Status shows the latest script or error message on the left and key help
// on the right.
type Status struct {
	message  string
	isError  bool
	help     help.Model
	bindings []key.Binding
	width    int
	styles   style.Styles
}

// NewStatus creates a status line showing help for bindings.
func NewStatus(styles style.Styles, bindings []key.Binding) *Status {
	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted
	return &Status{
		help:     h,
		bindings: bindings,
		styles:   styles,
	}
}

// SetMessage sets the left-hand message.
func (s *Status) SetMessage(msg string, isError bool) {
	s.message = msg
	s.isError = isError
}

// Message returns the left-hand message.
func (s *Status) Message() string {
	return s.message
}

// SetSize implements Widget.
func (s *Status) SetSize(width, _ int) {
	s.width = width
	s.help.Width = width / 2
}

// Height implements Widget.
func (s *Status) Height() int {
	return 1
}

// View implements Widget.
func (s *Status) View() string {
	right := s.help.ShortHelpView(s.bindings)

	room := s.width - util.VisibleLen(right) - 1
	msg := util.Truncate(s.message, room)
	var left string
	if s.isError {
		left = s.styles.Error.Render(msg)
	} else {
		left = s.styles.StatusBar.Render(msg)
	}

	padding := s.width - util.VisibleLen(left) - util.VisibleLen(right)
	if padding < 1 {
		padding = 1
	}
	return left + strings.Repeat(" ", padding) + right
}
