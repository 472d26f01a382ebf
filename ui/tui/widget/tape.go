package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/tally/ui/style"
	"github.com/drake/tally/ui/tui/util"
)

// Tape is a scrollable list of past results, newest at the bottom.
type Tape struct {
	viewport viewport.Model
	lines    []string
	width    int
	height   int
	styles   style.Styles
}

// NewTape creates an empty tape pane.
func NewTape(styles style.Styles) *Tape {
	return &Tape{
		viewport: viewport.New(0, 0),
		styles:   styles,
	}
}

// SetLines replaces the content and follows the newest entry.
func (t *Tape) SetLines(lines []string) {
	t.lines = lines
	t.refresh()
	t.viewport.GotoBottom()
}

// Lines returns the current content.
func (t *Tape) Lines() []string {
	return t.lines
}

// SetSize implements Widget.
func (t *Tape) SetSize(width, height int) {
	t.width = width
	t.height = height
	// header line and left border
	t.viewport.Width = max(width-t.styles.TapeBorder.GetHorizontalFrameSize(), 0)
	t.viewport.Height = max(height-1, 0)
	t.refresh()
}

// Height implements Widget.
func (t *Tape) Height() int {
	return t.height
}

// Update forwards scroll keys and wheel events to the viewport.
func (t *Tape) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return cmd
}

// ScrollUp scrolls towards older entries.
func (t *Tape) ScrollUp(n int) {
	t.viewport.LineUp(n)
}

// ScrollDown scrolls towards newer entries.
func (t *Tape) ScrollDown(n int) {
	t.viewport.LineDown(n)
}

// AtBottom reports whether the newest entry is visible.
func (t *Tape) AtBottom() bool {
	return t.viewport.AtBottom()
}

func (t *Tape) refresh() {
	w := t.viewport.Width
	rendered := make([]string, len(t.lines))
	for i, line := range t.lines {
		rendered[i] = t.styles.TapeLine.Render(util.Truncate(line, w))
	}
	t.viewport.SetContent(strings.Join(rendered, "\n"))
}

// View implements Widget.
func (t *Tape) View() string {
	if t.width <= 0 || t.height <= 0 {
		return ""
	}
	header := t.styles.TapeHeader.Render("Tape")
	if n := len(t.lines); n > 0 && !t.viewport.AtBottom() {
		header += t.styles.Muted.Render(" (scrolled)")
	}
	body := header + "\n" + t.viewport.View()
	return t.styles.TapeBorder.Height(t.height).Render(body)
}
