package widget

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/drake/tally/ui/style"
)

// KeypadRows is the button layout, top to bottom.
var KeypadRows = [][]string{
	{"7", "8", "9", "X"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"0", ".", "=", "/"},
}

const (
	minKeyWidth = 3
	keyHeight   = 3 // one text line plus top and bottom border
)

// Keypad renders the button grid and maps clicks back to key labels.
type Keypad struct {
	keyWidth int // inner width of one key
	active   string
	styles   style.Styles
}

// NewKeypad creates a keypad with 5-cell keys.
func NewKeypad(styles style.Styles) *Keypad {
	return &Keypad{keyWidth: 5, styles: styles}
}

// SetSize implements Widget: keys widen to fill width.
func (k *Keypad) SetSize(width, _ int) {
	w := width/len(KeypadRows[0]) - 2
	if w < minKeyWidth {
		w = minKeyWidth
	}
	k.keyWidth = w
}

// Width returns the rendered width of the grid.
func (k *Keypad) Width() int {
	return len(KeypadRows[0]) * (k.keyWidth + 2)
}

// Height implements Widget.
func (k *Keypad) Height() int {
	return len(KeypadRows) * keyHeight
}

// SetActive highlights label until the next call.
func (k *Keypad) SetActive(label string) {
	k.active = label
}

// Active returns the highlighted label.
func (k *Keypad) Active() string {
	return k.active
}

// HitTest returns the key label at cell (x, y) relative to the keypad's top
// left corner.
func (k *Keypad) HitTest(x, y int) (string, bool) {
	if x < 0 || y < 0 {
		return "", false
	}
	col := x / (k.keyWidth + 2)
	row := y / keyHeight
	if row >= len(KeypadRows) || col >= len(KeypadRows[row]) {
		return "", false
	}
	return KeypadRows[row][col], true
}

func (k *Keypad) keyStyle(label string) lipgloss.Style {
	switch {
	case label == k.active:
		return k.styles.Active
	case label == "=":
		return k.styles.Equals
	case strings.Contains("X-+/", label):
		return k.styles.Operator
	}
	return k.styles.Digit
}

// View implements Widget.
func (k *Keypad) View() string {
	rows := make([]string, len(KeypadRows))
	for i, labels := range KeypadRows {
		keys := make([]string, len(labels))
		for j, label := range labels {
			keys[j] = k.keyStyle(label).Width(k.keyWidth).Render(label)
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, keys...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
