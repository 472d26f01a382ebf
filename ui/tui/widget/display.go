package widget

import (
	"github.com/drake/tally/ui/style"
	"github.com/drake/tally/ui/tui/util"
)

// Display shows the result line above the entry line, both right aligned,
// with the pending operator at the left of the entry line.
type Display struct {
	result  string
	entry   string
	pending string
	width   int
	styles  style.Styles
}

// NewDisplay creates an empty display.
func NewDisplay(styles style.Styles) *Display {
	return &Display{styles: styles, width: 30}
}

// Set updates the lines shown.
func (d *Display) Set(result, entry, pending string) {
	d.result = result
	d.entry = entry
	d.pending = pending
}

// SetSize implements Widget. Height is fixed.
func (d *Display) SetSize(width, _ int) {
	d.width = width
}

// Height implements Widget: two lines plus the border.
func (d *Display) Height() int {
	return 4
}

// innerWidth is the text width inside border and padding.
func (d *Display) innerWidth() int {
	w := d.width - d.styles.Panel.GetHorizontalFrameSize()
	if w < 1 {
		w = 1
	}
	return w
}

// View implements Widget.
func (d *Display) View() string {
	inner := d.innerWidth()

	result := d.styles.Result.Width(inner).Render(util.TruncateLeft(d.result, inner))

	entry := d.entry
	if entry == "" {
		entry = "0"
	}
	entryLine := d.styles.Entry.Width(inner).Render(util.TruncateLeft(entry, inner))
	if d.pending != "" {
		// Pending operator sits at the left edge of the entry line.
		marker := d.styles.Pending.Render(d.pending)
		room := max(inner-util.VisibleLen(marker)-1, 1)
		entryLine = marker + " " + d.styles.Entry.Width(room).Render(util.TruncateLeft(entry, room))
	}

	return d.styles.Panel.Width(inner + d.styles.Panel.GetHorizontalPadding()).Render(result + "\n" + entryLine)
}
