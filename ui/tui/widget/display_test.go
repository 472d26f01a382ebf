package widget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drake/tally/ui/style"
	"github.com/drake/tally/ui/tui/util"
)

func displayLines(t *testing.T, d *Display) []string {
	t.Helper()
	lines := strings.Split(util.StripANSI(d.View()), "\n")
	require.Len(t, lines, d.Height())
	return lines
}

func TestDisplayShowsPendingOperator(t *testing.T) {
	d := NewDisplay(style.DefaultStyles())
	d.SetSize(30, 0)

	d.Set("5.0 + ", "3", "+")
	lines := displayLines(t, d)
	assert.Contains(t, lines[1], "5.0 +")
	entry := strings.Trim(lines[2], "│ ")
	assert.True(t, strings.HasPrefix(entry, "+"), "entry line %q", lines[2])
	assert.True(t, strings.HasSuffix(entry, "3"), "entry line %q", lines[2])
	assert.Equal(t, util.VisibleLen(lines[1]), util.VisibleLen(lines[2]))
}

func TestDisplayWithoutPending(t *testing.T) {
	d := NewDisplay(style.DefaultStyles())
	d.SetSize(30, 0)

	d.Set("", "", "")
	entry := strings.Trim(displayLines(t, d)[2], "│ ")
	assert.Equal(t, "0", entry)
}
