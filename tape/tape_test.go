package tape

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndEntries(t *testing.T) {
	tp := New(10)
	tp.Record("5.0 + ", "3", "8.0")
	tp.Record("8.0 - ", "", "8.0")

	entries := tp.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Seq)
	assert.Equal(t, 2, entries[1].Seq)
	assert.Equal(t, []string{"5.0 + 3 = 8.0", "8.0 -  = 8.0"}, tp.Lines())
}

func TestEvictsOldest(t *testing.T) {
	tp := New(3)
	for i := 1; i <= 5; i++ {
		tp.Record("", fmt.Sprint(i), fmt.Sprintf("%d.0", i))
	}
	assert.Equal(t, 3, tp.Len())

	entries := tp.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, 3, entries[0].Seq)
	assert.Equal(t, 5, entries[2].Seq)
}

func TestLast(t *testing.T) {
	tp := New(2)
	_, ok := tp.Last()
	assert.False(t, ok)

	tp.Record("", "", "0.0")
	tp.Record("2.0 X ", "4", "8.0")
	last, ok := tp.Last()
	require.True(t, ok)
	assert.Equal(t, "8.0", last.Result)

	tp.Clear()
	_, ok = tp.Last()
	assert.False(t, ok)
	assert.Equal(t, 0, tp.Len())

	e := tp.Record("", "", "1.0")
	assert.Equal(t, 3, e.Seq, "sequence survives Clear")
}

func TestDefaultSize(t *testing.T) {
	tp := New(0)
	assert.Equal(t, DefaultSize, tp.Size())
}

func TestLineWithoutOperator(t *testing.T) {
	assert.Equal(t, "= 0.0", Entry{Result: "0.0"}.Line())
}
