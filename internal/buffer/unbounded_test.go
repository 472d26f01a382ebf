package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnboundedPreservesOrder(t *testing.T) {
	in, out := Unbounded[int](4, 0, nil)

	for i := 0; i < 100; i++ {
		in <- i
	}
	close(in)

	var got []int
	for v := range out {
		got = append(got, v)
	}

	assert.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestUnboundedDropsOldestAtLimit(t *testing.T) {
	var dropped []string
	in, out := Unbounded[string](2, 2, func(s string) {
		dropped = append(dropped, s)
	})

	// Nothing reads out until in is closed, but out itself buffers a few
	// items, so push well past the limit.
	for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m"} {
		in <- s
	}
	close(in)

	var got []string
	for v := range out {
		got = append(got, v)
	}

	assert.NotEmpty(t, dropped)
	assert.Equal(t, 13, len(got)+len(dropped))
	assert.Equal(t, "m", got[len(got)-1])
}
