// Package tape keeps a bounded, in-memory record of evaluated results.
// Nothing is written to disk; the tape lives as long as the session.
package tape

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is used when a non-positive size is requested.
const DefaultSize = 50

// Entry is one line on the tape.
type Entry struct {
	Seq     int    // 1-based, increases for the life of the tape
	Expr    string // result line as it was before "=", e.g. "5.0 + "
	Operand string // entry buffer consumed by "="
	Result  string // result line after "="
}

// Line renders the entry the way the tape pane shows it.
func (e Entry) Line() string {
	if e.Expr == "" && e.Operand == "" {
		return "= " + e.Result
	}
	return e.Expr + e.Operand + " = " + e.Result
}

// Tape is not safe for concurrent use; the session goroutine owns it.
type Tape struct {
	entries *lru.Cache[int, Entry]
	size    int
	nextSeq int
}

// New creates a tape holding at most size entries.
func New(size int) *Tape {
	if size <= 0 {
		size = DefaultSize
	}
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New[int, Entry](size)
	return &Tape{
		entries: cache,
		size:    size,
		nextSeq: 1,
	}
}

// Record appends a result, evicting the oldest entry when full.
func (t *Tape) Record(expr, operand, result string) Entry {
	e := Entry{Seq: t.nextSeq, Expr: expr, Operand: operand, Result: result}
	t.nextSeq++
	t.entries.Add(e.Seq, e)
	return e
}

// Entries returns the tape oldest first.
func (t *Tape) Entries() []Entry {
	return t.entries.Values()
}

// Lines returns the rendered tape oldest first.
func (t *Tape) Lines() []string {
	entries := t.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line()
	}
	return lines
}

// Last returns the most recent entry.
func (t *Tape) Last() (Entry, bool) {
	if t.nextSeq == 1 {
		return Entry{}, false
	}
	return t.entries.Peek(t.nextSeq - 1)
}

// Len returns the number of entries held.
func (t *Tape) Len() int {
	return t.entries.Len()
}

// Size returns the capacity.
func (t *Tape) Size() int {
	return t.size
}

// Clear drops all entries. Sequence numbers keep counting.
func (t *Tape) Clear() {
	t.entries.Purge()
}
