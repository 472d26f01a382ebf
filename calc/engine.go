package calc

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned by Press for labels that are not calculator keys.
var ErrUnknownKey = errors.New("unknown key")

// Option configures an Engine.
type Option func(*Engine)

// WithEqualsLatch makes "=" record Equals as the pending operator, so a
// second "=" leaves the total alone.
func WithEqualsLatch() Option {
	return func(e *Engine) {
		e.latchEquals = true
	}
}

// Engine is a stateful wrapper around the pure update functions.
// It is not safe for concurrent use; one goroutine owns it.
type Engine struct {
	state       State
	latchEquals bool
}

// NewEngine returns an engine with an empty entry and a zero total.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EnterDigit appends d (0-9) to the entry buffer.
func (e *Engine) EnterDigit(d int) error {
	next, err := EnterDigit(e.state, d)
	if err != nil {
		return fmt.Errorf("enter %d: %w", d, err)
	}
	e.state = next
	return nil
}

// EnterDecimal handles the "." key.
func (e *Engine) EnterDecimal() {
	e.state = EnterDecimal(e.state)
}

// ApplyOperator folds the entry into the total.
func (e *Engine) ApplyOperator(op Operator) {
	e.state = ApplyOperator(e.state, op)
}

// Evaluate handles the "=" key.
func (e *Engine) Evaluate() {
	e.state = Evaluate(e.state)
	if e.latchEquals {
		e.state.Pending = Equals
	}
}

// Press dispatches a single key label: "0"-"9", ".", "+", "-", "X", "/" or "=".
func (e *Engine) Press(label string) error {
	if len(label) == 1 && label[0] >= '0' && label[0] <= '9' {
		return e.EnterDigit(int(label[0] - '0'))
	}
	switch label {
	case ".":
		e.EnterDecimal()
		return nil
	case "=":
		e.Evaluate()
		return nil
	}
	if op, ok := ParseOperator(label); ok {
		e.ApplyOperator(op)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKey, label)
}

// State returns a copy of the current state.
func (e *Engine) State() State {
	return e.state
}

// Display returns the result line.
func (e *Engine) Display() string {
	return e.state.Display
}

// Entry returns the entry line.
func (e *Engine) Entry() string {
	return e.state.Entry
}
