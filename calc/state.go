package calc

import (
	"errors"
	"strconv"
)

// ErrInvalidDigit is returned when a digit outside 0-9 is entered.
var ErrInvalidDigit = errors.New("digit out of range")

// State is the complete calculator state. It is a plain value: every action
// below takes a State and returns the next one.
type State struct {
	Entry   string   // digits typed since the last operator or "="
	Total   float32  // running total
	Pending Operator // last operator pressed
	Display string   // result line
}

// EnterDigit appends d to the entry buffer.
func EnterDigit(s State, d int) (State, error) {
	if d < 0 || d > 9 {
		return s, ErrInvalidDigit
	}
	s.Entry += strconv.Itoa(d)
	return s, nil
}

// EnterDecimal handles the "." key, which has no effect.
func EnterDecimal(s State) State {
	return s
}

// ApplyOperator folds the entry into the total using op and records op as
// pending. The first Subtract, Multiply or Divide against a zero total seeds
// the total so that the result equals the operand. An entry that does not
// parse leaves the state untouched.
func ApplyOperator(s State, op Operator) State {
	if !op.Binary() {
		return s
	}
	v, ok := parseEntry(s.Entry)
	if !ok {
		return s
	}

	switch op {
	case Add:
		s.Total += v
	case Subtract:
		if s.Total == 0 {
			s.Total = 2 * v
		}
		s.Total -= v
	case Multiply:
		if s.Total == 0 {
			s.Total = 1
		}
		s.Total *= v
	case Divide:
		if s.Total == 0 {
			s.Total = v * v
		}
		s.Total /= v
	}

	s.Pending = op
	s.Display = Format(s.Total) + " " + op.Symbol() + " "
	s.Entry = ""
	return s
}

// Evaluate re-applies the pending operator to the entry, treating an entry
// that does not parse as 0. Pending is kept, so pressing "=" again applies
// the same operator with a zero operand.
func Evaluate(s State) State {
	s.Total = reapply(s.Total, s.Pending, s.Entry)
	s.Display = Format(s.Total)
	s.Entry = ""
	return s
}

func reapply(total float32, op Operator, entry string) float32 {
	if !op.Binary() {
		return total
	}
	v, _ := parseEntry(entry)
	switch op {
	case Add:
		total += v
	case Subtract:
		total -= v
	case Multiply:
		total *= v
	case Divide:
		total /= v
	}
	return total
}

// parseEntry converts the buffer to a float32. Well-formed numbers too large
// for float32 come back as +/-Inf rather than failing.
func parseEntry(entry string) (float32, bool) {
	f, err := strconv.ParseFloat(entry, 32)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return float32(f), true
		}
		return 0, false
	}
	return float32(f), true
}
