package calc

import "strings"

// Operator identifies the last operator button pressed.
type Operator int

const (
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
	Equals // only recorded when the engine latches "="
)

// Symbol returns the glyph shown on the result line after an operator press.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "X"
	case Divide:
		return "/"
	case Equals:
		return "="
	}
	return ""
}

// String implements fmt.Stringer.
func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Equals:
		return "equals"
	}
	return "none"
}

// Binary reports whether o is one of the four arithmetic operators.
func (o Operator) Binary() bool {
	return o >= Add && o <= Divide
}

// ParseOperator maps a key symbol to an arithmetic operator.
// Multiply accepts "X", "x" and "*".
func ParseOperator(symbol string) (Operator, bool) {
	switch strings.TrimSpace(symbol) {
	case "+":
		return Add, true
	case "-":
		return Subtract, true
	case "X", "x", "*":
		return Multiply, true
	case "/":
		return Divide, true
	}
	return None, false
}
