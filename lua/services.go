package lua

import (
	"time"

	"github.com/drake/tally/calc"
	"github.com/drake/tally/tape"
)

// CalculatorService drives the calculator engine.
type CalculatorService interface {
	Press(label string) error
	State() calc.State
	Tape() []tape.Entry
}

// UIService handles visual elements.
type UIService interface {
	// Print shows a message on the status line.
	Print(text string)
	// ShowError shows an error on the status line.
	ShowError(text string)
}

// SystemService handles app lifecycle.
type SystemService interface {
	Quit()
	Reload()
	// Load runs the script at path after the current call returns.
	Load(path string)
}

// TimerService schedules timers. Fired timers must come back to the engine
// through FireTimer on the goroutine that owns the VM.
type TimerService interface {
	After(d time.Duration) int
	Every(d time.Duration) int
	Cancel(id int)
	CancelAll()
}
