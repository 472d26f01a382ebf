package session

import (
	"time"

	"github.com/drake/tally/calc"
	"github.com/drake/tally/event"
	"github.com/drake/tally/lua"
	"github.com/drake/tally/tape"
)

// Session implements the lua engine services. All of these run on the
// event loop goroutine, either directly or from inside a Lua call.

// Press sends one key label to the calculator, records "=" results on the
// tape and fires the update and result hooks.
func (s *Session) Press(label string) error {
	before := s.calc.State()
	if err := s.calc.Press(label); err != nil {
		return err
	}
	after := s.calc.State()

	s.log.Debug().
		Str("key", label).
		Str("display", after.Display).
		Str("entry", after.Entry).
		Msg("Key")

	s.engine.CallHook(lua.HookUpdate, after.Display, after.Entry)
	if label == "=" {
		s.tape.Record(before.Display, before.Entry, after.Display)
		s.tapeLen.Store(int64(s.tape.Len()))
		s.engine.CallHook(lua.HookResult, after.Display)
	}
	return nil
}

// State returns the calculator state.
func (s *Session) State() calc.State {
	return s.calc.State()
}

// Tape returns the tape, oldest first.
func (s *Session) Tape() []tape.Entry {
	return s.tape.Entries()
}

// Print sets the status line message.
func (s *Session) Print(text string) {
	s.setStatus(text, false)
}

// ShowError puts an error on the status line.
func (s *Session) ShowError(text string) {
	s.setStatus(text, true)
}

// Quit asks the UI to exit.
func (s *Session) Quit() {
	s.ui.Quit()
}

// Load is deferred to the loop like Reload.
func (s *Session) Load(path string) {
	s.Post(event.NewLoadScript(path))
}

// Reload is deferred to the loop: the VM cannot be replaced while Lua is
// running the call that asked for it.
func (s *Session) Reload() {
	s.Post(event.NewControl(event.ActionReload))
}

// After schedules a one-shot timer whose callback runs on the event loop.
func (s *Session) After(d time.Duration) int {
	return s.timers.After(d)
}

// Every schedules a repeating timer.
func (s *Session) Every(d time.Duration) int {
	return s.timers.Every(d)
}

// Cancel stops a timer.
func (s *Session) Cancel(id int) {
	s.timers.Cancel(id)
}

// CancelAll stops every timer.
func (s *Session) CancelAll() {
	s.timers.CancelAll()
}
