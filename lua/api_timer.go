package lua

import (
	"time"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tally/internal/logger"
)

// registerTimerFuncs registers the tally.timer submodule.
func (e *Engine) registerTimerFuncs() {
	timerTable := e.L.NewTable()
	e.L.SetField(e.tallyTable, "timer", timerTable)

	// tally.timer.after(seconds, fn): Run fn once, returns timer ID
	e.L.SetField(timerTable, "after", e.L.NewFunction(func(L *glua.LState) int {
		d := checkSeconds(L, 1)
		fn := L.CheckFunction(2)
		id := e.timers.After(d)
		e.timerFns[id] = fn
		L.Push(glua.LNumber(id))
		return 1
	}))

	// tally.timer.every(seconds, fn): Run fn repeatedly, returns timer ID
	e.L.SetField(timerTable, "every", e.L.NewFunction(func(L *glua.LState) int {
		d := checkSeconds(L, 1)
		fn := L.CheckFunction(2)
		id := e.timers.Every(d)
		e.timerFns[id] = fn
		L.Push(glua.LNumber(id))
		return 1
	}))

	// tally.timer.cancel(id)
	e.L.SetField(timerTable, "cancel", e.L.NewFunction(func(L *glua.LState) int {
		id := L.CheckInt(1)
		e.timers.Cancel(id)
		delete(e.timerFns, id)
		return 0
	}))

	// tally.timer.cancel_all()
	e.L.SetField(timerTable, "cancel_all", e.L.NewFunction(func(L *glua.LState) int {
		e.timers.CancelAll()
		clear(e.timerFns)
		return 0
	}))
}

func checkSeconds(L *glua.LState, n int) time.Duration {
	secs := float64(L.CheckNumber(n))
	if secs <= 0 {
		L.ArgError(n, "seconds must be positive")
	}
	return time.Duration(secs * float64(time.Second))
}

// FireTimer runs the callback for a fired timer. Timers cancelled or
// dropped by a reload are ignored.
func (e *Engine) FireTimer(id int, repeating bool) {
	if e.L == nil {
		return
	}
	fn, ok := e.timerFns[id]
	if !ok {
		return
	}
	if !repeating {
		delete(e.timerFns, id)
	}

	err := e.L.CallByParam(glua.P{Fn: fn, NRet: 0, Protect: true})
	if err != nil {
		logger.GetLogger().Warn().Err(err).Msg("Lua timer failed")
		e.ReportError("timer: " + err.Error())
	}
}

// ActiveTimers returns the number of timers with a live callback.
func (e *Engine) ActiveTimers() int {
	return len(e.timerFns)
}
