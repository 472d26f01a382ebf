package lua

import glua "github.com/yuin/gopher-lua"

// registerHookFuncs registers tally.on.
func (e *Engine) registerHookFuncs() {
	// tally.on(event, fn): fn runs each time the session fires event
	e.L.SetField(e.tallyTable, "on", e.L.NewFunction(func(L *glua.LState) int {
		event := L.CheckString(1)
		fn := L.CheckFunction(2)
		e.hooks[event] = append(e.hooks[event], fn)
		return 0
	}))
}

// HookedEvents returns the events with at least one hook, sorted.
func (e *Engine) HookedEvents() []string {
	return sortedKeys(e.hooks)
}
