package lua

import glua "github.com/yuin/gopher-lua"

// registerBindFuncs registers the tally.bind API.
func (e *Engine) registerBindFuncs() {
	// tally.bind(key, callback) - Register a key binding
	// key is a string like "ctrl+r", "f1", "s"
	// callback receives no arguments
	e.L.SetField(e.tallyTable, "bind", e.L.NewFunction(func(L *glua.LState) int {
		key := L.CheckString(1)
		fn := L.CheckFunction(2)
		e.binds[key] = fn
		return 0
	}))

	// tally.unbind(key) - Remove a key binding
	e.L.SetField(e.tallyTable, "unbind", e.L.NewFunction(func(L *glua.LState) int {
		delete(e.binds, L.CheckString(1))
		return 0
	}))
}

// HandleKeyBind checks if a key has a Lua binding and executes it.
// Returns true if the key was handled by Lua.
func (e *Engine) HandleKeyBind(key string) bool {
	fn, ok := e.binds[key]
	if !ok {
		return false
	}

	e.L.Push(fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		e.ReportError("keybind " + key + ": " + err.Error())
	}
	return true
}

// BoundKeys returns all bound key names, sorted.
func (e *Engine) BoundKeys() []string {
	return sortedKeys(e.binds)
}
