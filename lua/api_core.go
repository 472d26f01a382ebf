package lua

import glua "github.com/yuin/gopher-lua"

// registerCoreFuncs registers the calculator and lifecycle functions.
func (e *Engine) registerCoreFuncs() {
	// tally.press(label): Send one key label to the calculator
	e.L.SetField(e.tallyTable, "press", e.L.NewFunction(func(L *glua.LState) int {
		label := L.CheckString(1)
		if err := e.calc.Press(label); err != nil {
			L.RaiseError("%s", err.Error())
		}
		return 0
	}))

	// tally.state(): {display, entry, total, pending}
	e.L.SetField(e.tallyTable, "state", e.L.NewFunction(func(L *glua.LState) int {
		st := e.calc.State()
		tbl := L.NewTable()
		L.SetField(tbl, "display", glua.LString(st.Display))
		L.SetField(tbl, "entry", glua.LString(st.Entry))
		L.SetField(tbl, "total", glua.LNumber(st.Total))
		L.SetField(tbl, "pending", glua.LString(st.Pending.Symbol()))
		L.Push(tbl)
		return 1
	}))

	// tally.tape(): array of {seq, expr, operand, result}, oldest first
	e.L.SetField(e.tallyTable, "tape", e.L.NewFunction(func(L *glua.LState) int {
		entries := e.calc.Tape()
		arr := L.CreateTable(len(entries), 0)
		for _, entry := range entries {
			row := L.NewTable()
			L.SetField(row, "seq", glua.LNumber(entry.Seq))
			L.SetField(row, "expr", glua.LString(entry.Expr))
			L.SetField(row, "operand", glua.LString(entry.Operand))
			L.SetField(row, "result", glua.LString(entry.Result))
			arr.Append(row)
		}
		L.Push(arr)
		return 1
	}))

	// tally.print(text): Show a message on the status line
	e.L.SetField(e.tallyTable, "print", e.L.NewFunction(func(L *glua.LState) int {
		e.ui.Print(L.CheckString(1))
		return 0
	}))

	// tally.quit(): Exit
	e.L.SetField(e.tallyTable, "quit", e.L.NewFunction(func(L *glua.LState) int {
		e.sys.Quit()
		return 0
	}))

	// tally.reload(): Re-run init.lua in a fresh VM
	e.L.SetField(e.tallyTable, "reload", e.L.NewFunction(func(L *glua.LState) int {
		e.sys.Reload()
		return 0
	}))

	// tally.load(path): Run another script once the current call returns
	e.L.SetField(e.tallyTable, "load", e.L.NewFunction(func(L *glua.LState) int {
		e.sys.Load(expandTilde(L.CheckString(1)))
		return 0
	}))
}
