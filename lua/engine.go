package lua

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	glua "github.com/yuin/gopher-lua"

	"github.com/drake/tally/internal/logger"
)

// Hook names fired by the session.
const (
	HookUpdate   = "update"   // (display, entry) after every key
	HookResult   = "result"   // (display) after "="
	HookError    = "error"    // (message)
	HookReloaded = "reloaded" // ()
	HookLoaded   = "loaded"   // (path)
)

var errNotInitialized = errors.New("lua: engine not initialized")

// Engine wraps gopher-lua and manages the VM lifecycle.
// It is a pure mechanism: it knows how to run Lua code and expose APIs.
// It does NOT know about config dirs or boot order.
type Engine struct {
	L *glua.LState

	// Cached table reference
	tallyTable *glua.LTable

	calc   CalculatorService
	ui     UIService
	sys    SystemService
	timers TimerService

	binds    map[string]*glua.LFunction
	hooks    map[string][]*glua.LFunction
	timerFns map[int]*glua.LFunction
}

// NewEngine creates an Engine backed by the given services.
func NewEngine(calc CalculatorService, ui UIService, sys SystemService, timers TimerService) *Engine {
	return &Engine{
		calc:     calc,
		ui:       ui,
		sys:      sys,
		timers:   timers,
		binds:    make(map[string]*glua.LFunction),
		hooks:    make(map[string][]*glua.LFunction),
		timerFns: make(map[int]*glua.LFunction),
	}
}

// --- Lifecycle ---

// Init initializes (or re-initializes) the Lua VM with fresh state.
// Bindings, hooks and timers from the previous VM are dropped.
func (e *Engine) Init() error {
	if e.L != nil {
		e.L.Close()
	}
	e.timers.CancelAll()

	e.L = glua.NewState()
	e.binds = make(map[string]*glua.LFunction)
	e.hooks = make(map[string][]*glua.LFunction)
	e.timerFns = make(map[int]*glua.LFunction)

	e.tallyTable = e.L.NewTable()
	e.L.SetGlobal("tally", e.tallyTable)

	e.registerCoreFuncs()
	e.registerBindFuncs()
	e.registerHookFuncs()
	e.registerTimerFuncs()

	return nil
}

// Close cleans up the Lua state.
func (e *Engine) Close() {
	e.timers.CancelAll()
	e.binds = nil
	e.hooks = nil
	e.timerFns = nil
	if e.L != nil {
		e.L.Close()
		e.L = nil
	}
}

// --- Execution Primitives ---

// DoString executes a raw string of Lua code.
// The name parameter is used for stack traces.
func (e *Engine) DoString(name, code string) error {
	if e.L == nil {
		return errNotInitialized
	}
	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return err
	}
	e.L.Push(fn)
	return e.L.PCall(0, 0, nil)
}

// DoFile executes a Lua file from the filesystem.
// The script's directory is prepended to package.path while it runs so it
// can require its neighbours.
func (e *Engine) DoFile(path string) error {
	if e.L == nil {
		return errNotInitialized
	}
	path = expandTilde(path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(absPath)

	pkg := e.L.GetGlobal("package").(*glua.LTable)
	oldPath := e.L.GetField(pkg, "path").String()
	e.L.SetField(pkg, "path", glua.LString(filepath.Join(dir, "?.lua")+";"+oldPath))

	err = e.L.DoFile(absPath)

	e.L.SetField(pkg, "path", glua.LString(oldPath))

	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// --- Hooks ---

// CallHook runs every function registered for event, in registration order.
// A failing hook is passed to ReportError; failures inside error hooks go
// straight to the UI.
func (e *Engine) CallHook(event string, args ...string) {
	if e.L == nil {
		return
	}
	fns := e.hooks[event]
	if len(fns) == 0 {
		return
	}

	luaArgs := make([]glua.LValue, len(args))
	for i, arg := range args {
		luaArgs[i] = glua.LString(arg)
	}

	for _, fn := range fns {
		err := e.L.CallByParam(glua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, luaArgs...)
		if err == nil {
			continue
		}
		logger.GetLogger().Warn().Err(err).Str("hook", event).Msg("Lua hook failed")
		if event == HookError {
			e.ui.ShowError(event + ": " + err.Error())
			continue
		}
		e.ReportError(event + ": " + err.Error())
	}
}

// ReportError hands msg to the error hooks, or to the UI when no script
// handles errors.
func (e *Engine) ReportError(msg string) {
	if e.L != nil && e.HasHook(HookError) {
		e.CallHook(HookError, msg)
		return
	}
	e.ui.ShowError(msg)
}

// HasHook reports whether any function is registered for event.
func (e *Engine) HasHook(event string) bool {
	return len(e.hooks[event]) > 0
}

// --- Private Helpers ---

// sortedKeys returns map keys in a stable order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// expandTilde expands ~ to home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
