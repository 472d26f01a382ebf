package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/drake/tally/calc"
	"github.com/drake/tally/config"
	"github.com/drake/tally/event"
	"github.com/drake/tally/internal/buffer"
	"github.com/drake/tally/internal/logger"
	"github.com/drake/tally/internal/watch"
	"github.com/drake/tally/lua"
	"github.com/drake/tally/tape"
	"github.com/drake/tally/timer"
	"github.com/drake/tally/ui"
)

// Config holds session configuration
type Config struct {
	KeyMap      map[string]string // key string -> key label or config.KeyAction*
	TapeSize    int
	LatchEquals bool

	InitFile    string   // loaded on boot and reload if it exists
	UserScripts []string // loaded after InitFile
	NoScripts   bool     // skip InitFile and UserScripts

	WatchDir string // reload when .lua files here change; "" disables
}

// Session orchestrates the calculator, scripts and UI.
// One goroutine (the event loop) owns the calculator, tape and Lua VM.
type Session struct {
	ui ui.UI

	calc   *calc.Engine
	tape   *tape.Tape
	engine *lua.Engine
	timers *timer.Service
	keys   map[string]string
	cfg    Config

	// Internal channels
	eventsIn  chan<- event.Event
	eventsOut <-chan event.Event

	status  string
	isError bool

	loopDone chan struct{}

	eventsProcessed atomic.Uint64
	tapeLen         atomic.Int64

	copy    func(string) error
	watcher *watch.Watcher
	log     arbor.ILogger
}

// New creates a new Session with the given UI.
func New(u ui.UI, cfg Config) *Session {
	eventsIn, eventsOut := buffer.Unbounded[event.Event](64, 10000, nil)

	var opts []calc.Option
	if cfg.LatchEquals {
		opts = append(opts, calc.WithEqualsLatch())
	}

	keys := cfg.KeyMap
	if keys == nil {
		keys = config.DefaultKeys()
	}

	s := &Session{
		ui:        u,
		calc:      calc.NewEngine(opts...),
		tape:      tape.New(cfg.TapeSize),
		keys:      keys,
		cfg:       cfg,
		eventsIn:  eventsIn,
		eventsOut: eventsOut,
		loopDone:  make(chan struct{}),
		copy:      ui.Copy,
		log:       logger.GetLogger(),
	}
	s.timers = timer.NewService(func(id int, repeating bool) {
		s.Post(event.Event{
			Type:     event.AsyncResult,
			Callback: func() { s.engine.FireTimer(id, repeating) },
		})
	})
	s.engine = lua.NewEngine(s, s, s, s)
	return s
}

// Run boots scripts, starts the event loop and blocks until the UI exits.
func (s *Session) Run() error {
	defer s.engine.Close()

	if err := s.boot(); err != nil {
		s.reportError(err.Error())
	}
	s.startWatcher()
	defer s.stopWatcher()

	s.render()

	go s.bridgeUIToEvents()
	go s.runEventLoop()

	err := s.ui.Run()
	<-s.loopDone
	return err
}

// Post queues an event for the session loop. Safe from any goroutine.
func (s *Session) Post(ev event.Event) {
	s.eventsIn <- ev
}

// --- Boot ---

// boot creates a fresh Lua VM and loads init.lua and user scripts.
func (s *Session) boot() error {
	if err := s.engine.Init(); err != nil {
		return fmt.Errorf("init lua: %w", err)
	}
	if s.cfg.NoScripts {
		return nil
	}

	var errs []error
	if s.cfg.InitFile != "" {
		if _, err := os.Stat(s.cfg.InitFile); err == nil {
			errs = append(errs, s.loadScript(s.cfg.InitFile))
		} else if !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	for _, path := range s.cfg.UserScripts {
		errs = append(errs, s.loadScript(path))
	}
	return errors.Join(errs...)
}

func (s *Session) loadScript(path string) error {
	if err := s.engine.DoFile(path); err != nil {
		return err
	}
	s.log.Info().Str("script", path).Msg("Loaded script")
	s.engine.CallHook(lua.HookLoaded, path)
	return nil
}

func (s *Session) startWatcher() {
	if s.cfg.WatchDir == "" {
		return
	}
	w, err := watch.New(s.cfg.WatchDir, []string{".lua"}, watch.DefaultDebounce, func(paths []string) {
		s.log.Debug().Strs("paths", paths).Msg("Scripts changed")
		s.Post(event.NewControl(event.ActionReload))
	})
	if err != nil {
		s.log.Warn().Err(err).Str("dir", s.cfg.WatchDir).Msg("Not watching scripts")
		return
	}
	if err := w.Start(); err != nil {
		w.Stop()
		s.log.Warn().Err(err).Str("dir", s.cfg.WatchDir).Msg("Not watching scripts")
		return
	}
	s.watcher = w
}

func (s *Session) stopWatcher() {
	if s.watcher != nil {
		s.watcher.Stop()
	}
}

// --- Bridge goroutines ---

// bridgeUIToEvents forwards UI events into the loop. When the UI runs out
// of input the session quits after everything already queued.
func (s *Session) bridgeUIToEvents() {
	for ev := range s.ui.Events() {
		s.eventsIn <- ev
	}
	s.eventsIn <- event.NewControl(event.ActionQuit)
}

// --- Event loop ---

func (s *Session) runEventLoop() {
	defer close(s.loopDone)
	for {
		select {
		case ev, ok := <-s.eventsOut:
			if !ok {
				return
			}
			// Drop anything queued behind a quit.
			select {
			case <-s.ui.Done():
				return
			default:
			}
			s.handle(ev)
		case <-s.ui.Done():
			return
		}
	}
}

func (s *Session) handle(ev event.Event) {
	s.eventsProcessed.Add(1)
	switch ev.Type {
	case event.Key:
		s.handleKey(ev.Payload)

	case event.Press:
		if err := s.Press(ev.Payload); err != nil {
			s.setStatus(err.Error(), true)
		}

	case event.AsyncResult:
		if ev.Callback != nil {
			ev.Callback()
		}

	case event.SystemControl:
		s.handleSystemControl(ev.Control)
	}
	s.render()
}

// handleKey resolves a raw key: Lua binds first, then the key map.
func (s *Session) handleKey(key string) {
	if s.engine.HandleKeyBind(key) {
		return
	}

	action, ok := s.keys[key]
	if !ok {
		s.log.Debug().Str("key", key).Msg("Unbound key")
		return
	}

	switch action {
	case config.KeyActionQuit:
		s.handleSystemControl(event.ControlOp{Action: event.ActionQuit})
	case config.KeyActionReload:
		s.handleSystemControl(event.ControlOp{Action: event.ActionReload})
	case config.KeyActionYank:
		s.handleSystemControl(event.ControlOp{Action: event.ActionYank})
	default:
		if err := s.Press(action); err != nil {
			s.setStatus(fmt.Sprintf("key %s: %v", key, err), true)
		}
	}
}

func (s *Session) handleSystemControl(ctrl event.ControlOp) {
	switch ctrl.Action {
	case event.ActionQuit:
		s.log.Info().Msg("Quit")
		s.ui.Quit()

	case event.ActionReload:
		start := time.Now()
		if err := s.boot(); err != nil {
			s.reportError(err.Error())
			return
		}
		s.log.Info().Str("took", time.Since(start).String()).Msg("Scripts reloaded")
		s.setStatus("scripts reloaded", false)
		s.engine.CallHook(lua.HookReloaded)

	case event.ActionLoadScript:
		if err := s.loadScript(ctrl.ScriptPath); err != nil {
			s.reportError(err.Error())
		}

	case event.ActionYank:
		text := s.calc.Display()
		if text == "" {
			return
		}
		if err := s.copy(text); err != nil {
			s.reportError("copy: " + err.Error())
			return
		}
		s.setStatus("copied "+text, false)
	}
}

// reportError routes an error to Lua error hooks, or the status line when
// no script is listening.
func (s *Session) reportError(msg string) {
	s.log.Warn().Str("error", msg).Msg("Session error")
	s.engine.ReportError(msg)
}

// Stats is a snapshot of session counters, safe to read from any goroutine.
type Stats struct {
	EventsProcessed uint64
	TapeEntries     int
	ActiveTimers    int
	Goroutines      int
}

// Stats returns current session counters.
func (s *Session) Stats() Stats {
	return Stats{
		EventsProcessed: s.eventsProcessed.Load(),
		TapeEntries:     int(s.tapeLen.Load()),
		ActiveTimers:    s.timers.Active(),
		Goroutines:      runtime.NumGoroutine(),
	}
}

func (s *Session) setStatus(msg string, isError bool) {
	s.status = msg
	s.isError = isError
}

func (s *Session) render() {
	st := s.calc.State()
	s.ui.Render(ui.Frame{
		Display: st.Display,
		Entry:   st.Entry,
		Pending: st.Pending.Symbol(),
		Tape:    s.tape.Lines(),
		Status:  s.status,
		IsError: s.isError,
	})
}
