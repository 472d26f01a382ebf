package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/drake/tally/event"
	"github.com/drake/tally/internal/buffer"
	"github.com/drake/tally/internal/logger"
	"github.com/drake/tally/ui"
	"github.com/drake/tally/ui/style"
)

// Options configure the Bubble Tea front end.
type Options struct {
	AltScreen bool
	Mouse     bool
	Theme     string
	KeyMap    map[string]string // key string -> label, for keypad highlights
}

// BubbleTeaUI implements ui.UI using Bubble Tea.
// It bridges the channel-based session with Bubble Tea's
// model/update/view event loop.
type BubbleTeaUI struct {
	program *tea.Program
	opts    Options

	// Model -> session. Unbounded so Update never waits on the session.
	eventsIn  chan<- event.Event
	eventsOut <-chan event.Event

	// Message queue - buffered channel drained by a single goroutine.
	// This decouples callers from tea.Program.Send() which can block.
	msgQueue chan tea.Msg

	// Shutdown coordination
	done     chan struct{}
	doneOnce sync.Once
}

// NewBubbleTeaUI creates a new Bubble Tea-based UI.
func NewBubbleTeaUI(opts Options) *BubbleTeaUI {
	eventsIn, eventsOut := buffer.Unbounded[event.Event](64, 10000, func(ev event.Event) {
		logger.GetLogger().Warn().Str("payload", ev.Payload).Msg("Dropping UI event, session is not keeping up")
	})
	return &BubbleTeaUI{
		opts:      opts,
		eventsIn:  eventsIn,
		eventsOut: eventsOut,
		msgQueue:  make(chan tea.Msg, 1024),
		done:      make(chan struct{}),
	}
}

// send queues a message for delivery to the Bubble Tea program.
// Blocks until message is queued or the UI has exited.
func (b *BubbleTeaUI) send(msg tea.Msg) {
	select {
	case <-b.done:
		return
	case b.msgQueue <- msg:
	}
}

// Render pushes a frame to the screen.
func (b *BubbleTeaUI) Render(f ui.Frame) {
	b.send(frameMsg(f))
}

// Events returns channel of user actions.
func (b *BubbleTeaUI) Events() <-chan event.Event {
	return b.eventsOut
}

// Run starts the TUI and blocks until exit. It returns at once if Quit was
// called before the program started.
func (b *BubbleTeaUI) Run() error {
	select {
	case <-b.done:
		return nil
	default:
	}

	model := NewModel(b.eventsIn, style.ThemeStyles(b.opts.Theme), b.opts.KeyMap)

	var progOpts []tea.ProgramOption
	if b.opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if b.opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	b.program = tea.NewProgram(model, progOpts...)

	// Single goroutine drains message queue to Bubble Tea.
	go func() {
		for {
			select {
			case <-b.done:
				return
			case msg := <-b.msgQueue:
				b.program.Send(msg)
			}
		}
	}()

	_, err := b.program.Run()

	b.doneOnce.Do(func() {
		close(b.done)
	})

	return err
}

// Done returns a channel that closes when the UI exits.
func (b *BubbleTeaUI) Done() <-chan struct{} {
	return b.done
}

// Quit signals the TUI to exit.
func (b *BubbleTeaUI) Quit() {
	if b.program != nil {
		b.send(quitMsg{})
		return
	}
	b.doneOnce.Do(func() {
		close(b.done)
	})
}
