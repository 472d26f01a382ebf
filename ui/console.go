package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/drake/tally/event"
)

// ConsoleUI implements a line-oriented stdin/stdout UI.
// Each input line is split into fields; "quit", "q", "reload" and "yank"
// are commands, "load <path>" runs a script, anything else is fed to the calculator one character at a
// time, so "5+3=" and "5 + 3 =" are equivalent.
type ConsoleUI struct {
	in  io.Reader
	out io.Writer

	events   chan event.Event
	done     chan struct{}
	doneOnce sync.Once

	mu          sync.Mutex
	lastDisplay string
	lastStatus  string
}

// NewConsoleUI initializes a stdin/stdout based interface.
func NewConsoleUI() *ConsoleUI {
	return NewConsoleUIWith(os.Stdin, os.Stdout)
}

// NewConsoleUIWith reads from in and writes to out.
func NewConsoleUIWith(in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{
		in:     in,
		out:    out,
		events: make(chan event.Event, 256),
		done:   make(chan struct{}),
	}
}

// Render prints the result line when it changes, and any new status message.
func (c *ConsoleUI) Render(f Frame) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f.Status != "" && f.Status != c.lastStatus {
		prefix := "# "
		if f.IsError {
			prefix = "! "
		}
		fmt.Fprintln(c.out, prefix+f.Status)
	}
	c.lastStatus = f.Status

	if f.Display != "" && f.Display != c.lastDisplay {
		fmt.Fprintln(c.out, strings.TrimRight(f.Display, " "))
	}
	c.lastDisplay = f.Display
}

// Events returns the channel of parsed input. It closes at end of input.
func (c *ConsoleUI) Events() <-chan event.Event {
	return c.events
}

// Run reads input until it ends or Quit is called, then waits for Quit.
func (c *ConsoleUI) Run() error {
	scanErr := make(chan error, 1)

	go func() {
		defer close(c.events)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			for _, ev := range ParseLine(scanner.Text()) {
				select {
				case <-c.done:
					scanErr <- nil
					return
				case c.events <- ev:
				}
			}
		}
		scanErr <- scanner.Err()
	}()

	<-c.done
	select {
	case err := <-scanErr:
		return err
	default:
		return nil
	}
}

// Done returns a channel that closes when the UI is done
func (c *ConsoleUI) Done() <-chan struct{} {
	return c.done
}

// Quit requests the console UI to exit.
func (c *ConsoleUI) Quit() {
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

// ParseLine turns one line of console input into events. A line starting
// with "load" runs the script named by the rest of the line.
func ParseLine(line string) []event.Event {
	if cmd, path, ok := strings.Cut(strings.TrimSpace(line), " "); ok && strings.EqualFold(cmd, "load") {
		if path = strings.TrimSpace(path); path != "" {
			return []event.Event{event.NewLoadScript(path)}
		}
	}

	var events []event.Event
	for _, field := range strings.Fields(line) {
		switch strings.ToLower(field) {
		case "q", "quit", "exit":
			events = append(events, event.NewControl(event.ActionQuit))
			continue
		case "reload":
			events = append(events, event.NewControl(event.ActionReload))
			continue
		case "yank":
			events = append(events, event.NewControl(event.ActionYank))
			continue
		case "load":
			// missing path
			continue
		}
		for _, r := range field {
			events = append(events, event.NewPress(string(r)))
		}
	}
	return events
}
