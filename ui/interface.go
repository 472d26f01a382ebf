package ui

import "github.com/drake/tally/event"

// UI defines the contract for the display layer.
type UI interface {
	Run() error
	Quit()
	Done() <-chan struct{}

	// Events delivers user actions to the session. A front end whose input
	// runs dry closes it.
	Events() <-chan event.Event

	// Render replaces what is on screen with f.
	Render(f Frame)
}

// Frame is everything a front end needs to draw one screen.
type Frame struct {
	Display string   // result line
	Entry   string   // entry line
	Pending string   // symbol of the pending operator, "" if none
	Tape    []string // rendered tape, oldest first
	Status  string   // message from scripts or errors
	IsError bool     // Status is an error
}
