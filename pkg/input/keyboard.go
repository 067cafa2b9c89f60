// Package input is the keyboard half of the terminal adapter. It wraps
// eiannone/keyboard, which owns raw mode and assembles multi-byte arrow
// escape sequences into single logical keys.
package input

import (
	"github.com/eiannone/keyboard"

	"github.com/trytobebee/snakecycle/pkg/game"
)

// Event is one raw keyboard event.
type Event struct {
	Char rune
	Key  keyboard.Key
}

// Handler reads keys on a background goroutine and exposes them through
// a channel, so Poll can be non-blocking during play while Wait blocks
// on the welcome and game-over screens.
type Handler struct {
	events chan Event
}

// NewHandler creates a keyboard handler.
func NewHandler() *Handler {
	return &Handler{
		events: make(chan Event, 8),
	}
}

// Start acquires the keyboard and begins listening. Failure here is
// fatal for the caller; the game cannot run without key input.
func (h *Handler) Start() error {
	if err := keyboard.Open(); err != nil {
		return err
	}

	go func() {
		for {
			char, key, err := keyboard.GetKey()
			if err != nil {
				return
			}
			h.events <- Event{Char: char, Key: key}
		}
	}()

	return nil
}

// Stop releases the keyboard and restores the terminal mode.
func (h *Handler) Stop() {
	keyboard.Close()
}

// Poll returns the next pending event without blocking.
func (h *Handler) Poll() (Event, bool) {
	select {
	case ev := <-h.events:
		return ev, true
	default:
		return Event{}, false
	}
}

// Wait blocks until one event arrives.
func (h *Handler) Wait() Event {
	return <-h.events
}

// Map translates a raw event into a logical game input. Both WASD and
// the arrow keys steer; P or space pauses, Q quits, R restarts after a
// game over, O toggles the autopilot demo.
func Map(ev Event) game.Input {
	switch ev.Key {
	case keyboard.KeyArrowUp:
		return game.InputUp
	case keyboard.KeyArrowDown:
		return game.InputDown
	case keyboard.KeyArrowLeft:
		return game.InputLeft
	case keyboard.KeyArrowRight:
		return game.InputRight
	case keyboard.KeySpace:
		return game.InputPause
	}

	switch ev.Char {
	case 'w', 'W':
		return game.InputUp
	case 's', 'S':
		return game.InputDown
	case 'a', 'A':
		return game.InputLeft
	case 'd', 'D':
		return game.InputRight
	case 'p', 'P':
		return game.InputPause
	case 'q', 'Q':
		return game.InputQuit
	case 'r', 'R':
		return game.InputRestart
	case 'o', 'O':
		return game.InputAutopilot
	}

	return game.InputOther
}
