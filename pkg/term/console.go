// Package term is the display half of the terminal adapter: cursor
// positioning, colors and screen control behind a small Screen
// interface. The game core never emits escape sequences itself.
package term

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Color identifies a display color. The palette mirrors the classic
// 16-color console set the game was designed around.
type Color int

const (
	White Color = iota
	BrightWhite
	Cyan
	LightCyan
	Green
	LightGreen
	Red
	LightRed
	Yellow
	LightYellow
	Magenta
	LightMagenta
)

// Screen is the drawing capability set consumed by the renderer.
// Implementations must treat every call as fire-and-forget; there is
// nothing to report back to the game loop.
type Screen interface {
	SetCursor(x, y int)
	SetColor(c Color)
	Print(s string)
	Clear()
	HideCursor()
	ShowCursor()
}

// ANSI renders to any writer using ANSI escape sequences. Colors go
// through fatih/color so NO_COLOR and dumb terminals degrade cleanly.
type ANSI struct {
	w       io.Writer
	palette map[Color]*color.Color
	current *color.Color
}

// NewANSI creates an ANSI screen writing to w (normally os.Stdout).
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{
		w: w,
		palette: map[Color]*color.Color{
			White:        color.New(color.FgWhite),
			BrightWhite:  color.New(color.FgHiWhite),
			Cyan:         color.New(color.FgCyan),
			LightCyan:    color.New(color.FgHiCyan),
			Green:        color.New(color.FgGreen),
			LightGreen:   color.New(color.FgHiGreen),
			Red:          color.New(color.FgRed),
			LightRed:     color.New(color.FgHiRed),
			Yellow:       color.New(color.FgYellow),
			LightYellow:  color.New(color.FgHiYellow),
			Magenta:      color.New(color.FgMagenta),
			LightMagenta: color.New(color.FgHiMagenta),
		},
	}
}

// SetCursor moves the cursor to column x, row y (0-based).
func (a *ANSI) SetCursor(x, y int) {
	fmt.Fprintf(a.w, "\x1b[%d;%dH", y+1, x+1)
}

// SetColor selects the color for subsequent Print calls.
func (a *ANSI) SetColor(c Color) {
	a.current = a.palette[c]
}

// Print writes s at the current cursor position in the current color.
func (a *ANSI) Print(s string) {
	if a.current != nil {
		a.current.Fprint(a.w, s)
		return
	}
	fmt.Fprint(a.w, s)
}

// Clear wipes the screen including the scrollback.
func (a *ANSI) Clear() {
	fmt.Fprint(a.w, "\x1b[H\x1b[2J\x1b[3J")
}

// HideCursor hides the cursor (call on start).
func (a *ANSI) HideCursor() {
	fmt.Fprint(a.w, "\x1b[?25l")
}

// ShowCursor shows the cursor (call on exit).
func (a *ANSI) ShowCursor() {
	fmt.Fprint(a.w, "\x1b[?25h")
}

// Reset restores a sane terminal: visible cursor, default color. Part
// of every shutdown path, including signal-driven ones.
func (a *ANSI) Reset() {
	a.current = nil
	color.Unset()
	a.ShowCursor()
	fmt.Fprint(a.w, "\x1b[0m")
}
