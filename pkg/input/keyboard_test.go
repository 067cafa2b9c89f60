package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"github.com/trytobebee/snakecycle/pkg/game"
)

func TestMapDirections(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want game.Input
	}{
		{"arrow up", Event{Key: keyboard.KeyArrowUp}, game.InputUp},
		{"arrow down", Event{Key: keyboard.KeyArrowDown}, game.InputDown},
		{"arrow left", Event{Key: keyboard.KeyArrowLeft}, game.InputLeft},
		{"arrow right", Event{Key: keyboard.KeyArrowRight}, game.InputRight},
		{"w", Event{Char: 'w'}, game.InputUp},
		{"W", Event{Char: 'W'}, game.InputUp},
		{"s", Event{Char: 's'}, game.InputDown},
		{"a", Event{Char: 'a'}, game.InputLeft},
		{"d", Event{Char: 'd'}, game.InputRight},
		{"pause p", Event{Char: 'p'}, game.InputPause},
		{"pause space", Event{Key: keyboard.KeySpace}, game.InputPause},
		{"quit", Event{Char: 'q'}, game.InputQuit},
		{"restart", Event{Char: 'R'}, game.InputRestart},
		{"autopilot", Event{Char: 'o'}, game.InputAutopilot},
		{"unmapped", Event{Char: 'x'}, game.InputOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Map(tc.ev); got != tc.want {
				t.Errorf("Map(%+v) = %v, want %v", tc.ev, got, tc.want)
			}
		})
	}
}

func TestPollEmptyDoesNotBlock(t *testing.T) {
	h := NewHandler()
	if _, ok := h.Poll(); ok {
		t.Error("Poll returned an event from an empty handler")
	}
}
