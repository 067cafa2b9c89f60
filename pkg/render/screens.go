package render

import (
	"fmt"

	"github.com/trytobebee/snakecycle/pkg/term"
)

// ShowWelcome paints the start screen. The caller blocks for a key
// press afterwards.
func ShowWelcome(s term.Screen) {
	s.Clear()
	s.HideCursor()

	lines := []string{
		"+================================================+",
		"|               WELCOME TO SNAKE                 |",
		"+================================================+",
		"|  * Use WASD or Arrow Keys to control the snake |",
		"|  * Eat food (*) to grow and gain points        |",
		"|  * Special food ($) gives bonus points         |",
		"|  * Avoid hitting walls or yourself             |",
		"|  * Press P to pause, Q to quit                 |",
		"|  * Game speed increases with your score!       |",
		"+================================================+",
		"|        Press any key to start playing!         |",
		"+================================================+",
	}

	for i, line := range lines {
		switch i {
		case 0, 2, 9, 11:
			s.SetColor(term.LightCyan)
		case 10:
			s.SetColor(term.LightYellow)
		default:
			s.SetColor(term.White)
		}
		s.SetCursor(15, 5+i)
		s.Print(line)
	}
}

// ShowGoodbye paints the exit screen and hands the terminal back.
func ShowGoodbye(s term.Screen, score, highScore int) {
	s.Clear()
	s.SetColor(term.LightCyan)
	s.SetCursor(25, 10)
	s.Print("Thanks for playing Snake Game!")
	s.SetCursor(25, 11)
	s.Print(fmt.Sprintf("Final Score: %d", score))
	s.SetCursor(25, 12)
	s.Print(fmt.Sprintf("High Score: %d", highScore))
	s.SetCursor(0, 15)
	s.ShowCursor()
	s.SetColor(term.White)
}
