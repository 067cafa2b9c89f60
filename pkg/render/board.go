// Package render translates game state into the minimal set of screen
// operations. Only cells whose visual state changed since the previous
// frame are touched, so the board never flickers at high tick rates.
package render

import (
	"fmt"
	"strings"

	"github.com/trytobebee/snakecycle/pkg/game"
	"github.com/trytobebee/snakecycle/pkg/term"
)

// Screen layout: three title rows, the border on row 3, the playfield
// starting at row 4 column 1, and the stats panel to the right of the
// border.
const (
	boardLeft   = 1
	boardTop    = 4
	statsIndent = 5
)

// Board owns the playfield bounds and the diff caches: which static
// chrome has been drawn, and the last rendered value of every stat.
// The caches are explicit instance fields so a restart can reset them.
type Board struct {
	Width  int
	Height int

	screen term.Screen

	headerDrawn   bool
	borderDrawn   bool
	lastScore     int
	lastHighScore int
	lastLength    int
	lastLevel     string
	lastPaused    bool
}

// NewBoard creates a renderer for a width x height playfield.
func NewBoard(screen term.Screen, width, height int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		screen: screen,
	}
	b.ResetDiffState()
	return b
}

// ResetDiffState forgets everything previously drawn, forcing the next
// frame to repaint the border, header and all stats. Called on restart
// after the screen is cleared.
func (b *Board) ResetDiffState() {
	b.headerDrawn = false
	b.borderDrawn = false
	b.lastScore = -1
	b.lastHighScore = -1
	b.lastLength = -1
	b.lastLevel = ""
	b.lastPaused = false
}

// Render reconciles one frame. Order matters: the eaten food cell is
// erased before the snake draw so the head glyph lands on a clean cell.
func (b *Board) Render(g *game.Game) {
	b.drawHeader()
	b.drawBorder()

	if g.FoodEaten {
		b.EraseCell(g.OldFoodPos)
	}

	b.DrawSnake(g.Snake)
	b.DrawFood(g.Food)
	b.DrawStats(g.Score, g.HighScore, g.Snake.Len(), g.LevelLabel())
	b.DrawPause(g.State() == game.StatePaused)

	if g.State() == game.StateGameOver {
		b.drawGameOver(g.Score, g.HighScore)
	}
}

// valid reports whether p is a playfield cell. Draws outside the board
// are silently dropped; the head legally sits one cell out of bounds on
// the tick its collision is detected.
func (b *Board) valid(p game.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// cell moves the cursor to the screen position of playfield cell p.
func (b *Board) cell(p game.Point) {
	b.screen.SetCursor(p.X+boardLeft, p.Y+boardTop)
}

// EraseCell blanks one playfield cell. No-op outside the board.
func (b *Board) EraseCell(p game.Point) {
	if !b.valid(p) {
		return
	}
	b.cell(p)
	b.screen.Print(" ")
}

// DrawSnake erases the cells the snake vacated since the last move and
// draws the head and body. The erase set is the exact set difference
// prevBody minus body; growth changes the length, so a positional
// index compare would miss cells.
func (b *Board) DrawSnake(s *game.Snake) {
	body := s.Body()

	current := make(map[game.Point]struct{}, len(body))
	for _, p := range body {
		current[p] = struct{}{}
	}
	for _, p := range s.PrevBody() {
		if _, ok := current[p]; !ok {
			b.EraseCell(p)
		}
	}

	head := body[0]
	if b.valid(head) {
		b.cell(head)
		b.screen.SetColor(term.LightGreen)
		b.screen.Print(string(headGlyph(s.Direction())))
	}

	b.screen.SetColor(term.Green)
	for _, p := range body[1:] {
		if !b.valid(p) {
			continue
		}
		b.cell(p)
		b.screen.Print("o")
	}
}

func headGlyph(d game.Direction) rune {
	switch d {
	case game.Up:
		return '^'
	case game.Down:
		return 'v'
	case game.Left:
		return '<'
	case game.Right:
		return '>'
	}
	return '@'
}

// DrawFood draws the food at its current cell.
func (b *Board) DrawFood(f *game.Food) {
	if !b.valid(f.Pos) {
		return
	}
	b.cell(f.Pos)
	if f.Special {
		b.screen.SetColor(term.LightYellow)
	} else {
		b.screen.SetColor(term.LightRed)
	}
	b.screen.Print(string(f.Symbol()))
}

// drawBorder paints the playfield frame. Drawn exactly once per game;
// the flag is cleared only by ResetDiffState.
func (b *Board) drawBorder() {
	if b.borderDrawn {
		return
	}
	b.screen.SetColor(term.Cyan)

	b.screen.SetCursor(0, boardTop-1)
	b.screen.Print("+" + strings.Repeat("-", b.Width) + "+")

	for y := 0; y < b.Height; y++ {
		b.screen.SetCursor(0, boardTop+y)
		b.screen.Print("|")
		b.screen.SetCursor(b.Width+1, boardTop+y)
		b.screen.Print("|")
	}

	b.screen.SetCursor(0, boardTop+b.Height)
	b.screen.Print("+" + strings.Repeat("-", b.Width) + "+")

	b.borderDrawn = true
}

// drawHeader paints the title bar and the static panel chrome once.
func (b *Board) drawHeader() {
	if b.headerDrawn {
		return
	}
	col := b.Width + statsIndent

	b.screen.SetColor(term.LightCyan)
	b.screen.SetCursor(0, 0)
	b.screen.Print("+========================================================+")
	b.screen.SetCursor(0, 1)
	b.screen.Print("|                       SNAKE GAME                       |")
	b.screen.SetCursor(0, 2)
	b.screen.Print("+========================================================+")

	b.screen.SetColor(term.Yellow)
	b.screen.SetCursor(col, 5)
	b.screen.Print("+----------- STATS ----------+")
	b.screen.SetCursor(col, 10)
	b.screen.Print("+----------------------------+")

	b.screen.SetColor(term.LightMagenta)
	b.screen.SetCursor(col, 12)
	b.screen.Print("+--------- CONTROLS ---------+")
	b.screen.SetColor(term.White)
	b.screen.SetCursor(col, 13)
	b.screen.Print("| W/UP    - Move Up          |")
	b.screen.SetCursor(col, 14)
	b.screen.Print("| S/DOWN  - Move Down        |")
	b.screen.SetCursor(col, 15)
	b.screen.Print("| A/LEFT  - Move Left        |")
	b.screen.SetCursor(col, 16)
	b.screen.Print("| D/RIGHT - Move Right       |")
	b.screen.SetCursor(col, 17)
	b.screen.Print("| P       - Pause Game       |")
	b.screen.SetCursor(col, 18)
	b.screen.Print("| Q       - Quit Game        |")
	b.screen.SetColor(term.LightMagenta)
	b.screen.SetCursor(col, 19)
	b.screen.Print("+----------------------------+")

	b.screen.SetColor(term.Cyan)
	b.screen.SetCursor(col, 21)
	b.screen.Print("+------ FOOD TYPES ------+")
	b.screen.SetCursor(col, 22)
	b.screen.SetColor(term.LightRed)
	b.screen.Print("| * ")
	b.screen.SetColor(term.White)
	b.screen.Print("- Normal Food (+10)  |")
	b.screen.SetCursor(col, 23)
	b.screen.SetColor(term.LightYellow)
	b.screen.Print("| $ ")
	b.screen.SetColor(term.White)
	b.screen.Print("- Special Food (+50) |")
	b.screen.SetColor(term.Cyan)
	b.screen.SetCursor(col, 24)
	b.screen.Print("+------------------------+")

	b.headerDrawn = true
}

// DrawStats repaints only the fields whose value changed since the
// last render.
func (b *Board) DrawStats(score, highScore, length int, level string) {
	col := b.Width + statsIndent
	b.screen.SetColor(term.White)

	if score != b.lastScore {
		b.screen.SetCursor(col, 6)
		b.screen.Print(fmt.Sprintf("| Score:      %10d     |", score))
		b.lastScore = score
	}
	if highScore != b.lastHighScore {
		b.screen.SetCursor(col, 7)
		b.screen.Print(fmt.Sprintf("| High Score: %10d     |", highScore))
		b.lastHighScore = highScore
	}
	if length != b.lastLength {
		b.screen.SetCursor(col, 8)
		b.screen.Print(fmt.Sprintf("| Length:     %10d     |", length))
		b.lastLength = length
	}
	if level != b.lastLevel {
		b.screen.SetCursor(col, 9)
		b.screen.Print(fmt.Sprintf("| Level:      %10s     |", level))
		b.lastLevel = level
	}
}

// DrawPause shows the banner on the transition into pause and erases
// it on the transition out. Nothing is redrawn between transitions.
func (b *Board) DrawPause(paused bool) {
	if paused == b.lastPaused {
		return
	}
	b.lastPaused = paused

	b.screen.SetCursor(b.Width/2-3, b.Height/2+boardTop)
	if paused {
		b.screen.SetColor(term.LightYellow)
		b.screen.Print("PAUSED")
	} else {
		b.screen.Print("      ")
	}
}

// drawGameOver overlays the result box on the playfield.
func (b *Board) drawGameOver(score, highScore int) {
	x := b.Width/2 - 10
	y := b.Height/2 + 2

	b.screen.SetColor(term.LightRed)
	b.screen.SetCursor(x, y)
	b.screen.Print("+==================+")
	b.screen.SetCursor(x, y+1)
	b.screen.Print("|    GAME  OVER!   |")
	b.screen.SetCursor(x, y+2)
	b.screen.Print("+==================+")

	b.screen.SetColor(term.White)
	b.screen.SetCursor(x, y+3)
	b.screen.Print(fmt.Sprintf("| Final Score: %3d |", score))
	b.screen.SetCursor(x, y+4)
	b.screen.Print(fmt.Sprintf("| High Score:  %3d |", highScore))
	b.screen.SetColor(term.LightRed)
	b.screen.SetCursor(x, y+5)
	b.screen.Print("+==================+")

	b.screen.SetColor(term.Yellow)
	b.screen.SetCursor(b.Width/2-15, y+7)
	b.screen.Print("Press 'R' to restart or 'Q' to quit")
}
