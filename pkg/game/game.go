package game

import (
	"fmt"
	"time"
)

// Board geometry and pacing defaults. The playfield is the classic
// 30x20 grid; speed starts at 150ms per tick and is floored at 50ms.
const (
	DefaultWidth  = 30
	DefaultHeight = 20

	StartSpeedMs = 150
	MinSpeedMs   = 50

	// PausedIntervalMs is the fixed sleep while paused, short enough to
	// keep input responsive without busy-spinning.
	PausedIntervalMs = 100
)

// Game is the aggregate root: one snake, one food, the board bounds,
// the scores and the lifecycle state. It is constructed once per
// process and reset in place on restart.
type Game struct {
	Snake  *Snake
	Food   *Food
	Width  int
	Height int

	Score     int
	HighScore int

	// FoodEaten and OldFoodPos exist for the renderer: the eaten food's
	// cell must be erased on the frame after consumption.
	FoodEaten  bool
	OldFoodPos Point

	Autopilot bool

	state   State
	speedMs int
	level   int
	label   string
}

// NewGame creates a game on a width x height board, seeded with the
// carried-over high score. The game starts in the Welcome state.
func NewGame(width, height, highScore int) *Game {
	g := &Game{
		Snake:     NewSnake(),
		Food:      &Food{},
		Width:     width,
		Height:    height,
		HighScore: highScore,
		state:     StateWelcome,
		speedMs:   StartSpeedMs,
		level:     1,
		label:     "Level 1",
	}
	g.Food.Generate(width, height, g.Snake.Body())
	g.OldFoodPos = g.Food.Pos
	return g
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Level returns the current level number.
func (g *Game) Level() int {
	return g.level
}

// LevelLabel returns the display label for the current level.
func (g *Game) LevelLabel() string {
	return g.label
}

// Interval returns the tick sleep for the current speed.
func (g *Game) Interval() time.Duration {
	return time.Duration(g.speedMs) * time.Millisecond
}

// PausedInterval returns the fixed sleep used while paused.
func (g *Game) PausedInterval() time.Duration {
	return PausedIntervalMs * time.Millisecond
}

// Start leaves the Welcome state. Any key exits the welcome screen.
func (g *Game) Start() {
	if g.State() == StateWelcome {
		g.state = StatePlaying
	}
}

// Apply routes one logical input to the state machine. Inputs that do
// not apply to the current state are silently ignored.
func (g *Game) Apply(in Input) {
	switch g.State() {
	case StateTerminated:
		return

	case StateGameOver:
		switch in {
		case InputRestart:
			g.Restart()
		case InputQuit:
			g.Terminate()
		}
		return

	case StateWelcome:
		if in != InputNone {
			g.Start()
		}
		return
	}

	// Playing or Paused.
	switch in {
	case InputUp:
		g.Snake.SetDirection(Up)
	case InputDown:
		g.Snake.SetDirection(Down)
	case InputLeft:
		g.Snake.SetDirection(Left)
	case InputRight:
		g.Snake.SetDirection(Right)
	case InputPause:
		g.TogglePause()
	case InputQuit:
		g.Terminate()
	case InputAutopilot:
		g.Autopilot = !g.Autopilot
	}
}

// TogglePause flips between Playing and Paused.
func (g *Game) TogglePause() {
	switch g.State() {
	case StatePlaying:
		g.state = StatePaused
	case StatePaused:
		g.state = StatePlaying
	}
}

// InBounds reports whether p lies on the board.
func (g *Game) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Update advances the simulation by one tick: move, speed/level
// recompute, wall and self collision checks, food consumption. Skipped
// outside the Playing state.
func (g *Game) Update() {
	if g.State() != StatePlaying {
		return
	}

	g.FoodEaten = false

	if g.Autopilot {
		g.Snake.SetDirection(NextAutoMove(g))
	}

	g.Snake.Move()
	g.updateSpeed()

	head := g.Snake.Head()
	if !g.InBounds(head) {
		g.gameOver()
		return
	}
	if g.Snake.SelfCollision() {
		g.gameOver()
		return
	}

	if head == g.Food.Pos {
		g.Score += g.Food.Value
		g.Snake.Grow()
		g.FoodEaten = true
		g.OldFoodPos = g.Food.Pos
		g.Food.Generate(g.Width, g.Height, g.Snake.Body())
	}
}

func (g *Game) updateSpeed() {
	g.level = g.Score/100 + 1
	g.speedMs = 200 - g.level*15
	if g.speedMs < MinSpeedMs {
		g.speedMs = MinSpeedMs
	}
	g.label = fmt.Sprintf("Level %d", g.level)
}

func (g *Game) gameOver() {
	g.state = StateGameOver
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
}

// Restart reinitializes the snake, food, score and speed for a fresh
// round. The high score survives.
func (g *Game) Restart() {
	g.Snake.Reset()
	g.Score = 0
	g.speedMs = StartSpeedMs
	g.level = 1
	g.label = "Level 1"
	g.FoodEaten = false
	g.Food.Generate(g.Width, g.Height, g.Snake.Body())
	g.OldFoodPos = g.Food.Pos
	g.state = StatePlaying
}

// Terminate folds the score into the high score and ends the game.
func (g *Game) Terminate() {
	if g.Score > g.HighScore {
		g.HighScore = g.Score
	}
	g.state = StateTerminated
}
