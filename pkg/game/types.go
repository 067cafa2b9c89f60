package game

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is the snake's heading. None is the idle state before the
// first input; the snake does not move while the heading is None.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the one-cell offset for the direction.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the reverse heading, or None for None.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// State is the game's lifecycle state.
type State int

const (
	StateWelcome State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateTerminated
)

// Input is a logical key event, already assembled and mapped by the
// input adapter. The state machine never sees raw key codes.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputPause
	InputQuit
	InputRestart
	InputAutopilot
	InputOther
)
