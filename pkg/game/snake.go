package game

// startBody is the fixed initial body, head first.
func startBody() []Point {
	return []Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
}

// Snake owns the body cells (head first), the heading, and the one-shot
// growth flag. prevBody is a snapshot taken once per Move; the renderer
// diffs it against the current body to find cells to erase.
type Snake struct {
	body     []Point
	prevBody []Point
	dir      Direction
	growing  bool
}

// NewSnake creates a snake with the fixed 3-cell starting body and an
// idle heading.
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// SetDirection updates the heading unless dir is the exact reverse of
// the current one. The first call from the idle heading always wins.
// Rejected changes are silently ignored.
func (s *Snake) SetDirection(dir Direction) {
	if dir == None {
		return
	}
	if s.dir != None && dir == s.dir.Opposite() {
		return
	}
	s.dir = dir
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Move advances the snake one cell along its heading. A no-op while the
// heading is None. The growth flag is consumed here: when set, the tail
// survives and net length grows by one.
func (s *Snake) Move() {
	if s.dir == None {
		return
	}

	s.prevBody = append(s.prevBody[:0], s.body...)

	head := s.body[0]
	d := s.dir.Delta()
	head.X += d.X
	head.Y += d.Y

	s.body = append([]Point{head}, s.body...)

	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow arms the growth flag. Length increases on the NEXT Move, not
// immediately, so displayed length lags the score by one tick after
// eating. That lag is part of the game's observable behavior.
func (s *Snake) Grow() {
	s.growing = true
}

// Head returns the head cell.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Tail returns the tail cell.
func (s *Snake) Tail() Point {
	return s.body[len(s.body)-1]
}

// Body returns the current body, head first. Callers must not mutate it.
func (s *Snake) Body() []Point {
	return s.body
}

// PrevBody returns the body as it was before the most recent Move.
func (s *Snake) PrevBody() []Point {
	return s.prevBody
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// SelfCollision reports whether the head occupies the same cell as any
// other body segment. Only meaningful right after a Move.
func (s *Snake) SelfCollision() bool {
	if len(s.body) <= 1 {
		return false
	}
	head := s.body[0]
	for _, p := range s.body[1:] {
		if p == head {
			return true
		}
	}
	return false
}

// Contains reports whether p is inside the current body.
func (s *Snake) Contains(p Point) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// Reset restores the initial 3-cell body, idle heading and cleared
// growth flag.
func (s *Snake) Reset() {
	s.body = startBody()
	s.prevBody = append([]Point(nil), s.body...)
	s.dir = None
	s.growing = false
}
