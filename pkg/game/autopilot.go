package game

// NextAutoMove picks a heading for the demo autopilot: the safe move
// that closes the most distance to the food. Safe means on the board
// and not into the body (the tail cell counts as free because it
// vacates on the same tick, unless growth is armed). Falls back to any
// safe move, then to the current heading if boxed in.
func NextAutoMove(g *Game) Direction {
	cur := g.Snake.Direction()
	if cur == None {
		cur = Right
	}

	candidates := []Direction{Up, Down, Left, Right}
	best := None
	bestDist := -1

	for _, d := range candidates {
		if d == cur.Opposite() {
			continue
		}
		next := step(g.Snake.Head(), d)
		if !g.autoSafe(next) {
			continue
		}
		dist := manhattan(next, g.Food.Pos)
		if best == None || dist < bestDist {
			best = d
			bestDist = dist
		}
	}

	if best == None {
		return cur
	}
	return best
}

func (g *Game) autoSafe(p Point) bool {
	if !g.InBounds(p) {
		return false
	}
	body := g.Snake.Body()
	occupied := body
	if !g.Snake.growing && len(body) > 1 {
		occupied = body[:len(body)-1]
	}
	return !containsPoint(occupied, p)
}

func step(p Point, d Direction) Point {
	delta := d.Delta()
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

func manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
