package game

import "math/rand"

// Food point values and symbols. One draw in ten upgrades the food to
// the special tier.
const (
	NormalFoodValue  = 10
	SpecialFoodValue = 50

	NormalFoodSymbol  = '*'
	SpecialFoodSymbol = '$'
)

// maxPlacementAttempts bounds the rejection-sampling loop before we
// fall back to enumerating free cells. At 30x20 the fallback is
// unreachable in practice, it exists for pathological near-full boards.
const maxPlacementAttempts = 200

// Food is a single consumable on the board. It is regenerated, not
// mutated field by field, whenever eaten.
type Food struct {
	Pos     Point `json:"pos"`
	Special bool  `json:"special"`
	Value   int   `json:"value"`
}

// Symbol returns the display glyph for the food tier.
func (f *Food) Symbol() rune {
	if f.Special {
		return SpecialFoodSymbol
	}
	return NormalFoodSymbol
}

// Generate places the food on a uniformly random free cell of the
// [0,width)x[0,height) grid and rolls the reward tier. occupied is the
// set of cells the food must avoid (the snake body). If rejection
// sampling runs out of attempts the free cells are enumerated
// instead; with no free cell at all the food is left where it was.
func (f *Food) Generate(width, height int, occupied []Point) {
	pos, ok := samplePosition(width, height, occupied)
	if !ok {
		return
	}
	f.Pos = pos

	if rand.Intn(10) == 0 {
		f.Special = true
		f.Value = SpecialFoodValue
	} else {
		f.Special = false
		f.Value = NormalFoodValue
	}
}

func samplePosition(width, height int, occupied []Point) (Point, bool) {
	for attempts := 0; attempts < maxPlacementAttempts; attempts++ {
		pos := Point{X: rand.Intn(width), Y: rand.Intn(height)}
		if !containsPoint(occupied, pos) {
			return pos, true
		}
	}

	// Board is nearly full: enumerate the free cells and pick one.
	free := make([]Point, 0, width*height-len(occupied))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: x, Y: y}
			if !containsPoint(occupied, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rand.Intn(len(free))], true
}

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}
