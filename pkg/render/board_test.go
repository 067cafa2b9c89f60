package render

import (
	"strings"
	"testing"

	"github.com/trytobebee/snakecycle/pkg/game"
	"github.com/trytobebee/snakecycle/pkg/term"
)

// fakeScreen records draw operations so tests can assert exactly which
// cells a frame touched.
type fakeScreen struct {
	x, y   int
	color  term.Color
	writes []write
}

type write struct {
	x, y  int
	text  string
	color term.Color
}

func (f *fakeScreen) SetCursor(x, y int) { f.x, f.y = x, y }
func (f *fakeScreen) SetColor(c term.Color) {
	f.color = c
}
func (f *fakeScreen) Print(s string) {
	f.writes = append(f.writes, write{x: f.x, y: f.y, text: s, color: f.color})
	f.x += len(s)
}
func (f *fakeScreen) Clear()      { f.writes = nil }
func (f *fakeScreen) HideCursor() {}
func (f *fakeScreen) ShowCursor() {}

func (f *fakeScreen) reset() { f.writes = nil }

// at returns every write that starts at playfield cell p.
func (f *fakeScreen) at(p game.Point) []write {
	var out []write
	for _, w := range f.writes {
		if w.x == p.X+boardLeft && w.y == p.Y+boardTop {
			out = append(out, w)
		}
	}
	return out
}

func newTestBoard() (*Board, *fakeScreen) {
	f := &fakeScreen{}
	return NewBoard(f, game.DefaultWidth, game.DefaultHeight), f
}

func TestBorderDrawnOnce(t *testing.T) {
	b, f := newTestBoard()

	b.drawBorder()
	first := len(f.writes)
	if first == 0 {
		t.Fatal("first drawBorder emitted nothing")
	}

	b.drawBorder()
	if len(f.writes) != first {
		t.Errorf("second drawBorder emitted %d extra writes", len(f.writes)-first)
	}

	b.ResetDiffState()
	b.drawBorder()
	if len(f.writes) == first {
		t.Error("border not repainted after ResetDiffState")
	}
}

// TestSnakeDiff verifies only the vacated tail cell is erased and the
// head/body are drawn with the right glyphs.
func TestSnakeDiff(t *testing.T) {
	b, f := newTestBoard()
	s := game.NewSnake()

	s.SetDirection(game.Right)
	s.Move() // body [(11,10),(10,10),(9,10)], vacated (8,10)

	f.reset()
	b.DrawSnake(s)

	vacated := game.Point{X: 8, Y: 10}
	ws := f.at(vacated)
	if len(ws) != 1 || ws[0].text != " " {
		t.Errorf("vacated cell %v writes: %v, want one blank", vacated, ws)
	}

	head := f.at(game.Point{X: 11, Y: 10})
	if len(head) != 1 || head[0].text != ">" || head[0].color != term.LightGreen {
		t.Errorf("head writes: %v, want '>' in light green", head)
	}

	for _, p := range []game.Point{{X: 10, Y: 10}, {X: 9, Y: 10}} {
		ws := f.at(p)
		if len(ws) != 1 || ws[0].text != "o" || ws[0].color != term.Green {
			t.Errorf("body cell %v writes: %v, want 'o' in green", p, ws)
		}
	}

	// Unchanged cells must not be touched.
	if ws := f.at(game.Point{X: 12, Y: 10}); len(ws) != 0 {
		t.Errorf("untouched cell written: %v", ws)
	}
}

func TestIdleHeadGlyph(t *testing.T) {
	b, f := newTestBoard()
	s := game.NewSnake()

	b.DrawSnake(s)
	head := f.at(game.Point{X: 10, Y: 10})
	if len(head) != 1 || head[0].text != "@" {
		t.Errorf("idle head writes: %v, want '@'", head)
	}
}

// TestOutOfBoundsDrawSuppressed moves the head off the board; the dead
// head must not be drawn but the in-bounds body still is.
func TestOutOfBoundsDrawSuppressed(t *testing.T) {
	b, f := newTestBoard()
	s := game.NewSnake()
	s.SetDirection(game.Up)
	for i := 0; i < 11; i++ {
		s.Move()
	}
	if s.Head().Y != -1 {
		t.Fatalf("setup: head at %v, want y=-1", s.Head())
	}

	f.reset()
	b.DrawSnake(s)

	for _, w := range f.writes {
		if w.y < boardTop {
			t.Errorf("write outside playfield at screen (%d,%d): %q", w.x, w.y, w.text)
		}
	}

	b.EraseCell(game.Point{X: -1, Y: 5})
	b.EraseCell(game.Point{X: 5, Y: game.DefaultHeight})
	for _, w := range f.writes {
		if w.x < boardLeft {
			t.Errorf("erase escaped the playfield: %+v", w)
		}
	}
}

func TestFoodColors(t *testing.T) {
	b, f := newTestBoard()

	normal := &game.Food{Pos: game.Point{X: 3, Y: 3}, Value: game.NormalFoodValue}
	b.DrawFood(normal)
	ws := f.at(normal.Pos)
	if len(ws) != 1 || ws[0].text != "*" || ws[0].color != term.LightRed {
		t.Errorf("normal food writes: %v", ws)
	}

	f.reset()
	special := &game.Food{Pos: game.Point{X: 4, Y: 4}, Special: true, Value: game.SpecialFoodValue}
	b.DrawFood(special)
	ws = f.at(special.Pos)
	if len(ws) != 1 || ws[0].text != "$" || ws[0].color != term.LightYellow {
		t.Errorf("special food writes: %v", ws)
	}
}

// TestStatsMemoized checks the per-field redraw rule: unchanged values
// emit nothing.
func TestStatsMemoized(t *testing.T) {
	b, f := newTestBoard()

	b.DrawStats(0, 0, 3, "Level 1")
	if len(f.writes) != 4 {
		t.Fatalf("first stats draw emitted %d writes, want 4", len(f.writes))
	}

	f.reset()
	b.DrawStats(0, 0, 3, "Level 1")
	if len(f.writes) != 0 {
		t.Errorf("unchanged stats emitted %d writes", len(f.writes))
	}

	b.DrawStats(10, 0, 3, "Level 1")
	if len(f.writes) != 1 || !strings.Contains(f.writes[0].text, "10") {
		t.Errorf("score change writes: %v, want exactly the score field", f.writes)
	}
}

func TestPauseBannerTransitions(t *testing.T) {
	b, f := newTestBoard()

	b.DrawPause(false)
	if len(f.writes) != 0 {
		t.Fatalf("unpaused start emitted %d writes", len(f.writes))
	}

	b.DrawPause(true)
	if len(f.writes) != 1 || f.writes[0].text != "PAUSED" {
		t.Fatalf("pause transition writes: %v", f.writes)
	}

	f.reset()
	b.DrawPause(true)
	if len(f.writes) != 0 {
		t.Errorf("steady pause redrew the banner: %v", f.writes)
	}

	b.DrawPause(false)
	if len(f.writes) != 1 || strings.TrimSpace(f.writes[0].text) != "" {
		t.Errorf("unpause transition writes: %v, want blanks", f.writes)
	}
}

// TestEatenFoodErased renders the frame after a consumption and checks
// the old food cell is blanked even though the snake has moved on.
func TestEatenFoodErased(t *testing.T) {
	b, f := newTestBoard()
	g := game.NewGame(game.DefaultWidth, game.DefaultHeight, 0)
	g.Start()
	g.Apply(game.InputRight)
	g.Food.Pos = game.Point{X: 11, Y: 10}
	g.Food.Special = false
	g.Food.Value = game.NormalFoodValue
	g.Update()
	if !g.FoodEaten {
		t.Fatal("setup: food not eaten")
	}

	b.Render(g)

	// The head sits on the eaten cell this frame, so the erase is
	// followed by the head glyph: blank first, '>' after.
	ws := f.at(game.Point{X: 11, Y: 10})
	if len(ws) < 2 || ws[0].text != " " || ws[len(ws)-1].text != ">" {
		t.Errorf("eaten cell writes: %v, want blank then head", ws)
	}
}
