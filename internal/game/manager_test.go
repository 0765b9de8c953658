package game

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"chosenoffset.com/chaosend/internal/core/clock"
	"chosenoffset.com/chaosend/internal/render"
	"chosenoffset.com/chaosend/internal/scores"
)

type fakeImage struct {
	w, h  int
	draws []*render.DrawImageOptions
}

func (i *fakeImage) Size() (int, int)     { return i.w, i.h }
func (i *fakeImage) Fill(clr color.Color) {}
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	i.draws = append(i.draws, opts)
}

// fakeGeoM keeps the last scale and translation.
type fakeGeoM struct {
	sx, sy, tx, ty float64
}

func (g *fakeGeoM) Scale(sx, sy float64)     { g.sx, g.sy = sx, sy }
func (g *fakeGeoM) Translate(tx, ty float64) { g.tx, g.ty = tx, ty }

type textCall struct {
	s    string
	x, y int
}

// fakeRenderer records text and counts shapes.
type fakeRenderer struct {
	texts  []string
	calls  []textCall
	shapes int
}

func (r *fakeRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.shapes++
}
func (r *fakeRenderer) StrokeCircle(dst render.Image, x, y, radius, sw float32, clr color.Color) {
	r.shapes++
}
func (r *fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.shapes++
}
func (r *fakeRenderer) StrokeRect(dst render.Image, x, y, w, h, sw float32, clr color.Color) {
	r.shapes++
}
func (r *fakeRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, sw float32, clr color.Color) {
	r.shapes++
}
func (r *fakeRenderer) DrawText(dst render.Image, s string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, s)
	r.calls = append(r.calls, textCall{s: s, x: x, y: y})
}
func (r *fakeRenderer) MeasureText(s string, scale float64) (int, int) {
	return int(float64(7*len(s)) * scale), int(13 * scale)
}

func (r *fakeRenderer) drew(sub string) bool {
	for _, t := range r.texts {
		if strings.Contains(t, sub) {
			return true
		}
	}
	return false
}

// steppingClock moves one 60Hz tick each time it is read.
type steppingClock struct {
	*clock.Manual
}

func (s *steppingClock) Now() time.Time {
	s.Advance(time.Second / 60)
	return s.Manual.Now()
}

type fakeMouse struct {
	pressed bool
	x, y    int
}

func (f *fakeMouse) GetCursorPosition() (int, int) { return f.x, f.y }
func (f *fakeMouse) IsMouseButtonPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && f.pressed
}

func newTestManager(t *testing.T, outcome int, opts Options) (*Manager, *fakeRenderer, *fakeMouse) {
	t.Helper()
	c, m := newTestController(t, 10, outcome, opts)
	r := &fakeRenderer{}
	in := &fakeMouse{}
	mgr := NewManager(c, c.board, r, in, 1280, 800)
	// Keep the controller clock moving with the update loop.
	mgr.Controller.clock = &steppingClock{Manual: m}
	return mgr, r, in
}

// click presses and releases the mouse over the given element's button.
func click(t *testing.T, mgr *Manager, in *fakeMouse, el Element) {
	t.Helper()
	b, ok := mgr.buttons[el]
	if !ok {
		t.Fatalf("No button for element %d", el)
	}
	in.x, in.y = b.Rect.Center()
	in.pressed = true
	if err := mgr.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	in.pressed = false
	if err := mgr.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestManagerClickToPlay(t *testing.T) {
	mgr, r, in := newTestManager(t, 2, Options{})

	mgr.Draw(&fakeImage{w: 1280, h: 800})
	if !r.drew("JOURNEY TO CHAOS END") || !r.drew("PLAY") {
		t.Fatalf("Expected splash title and play button, got %v", r.texts)
	}

	click(t, mgr, in, ElementPlayButton)
	if mgr.Controller.Mode() != ModePlay {
		t.Fatalf("Expected play mode, got %v", mgr.Controller.Mode())
	}

	r.texts = nil
	mgr.Draw(&fakeImage{w: 1280, h: 800})
	if !r.drew("ROLL") || !r.drew("Turn 0") {
		t.Errorf("Expected roll button and HUD, got %v", r.texts)
	}
}

func TestManagerRollRunsTurn(t *testing.T) {
	mgr, r, in := newTestManager(t, 2, Options{})
	click(t, mgr, in, ElementPlayButton)
	click(t, mgr, in, ElementRollButton)

	if !mgr.Frame().Visible(ElementDiceWindow) {
		t.Fatal("Expected dice window after roll click")
	}

	for i := 0; i < 2000 && !mgr.Frame().RollEnabled; i++ {
		if err := mgr.Update(); err != nil {
			t.Fatalf("Update failed: %v", err)
		}
	}
	f := mgr.Frame()
	if !f.RollEnabled || f.TileIndex != 2 || f.Turns != 1 {
		t.Fatalf("Expected turn to end on tile 2, got %+v", f)
	}

	r.texts = nil
	mgr.Draw(&fakeImage{w: 1280, h: 800})
	if !r.drew("Tile 2/9") {
		t.Errorf("Expected HUD to show tile 2, got %v", r.texts)
	}
}

func TestManagerClickOutsideButtonIgnored(t *testing.T) {
	mgr, _, in := newTestManager(t, 1, Options{})
	in.x, in.y = 5, 5
	in.pressed = true
	mgr.Update()
	if mgr.Controller.Mode() != ModeSplash {
		t.Error("Click off any button must not change mode")
	}
}

func TestManagerHiddenButtonsIgnored(t *testing.T) {
	mgr, _, in := newTestManager(t, 1, Options{})
	click(t, mgr, in, ElementScoresButton)
	if mgr.Controller.Mode() != ModeScores {
		t.Fatalf("Expected scores mode, got %v", mgr.Controller.Mode())
	}
	// Play sits in the same place on every screen but is not shown here.
	click(t, mgr, in, ElementPlayButton)
	if mgr.Controller.Mode() != ModeScores {
		t.Error("Hidden play button must not be clickable")
	}
}

func TestManagerLayoutMovesButtons(t *testing.T) {
	mgr, _, _ := newTestManager(t, 1, Options{})
	before := mgr.buttons[ElementRollButton].Rect
	if w, h := mgr.Layout(1600, 900); w != 1600 || h != 900 {
		t.Fatalf("Unexpected layout %dx%d", w, h)
	}
	after := mgr.buttons[ElementRollButton].Rect
	if before == after {
		t.Error("Expected roll button to move on resize")
	}
}

func TestPipLayout(t *testing.T) {
	for face := 1; face <= 3; face++ {
		if got := len(pipLayout(face)); got != face {
			t.Errorf("Face %d: expected %d pips, got %d", face, face, got)
		}
	}
	if pipLayout(0) != nil {
		t.Error("Expected no pips for an unknown face")
	}
}

func TestTokenSpriteFitsMarker(t *testing.T) {
	prev := render.NewGeoM
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{} }
	t.Cleanup(func() { render.NewGeoM = prev })

	mgr, _, in := newTestManager(t, 1, Options{})
	mgr.TokenImg = &fakeImage{w: 56, h: 112}
	click(t, mgr, in, ElementPlayButton)

	screen := &fakeImage{w: 1280, h: 800}
	mgr.Draw(screen)
	if len(screen.draws) != 1 {
		t.Fatalf("Expected one sprite draw, got %d", len(screen.draws))
	}
	g := screen.draws[0].GeoM.(*fakeGeoM)
	if g.sx != 0.5 || g.sy != 0.25 {
		t.Errorf("Expected scale (0.5, 0.25), got (%v, %v)", g.sx, g.sy)
	}
	pos := mgr.Frame().Token
	if g.tx != pos.X-tokenRadius || g.ty != pos.Y-tokenRadius {
		t.Errorf("Expected sprite centred on (%v, %v), got offset (%v, %v)", pos.X, pos.Y, g.tx, g.ty)
	}
}

func TestLeaderboardCentred(t *testing.T) {
	mgr, r, in := newTestManager(t, 1, Options{ScoresShown: 5})
	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	mgr.Controller.table.Add(scores.Entry{Name: "orc", Turns: 4, Seconds: 31, FinishedAt: day})
	mgr.Controller.table.Add(scores.Entry{Name: "a-much-longer-name", Turns: 12, Seconds: 140, FinishedAt: day})
	click(t, mgr, in, ElementScoresButton)

	r.calls = nil
	mgr.Draw(&fakeImage{w: 1280, h: 800})

	var rows []textCall
	for _, c := range r.calls {
		switch {
		case c.s == "LEADERBOARD":
			if w, _ := r.MeasureText(c.s, 3); c.x != (1280-w)/2 {
				t.Errorf("Expected centred header at x=%d, got %d", (1280-w)/2, c.x)
			}
		case strings.Contains(c.s, "turns"):
			rows = append(rows, c)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 rows, got %+v", rows)
	}

	widest := 0
	for _, row := range rows {
		if w, _ := r.MeasureText(row.s, 1.5); w > widest {
			widest = w
		}
	}
	for _, row := range rows {
		if row.x != (1280-widest)/2 {
			t.Errorf("Expected row at x=%d, got %d: %q", (1280-widest)/2, row.x, row.s)
		}
	}
	if !strings.Contains(rows[0].s, "31s") {
		t.Errorf("Expected journey time in row, got %q", rows[0].s)
	}
}
