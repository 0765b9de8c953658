package token

import (
	"testing"

	"chosenoffset.com/chaosend/internal/board"
)

func TestAdvanceNoOpWhenStopped(t *testing.T) {
	a := NewAnimator(board.Point{X: 0, Y: 0}, 5)
	a.SetTarget(100, 100)

	if a.Advance() {
		t.Error("Expected target not reached")
	}
	if a.Position() != (board.Point{}) {
		t.Errorf("Expected no movement while stopped, got %v", a.Position())
	}
}

func TestAdvanceNeverOvershoots(t *testing.T) {
	tests := []struct {
		name   string
		start  board.Point
		target board.Point
		step   float64
	}{
		{"down right", board.Point{X: 0, Y: 0}, board.Point{X: 23, Y: 7}, 5},
		{"up left", board.Point{X: 50, Y: 40}, board.Point{X: 3, Y: 38}, 4},
		{"horizontal", board.Point{X: 10, Y: 10}, board.Point{X: -11, Y: 10}, 3},
		{"step larger than distance", board.Point{X: 1, Y: 1}, board.Point{X: 2, Y: 0}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnimator(tt.start, tt.step)
			a.SetTarget(tt.target.X, tt.target.Y)
			a.SetMoving(true)

			for i := 0; i < 1000; i++ {
				reached := a.Advance()
				p := a.Position()
				if crossed(tt.start.X, tt.target.X, p.X) || crossed(tt.start.Y, tt.target.Y, p.Y) {
					t.Fatalf("Overshoot at step %d: %v (target %v)", i, p, tt.target)
				}
				if reached {
					if p != tt.target {
						t.Fatalf("Reached reported at %v, target %v", p, tt.target)
					}
					return
				}
			}
			t.Fatal("Target never reached")
		})
	}
}

func crossed(start, target, v float64) bool {
	if start <= target {
		return v > target
	}
	return v < target
}

func TestAdvanceConstantStep(t *testing.T) {
	a := NewAnimator(board.Point{X: 0, Y: 0}, 4)
	a.SetTarget(40, 8)
	a.SetMoving(true)

	a.Advance()
	if a.Position() != (board.Point{X: 4, Y: 4}) {
		t.Errorf("Expected (4, 4) after one step, got %v", a.Position())
	}
	a.Advance()
	a.Advance()
	if a.Position() != (board.Point{X: 12, Y: 8}) {
		t.Errorf("Expected Y to stop at target, got %v", a.Position())
	}
}

func TestPlaceStops(t *testing.T) {
	a := NewAnimator(board.Point{}, 0)
	a.SetTarget(10, 10)
	a.SetMoving(true)
	a.Place(board.Point{X: 3, Y: 3})

	if a.Moving() {
		t.Error("Expected Place to stop motion")
	}
	if a.Target() != a.Position() {
		t.Error("Expected target to match placed position")
	}
}
