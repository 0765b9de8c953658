// Package token animates the player token between board positions.
package token

import "chosenoffset.com/chaosend/internal/board"

// DefaultStep is the per-tick movement along each axis, in pixels.
const DefaultStep = 4.0

// Animator moves a token toward its target by a constant step per tick.
// Each axis moves independently, so diagonal moves are faster than straight ones.
type Animator struct {
	current board.Point
	target  board.Point
	moving  bool
	step    float64
}

// NewAnimator creates an animator resting at start.
func NewAnimator(start board.Point, step float64) *Animator {
	if step <= 0 {
		step = DefaultStep
	}
	return &Animator{current: start, target: start, step: step}
}

// SetTarget sets where the token should go. It does not start motion.
func (a *Animator) SetTarget(x, y float64) {
	a.target = board.Point{X: x, Y: y}
}

// SetMoving starts or stops motion.
func (a *Animator) SetMoving(moving bool) {
	a.moving = moving
}

// Moving reports whether the token is in motion.
func (a *Animator) Moving() bool {
	return a.moving
}

// Place puts the token at p and stops it.
func (a *Animator) Place(p board.Point) {
	a.current = p
	a.target = p
	a.moving = false
}

// Position returns the token's current position.
func (a *Animator) Position() board.Point {
	return a.current
}

// Target returns the token's target position.
func (a *Animator) Target() board.Point {
	return a.target
}

// Advance moves the token one step toward the target and reports whether it
// has arrived. It does nothing while the token is not moving.
func (a *Animator) Advance() bool {
	if a.moving {
		a.current.X = approach(a.current.X, a.target.X, a.step)
		a.current.Y = approach(a.current.Y, a.target.Y, a.step)
	}
	return a.current == a.target
}

// approach moves v toward target by at most step without passing it.
func approach(v, target, step float64) float64 {
	switch {
	case v < target:
		v += step
		if v > target {
			v = target
		}
	case v > target:
		v -= step
		if v < target {
			v = target
		}
	}
	return v
}
