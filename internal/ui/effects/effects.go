// Package effects holds cosmetic tweens layered over the game state, such as
// the dice window popping in and the splash screen fading up. None of them
// affect game logic.
package effects

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Effect is a restartable tween from one value to another.
type Effect struct {
	tween *gween.Tween
	begin float32
	value float32
	done  bool
}

// New creates an effect running from begin to end over seconds.
func New(begin, end, seconds float32, easing ease.TweenFunc) *Effect {
	return &Effect{
		tween: gween.New(begin, end, seconds, easing),
		begin: begin,
		value: begin,
	}
}

// Pop scales a window up from small with a slight overshoot.
func Pop() *Effect {
	return New(0.2, 1, 0.35, ease.OutBack)
}

// FadeIn raises opacity from transparent to opaque.
func FadeIn(seconds float32) *Effect {
	return New(0, 1, seconds, ease.InOutQuad)
}

// Update advances the effect by dt seconds and returns the current value.
func (e *Effect) Update(dt float32) float32 {
	if e.done {
		return e.value
	}
	e.value, e.done = e.tween.Update(dt)
	return e.value
}

// Value returns the value from the last update.
func (e *Effect) Value() float32 {
	return e.value
}

// Done reports whether the effect has reached its end value.
func (e *Effect) Done() bool {
	return e.done
}

// Restart rewinds the effect to its beginning.
func (e *Effect) Restart() {
	e.tween.Reset()
	e.value = e.begin
	e.done = false
}
