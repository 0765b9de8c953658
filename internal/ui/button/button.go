// Package button provides rectangular click targets for single-click triggers.
package button

import "chosenoffset.com/chaosend/internal/render"

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rectangle, edges included.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px <= r.X+r.W && py >= r.Y && py <= r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Button is a labelled click target.
type Button struct {
	Label string
	Rect  Rect
}

// Clicker turns the held mouse state into one-shot clicks.
type Clicker struct {
	input      render.InputManager
	wasPressed bool
	clicked    bool
	cx, cy     int
}

// NewClicker creates a Clicker reading from input.
func NewClicker(input render.InputManager) *Clicker {
	return &Clicker{input: input}
}

// Update samples the mouse. Call once per tick before Clicked.
func (c *Clicker) Update() {
	pressed := c.input.IsMouseButtonPressed(render.MouseButtonLeft)
	c.clicked = pressed && !c.wasPressed
	c.wasPressed = pressed
	c.cx, c.cy = c.input.GetCursorPosition()
}

// Clicked reports whether the button was clicked this tick.
func (c *Clicker) Clicked(b Button) bool {
	return c.clicked && b.Rect.Contains(c.cx, c.cy)
}
