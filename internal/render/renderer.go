// Package render is the seam between the game and the graphics engine. The
// game draws and reads input only through these interfaces, so it can be
// driven by fakes in tests and never imports the engine directly.
package render

import "image/color"

// Renderer draws shapes and text onto an Image.
type Renderer interface {
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	StrokeRect(dst Image, x, y, width, height float32, strokeWidth float32, clr color.Color)
	StrokeLine(dst Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color)

	// DrawText places text with its top-left corner at (x, y).
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a drawing surface: the screen, or artwork loaded from disk.
type Image interface {
	Size() (width, height int)
	Fill(clr color.Color)
	DrawImage(src Image, opts *DrawImageOptions)
}

// DrawImageOptions positions a source image. A nil GeoM draws it untransformed
// at the origin.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM is an affine transform. Calls apply in order.
type GeoM interface {
	Scale(sx, sy float64)
	Translate(tx, ty float64)
}

// NewGeoM returns an identity transform. The engine backend installs it.
var NewGeoM func() GeoM

// InputManager reports the mouse state. Every trigger in the game is a click.
type InputManager interface {
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// MouseButton identifies a mouse button.
type MouseButton int

// MouseButtonLeft is the only button the game reads.
const MouseButtonLeft MouseButton = 0

// ResourceLoader loads artwork from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game is driven by the engine: Update once per tick, Draw once per frame.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine owns the window and runs the loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks until the window closes.
	RunGame(game Game) error
}
