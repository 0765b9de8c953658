// Package ebiten implements the render interfaces on top of Ebitengine.
package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"chosenoffset.com/chaosend/internal/render"
)

func init() {
	render.NewGeoM = func() render.GeoM {
		return &geoM{}
	}
}

// Renderer draws with ebiten's vector package and a bitmap font.
type Renderer struct {
	face text.Face
}

// NewRenderer creates a renderer using the 7x13 basic font.
func NewRenderer() render.Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	vector.DrawFilledCircle(unwrap(dst), x, y, radius, clr, true)
}

func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	vector.StrokeCircle(unwrap(dst), x, y, radius, strokeWidth, clr, true)
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	vector.DrawFilledRect(unwrap(dst), x, y, width, height, clr, false)
}

func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height float32, strokeWidth float32, clr color.Color) {
	vector.StrokeRect(unwrap(dst), x, y, width, height, strokeWidth, clr, false)
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	vector.StrokeLine(unwrap(dst), x0, y0, x1, y1, strokeWidth, clr, true)
}

// DrawText scales the font by scale, so 2 draws 14x26 glyphs.
func (r *Renderer) DrawText(dst render.Image, str string, x, y int, clr color.Color, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(unwrap(dst), str, r.face, op)
}

func (r *Renderer) MeasureText(str string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	m := r.face.Metrics()
	w, h := text.Measure(str, r.face, m.HAscent+m.HDescent+m.HLineGap)
	return int(w * scale), int(h * scale)
}

func unwrap(img render.Image) *ebiten.Image {
	return img.(*surface).img
}

// surface adapts an *ebiten.Image.
type surface struct {
	img *ebiten.Image
}

func (s *surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *surface) Fill(clr color.Color) {
	s.img.Fill(clr)
}

func (s *surface) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	op := &ebiten.DrawImageOptions{}
	if opts != nil && opts.GeoM != nil {
		op.GeoM = opts.GeoM.(*geoM).m
	}
	s.img.DrawImage(unwrap(src), op)
}

type geoM struct {
	m ebiten.GeoM
}

func (g *geoM) Scale(sx, sy float64)     { g.m.Scale(sx, sy) }
func (g *geoM) Translate(tx, ty float64) { g.m.Translate(tx, ty) }

// Input reads the mouse through ebiten.
type Input struct{}

// NewInputManager creates the mouse reader.
func NewInputManager() render.InputManager {
	return Input{}
}

func (Input) GetCursorPosition() (x, y int) {
	return ebiten.CursorPosition()
}

func (Input) IsMouseButtonPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Loader reads PNG artwork. The caller must import image/png.
type Loader struct{}

// NewResourceLoader creates the artwork loader.
func NewResourceLoader() render.ResourceLoader {
	return Loader{}
}

func (Loader) LoadImage(path string) (render.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return &surface{img: img}, nil
}

// Engine wraps ebiten's global window functions.
type Engine struct{}

// NewEngine creates the engine.
func NewEngine() render.Engine {
	return Engine{}
}

func (Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

func (Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

func (Engine) SetWindowResizable(resizable bool) {
	mode := ebiten.WindowResizingModeDisabled
	if resizable {
		mode = ebiten.WindowResizingModeEnabled
	}
	ebiten.SetWindowResizingMode(mode)
}

func (Engine) RunGame(game render.Game) error {
	return ebiten.RunGame(&adapter{game: game})
}

// adapter presents a render.Game to ebiten.
type adapter struct {
	game render.Game
}

func (a *adapter) Update() error {
	return a.game.Update()
}

func (a *adapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&surface{img: screen})
}

func (a *adapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}
