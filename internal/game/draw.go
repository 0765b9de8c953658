package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/chaosend/internal/dice"
	"chosenoffset.com/chaosend/internal/render"
	"chosenoffset.com/chaosend/internal/ui/button"
)

var (
	colorBackground = color.RGBA{18, 14, 28, 255}
	colorPath       = color.RGBA{90, 70, 120, 255}
	colorTile       = color.RGBA{60, 45, 90, 255}
	colorTileEdge   = color.RGBA{170, 140, 220, 255}
	colorGoal       = color.RGBA{200, 60, 60, 255}
	colorToken      = color.RGBA{255, 220, 90, 255}
	colorTokenEdge  = color.RGBA{200, 160, 40, 255}
	colorButton     = color.RGBA{50, 40, 80, 255}
	colorButtonEdge = color.RGBA{200, 180, 255, 255}
	colorText       = color.RGBA{240, 240, 240, 255}
	colorDiceWindow = color.RGBA{245, 240, 230, 255}
	colorPip        = color.RGBA{30, 20, 40, 255}
)

const (
	tileRadius  = 26
	tokenRadius = 14
)

// Draw renders the frame computed by the last Update.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(colorBackground)

	f := m.frame
	for _, el := range f.Elements {
		switch el {
		case ElementSplash:
			m.drawSplash(screen)
		case ElementBoard:
			m.drawBoard(screen)
		case ElementToken:
			m.drawToken(screen, f)
		case ElementDiceWindow:
			m.drawDiceWindow(screen, f.Phase)
		case ElementLeaderboard:
			m.drawLeaderboard(screen, f)
		case ElementPlayButton, ElementScoresButton, ElementRollButton, ElementBackButton:
			m.drawButton(screen, m.buttons[el])
		}
	}

	if f.Mode == ModePlay {
		m.drawHUD(screen, f)
	}
}

func (m *Manager) drawSplash(screen render.Image) {
	alpha := clampAlpha(m.splashFx.Value())
	title := "JOURNEY TO CHAOS END"
	tw, _ := m.Renderer.MeasureText(title, 4)
	m.Renderer.DrawText(screen, title, (m.ScreenWidth-tw)/2, m.ScreenHeight/5, color.NRGBA{240, 200, 255, alpha}, 4)

	sub := "Roll the die. Reach the last tile."
	sw, _ := m.Renderer.MeasureText(sub, 1.5)
	m.Renderer.DrawText(screen, sub, (m.ScreenWidth-sw)/2, m.ScreenHeight/5+80, color.NRGBA{200, 200, 200, alpha}, 1.5)
}

func (m *Manager) drawBoard(screen render.Image) {
	tiles := m.Board.Tiles()
	if m.BoardImg != nil {
		screen.DrawImage(m.BoardImg, &render.DrawImageOptions{})
	} else {
		for i := 1; i < len(tiles); i++ {
			a, b := tiles[i-1], tiles[i]
			m.Renderer.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 6, colorPath)
		}
		last := m.Board.Last()
		for _, t := range tiles {
			fill := colorTile
			if t.Index == last {
				fill = colorGoal
			}
			m.Renderer.FillCircle(screen, float32(t.X), float32(t.Y), tileRadius, fill)
			m.Renderer.StrokeCircle(screen, float32(t.X), float32(t.Y), tileRadius, 2, colorTileEdge)
		}
	}

	for _, t := range tiles {
		label := fmt.Sprintf("%d", t.Index)
		lw, lh := m.Renderer.MeasureText(label, 1)
		m.Renderer.DrawText(screen, label, int(t.X)-lw/2, int(t.Y)-lh/2, colorText, 1)
	}
}

func (m *Manager) drawToken(screen render.Image, f Frame) {
	x, y := f.Token.X, f.Token.Y
	if m.TokenImg != nil && render.NewGeoM != nil {
		// Fit the sprite to the marker size whatever its pixel size.
		w, h := m.TokenImg.Size()
		d := float64(2 * tokenRadius)
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Scale(d/float64(w), d/float64(h))
		opts.GeoM.Translate(x-d/2, y-d/2)
		screen.DrawImage(m.TokenImg, opts)
		return
	}
	m.Renderer.FillCircle(screen, float32(x), float32(y), tokenRadius, colorToken)
	m.Renderer.StrokeCircle(screen, float32(x), float32(y), tokenRadius, 2, colorTokenEdge)
}

// drawDiceWindow draws the die face centred on screen, scaled by the pop effect.
func (m *Manager) drawDiceWindow(screen render.Image, phase dice.Phase) {
	scale := m.diceFx.Value()
	if scale <= 0 {
		return
	}
	w := float32(m.ScreenWidth) * 0.26 * scale
	h := float32(m.ScreenHeight) * 0.398 * scale
	x := (float32(m.ScreenWidth) - w) / 2
	y := (float32(m.ScreenHeight) - h) / 2

	m.Renderer.FillRect(screen, x, y, w, h, colorDiceWindow)
	m.Renderer.StrokeRect(screen, x, y, w, h, 4, colorButtonEdge)

	r := min(w, h) / 12
	for _, p := range pipLayout(phase.Face) {
		m.Renderer.FillCircle(screen, x+w*p[0], y+h*p[1], r, colorPip)
	}

	if phase.Kind == dice.PhaseRevealed || phase.Kind == dice.PhaseSettled {
		label := fmt.Sprintf("You rolled %d", phase.Face)
		lw, _ := m.Renderer.MeasureText(label, 2)
		m.Renderer.DrawText(screen, label, int(x+(w-float32(lw))/2), int(y+h)+12, colorText, 2)
	}
}

// pipLayout returns pip centres as fractions of the die window.
func pipLayout(face int) [][2]float32 {
	switch face {
	case 1:
		return [][2]float32{{0.5, 0.5}}
	case 2:
		return [][2]float32{{0.3, 0.3}, {0.7, 0.7}}
	case 3:
		return [][2]float32{{0.25, 0.25}, {0.5, 0.5}, {0.75, 0.75}}
	default:
		return nil
	}
}

func (m *Manager) drawLeaderboard(screen render.Image, f Frame) {
	m.drawCentred(screen, "LEADERBOARD", 80, 3)
	if len(f.Scores) == 0 {
		m.drawCentred(screen, "No journeys completed yet", 160, 1.5)
		return
	}

	lines := make([]string, len(f.Scores))
	widest := 0
	for i, e := range f.Scores {
		lines[i] = fmt.Sprintf("%2d. %-16s %3d turns %5ds  %s", i+1, e.Name, e.Turns, e.Seconds, e.FinishedAt.Format("2006-01-02"))
		if w, _ := m.Renderer.MeasureText(lines[i], 1.5); w > widest {
			widest = w
		}
	}
	// Rows share a left edge so the columns line up.
	x := (m.ScreenWidth - widest) / 2
	for i, line := range lines {
		m.Renderer.DrawText(screen, line, x, 160+32*i, colorText, 1.5)
	}
}

func (m *Manager) drawCentred(screen render.Image, s string, y int, scale float64) {
	w, _ := m.Renderer.MeasureText(s, scale)
	m.Renderer.DrawText(screen, s, (m.ScreenWidth-w)/2, y, colorText, scale)
}

func (m *Manager) drawButton(screen render.Image, b button.Button) {
	r := b.Rect
	m.Renderer.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), colorButton)
	m.Renderer.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, colorButtonEdge)

	cx, cy := r.Center()
	lw, lh := m.Renderer.MeasureText(b.Label, 2)
	m.Renderer.DrawText(screen, b.Label, cx-lw/2, cy-lh/2, colorText, 2)
}

func (m *Manager) drawHUD(screen render.Image, f Frame) {
	hud := fmt.Sprintf("Turn %d   Tile %d/%d", f.Turns, f.TileIndex, f.LastTile)
	m.Renderer.DrawText(screen, hud, m.ScreenWidth-260, 24, colorText, 1.5)

	if f.Finished {
		msg := fmt.Sprintf("Chaos End reached in %d turns!", f.Turns)
		mw, _ := m.Renderer.MeasureText(msg, 3)
		m.Renderer.DrawText(screen, msg, (m.ScreenWidth-mw)/2, m.ScreenHeight-100, colorGoal, 3)
	}
}

func clampAlpha(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v * 255)
	}
}
