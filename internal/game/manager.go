package game

import (
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"chosenoffset.com/chaosend/internal/board"
	"chosenoffset.com/chaosend/internal/dice"
	"chosenoffset.com/chaosend/internal/render"
	"chosenoffset.com/chaosend/internal/ui/button"
	"chosenoffset.com/chaosend/internal/ui/effects"
)

// tickDelta is the simulated time per Update call (ebiten runs at 60 TPS).
const tickDelta = 1.0 / 60.0

// Manager adapts the controller to the engine: it turns clicks into
// triggers and draws each frame.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Controller   *Controller
	Board        *board.Board
	Renderer     render.Renderer
	InputMgr     render.InputManager

	// Optional artwork; shapes are drawn when nil
	BoardImg render.Image
	TokenImg render.Image

	clicker  *button.Clicker
	buttons  map[Element]button.Button
	diceFx   *effects.Effect
	splashFx *effects.Effect
	frame    Frame
}

// NewManager creates a manager for the given controller.
func NewManager(c *Controller, b *board.Board, r render.Renderer, input render.InputManager, width, height int) *Manager {
	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Controller:   c,
		Board:        b,
		Renderer:     r,
		InputMgr:     input,
		clicker:      button.NewClicker(input),
		diceFx:       effects.Pop(),
		splashFx:     effects.FadeIn(0.8),
	}
	m.layoutButtons()
	m.frame = c.Frame()

	c.OnModeChange = func(from, to Mode) {
		if to == ModeSplash {
			m.splashFx.Restart()
		}
	}
	return m
}

// LoadArt loads optional board and token images from dir.
func (m *Manager) LoadArt(loader render.ResourceLoader, dir string) {
	if dir == "" {
		return
	}
	var err error
	m.BoardImg, err = loader.LoadImage(filepath.Join(dir, "board.png"))
	if err != nil {
		log.WithError(err).Warn("No board image, drawing tiles")
		m.BoardImg = nil
	}
	m.TokenImg, err = loader.LoadImage(filepath.Join(dir, "token.png"))
	if err != nil {
		log.WithError(err).Warn("No token image, drawing a marker")
		m.TokenImg = nil
	}
}

// Update handles clicks and advances the game by one tick.
func (m *Manager) Update() error {
	m.clicker.Update()

	for _, el := range m.frame.Elements {
		b, ok := m.buttons[el]
		if !ok || !m.clicker.Clicked(b) {
			continue
		}
		m.trigger(el)
		break
	}

	prev := m.frame.Phase.Kind
	m.Controller.Update()
	m.frame = m.Controller.Frame()

	if m.frame.Phase.Kind == dice.PhaseSpinning && prev != dice.PhaseSpinning {
		m.diceFx.Restart()
	}
	m.diceFx.Update(tickDelta)
	m.splashFx.Update(tickDelta)
	return nil
}

// Frame returns the frame computed on the last update.
func (m *Manager) Frame() Frame {
	return m.frame
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		m.layoutButtons()
	}
	return outsideWidth, outsideHeight
}

func (m *Manager) trigger(el Element) {
	var accepted bool
	switch el {
	case ElementPlayButton:
		accepted = m.Controller.OnPlayTriggered()
	case ElementScoresButton:
		accepted = m.Controller.OnScoresTriggered()
	case ElementRollButton:
		accepted = m.Controller.OnRollTriggered()
	case ElementBackButton:
		accepted = m.Controller.OnBackTriggered()
	}
	log.WithFields(log.Fields{"button": m.buttons[el].Label, "accepted": accepted}).Debug("Button clicked")
}

// layoutButtons places the buttons relative to the screen size.
func (m *Manager) layoutButtons() {
	w, h := m.ScreenWidth, m.ScreenHeight
	m.buttons = map[Element]button.Button{
		ElementPlayButton:   {Label: "PLAY", Rect: button.Rect{X: w - 400, Y: h / 2, W: 200, H: 70}},
		ElementScoresButton: {Label: "LEADERBOARD", Rect: button.Rect{X: w - 800, Y: h * 8 / 12, W: 200, H: 70}},
		ElementRollButton:   {Label: "ROLL", Rect: button.Rect{X: w/2 - 100, Y: h - 110, W: 200, H: 70}},
		ElementBackButton:   {Label: "BACK", Rect: button.Rect{X: 20, Y: 20, W: 140, H: 50}},
	}
}
