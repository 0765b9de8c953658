package game

import (
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"chosenoffset.com/chaosend/internal/board"
	"chosenoffset.com/chaosend/internal/core/clock"
	"chosenoffset.com/chaosend/internal/dice"
	"chosenoffset.com/chaosend/internal/scores"
	"chosenoffset.com/chaosend/internal/turn"
)

// Mode is the top-level screen.
type Mode int

const (
	ModeSplash Mode = iota
	ModePlay
	ModeScores
)

func (m Mode) String() string {
	switch m {
	case ModeSplash:
		return "splash"
	case ModePlay:
		return "play"
	case ModeScores:
		return "scores"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Element is something the render layer should draw this frame.
type Element int

const (
	ElementSplash Element = iota
	ElementPlayButton
	ElementScoresButton
	ElementBoard
	ElementToken
	ElementDiceWindow
	ElementRollButton
	ElementLeaderboard
	ElementBackButton
)

// Frame is everything the render layer needs for one tick.
type Frame struct {
	Mode        Mode
	Elements    []Element
	Token       board.Point
	Phase       dice.Phase
	RollEnabled bool
	TileIndex   int
	LastTile    int
	Turns       int
	Outcome     int
	Finished    bool
	Scores      []scores.Entry
}

// Visible reports whether e is part of the frame.
func (f Frame) Visible(e Element) bool {
	for _, el := range f.Elements {
		if el == e {
			return true
		}
	}
	return false
}

// Options tunes the controller.
type Options struct {
	AllowReturn bool   // Offer a way back to the splash screen
	Player      string // Name recorded on the leaderboard
	ScoresPath  string // Where the leaderboard is saved; empty keeps it in memory
	ScoresShown int    // Leaderboard rows in the frame
}

// Controller is the mode state machine. It owns the turn sequencer and turns
// user triggers into state transitions.
type Controller struct {
	mode    Mode
	seq     *turn.Sequencer
	clock   clock.Source
	journey *clock.Clock
	table   *scores.Table
	board   *board.Board
	opts    Options

	// Callbacks
	OnModeChange func(from, to Mode)
}

// NewController creates a controller on the splash screen.
func NewController(seq *turn.Sequencer, b *board.Board, src clock.Source, table *scores.Table, opts Options) *Controller {
	if src == nil {
		src = clock.System
	}
	if table == nil {
		table = scores.New()
	}
	c := &Controller{
		mode:  ModeSplash,
		seq:   seq,
		clock: src,
		table: table,
		board: b,
		opts:  opts,
	}
	seq.OnJourneyComplete = c.recordJourney
	seq.OnTurnEnd = func(turnNum, tileIndex int) {
		log.WithFields(log.Fields{"turn": turnNum, "tile": tileIndex}).Debug("Turn ended")
	}
	return c
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Sequencer returns the turn sequencer.
func (c *Controller) Sequencer() *turn.Sequencer {
	return c.seq
}

// OnPlayTriggered enters play from the splash screen.
func (c *Controller) OnPlayTriggered() bool {
	if c.mode != ModeSplash {
		return false
	}
	if c.journey == nil || c.seq.State() == turn.StateFinished {
		c.journey = clock.New(c.clock)
	}
	c.seq.Reset()
	c.setMode(ModePlay)
	return true
}

// OnScoresTriggered shows the leaderboard from the splash screen.
func (c *Controller) OnScoresTriggered() bool {
	if c.mode != ModeSplash {
		return false
	}
	c.setMode(ModeScores)
	return true
}

// OnRollTriggered starts a turn. Ignored unless playing and idle.
func (c *Controller) OnRollTriggered() bool {
	if c.mode != ModePlay {
		return false
	}
	outcome, err := c.seq.Roll(c.clock.Now())
	if err != nil {
		if !errors.Is(err, turn.ErrNotIdle) && !errors.Is(err, dice.ErrRollInProgress) {
			log.WithError(err).Warn("Roll failed")
		} else {
			log.WithError(err).Debug("Roll trigger ignored")
		}
		return false
	}
	log.WithFields(log.Fields{"outcome": outcome, "turn": c.seq.Turns()}).Debug("Dice rolled")
	return true
}

// OnBackTriggered returns to the splash screen when that is allowed.
func (c *Controller) OnBackTriggered() bool {
	if !c.opts.AllowReturn || c.mode == ModeSplash {
		return false
	}
	c.setMode(ModeSplash)
	return true
}

// Update advances the active mode by one tick.
func (c *Controller) Update() {
	if c.mode == ModePlay {
		c.seq.Update(c.clock.Now())
	}
}

// Frame builds the render output for the current tick.
func (c *Controller) Frame() Frame {
	f := Frame{Mode: c.mode}
	switch c.mode {
	case ModeSplash:
		f.Elements = []Element{ElementSplash, ElementPlayButton, ElementScoresButton}
	case ModePlay:
		f.Elements = []Element{ElementBoard, ElementToken}
		f.Token = c.seq.TokenPosition()
		f.Phase = c.seq.Phase()
		f.RollEnabled = c.seq.RollEnabled()
		f.TileIndex = c.seq.Progress().TileIndex
		f.LastTile = c.board.Last()
		f.Turns = c.seq.Turns()
		f.Outcome = c.seq.Outcome()
		f.Finished = c.seq.State() == turn.StateFinished
		if c.seq.State() == turn.StateRolling {
			f.Elements = append(f.Elements, ElementDiceWindow)
		}
		if f.RollEnabled {
			f.Elements = append(f.Elements, ElementRollButton)
		}
		if c.opts.AllowReturn {
			f.Elements = append(f.Elements, ElementBackButton)
		}
	case ModeScores:
		f.Elements = []Element{ElementLeaderboard}
		f.Scores = c.table.Top(c.opts.ScoresShown)
		if c.opts.AllowReturn {
			f.Elements = append(f.Elements, ElementBackButton)
		}
	}
	return f
}

func (c *Controller) setMode(to Mode) {
	from := c.mode
	c.mode = to
	log.WithFields(log.Fields{"from": from, "to": to}).Info("Mode changed")
	if c.OnModeChange != nil {
		c.OnModeChange(from, to)
	}
}

func (c *Controller) recordJourney(turns int) {
	var took time.Duration
	if c.journey != nil {
		took = time.Duration(c.journey.Elapsed()) * clock.TickUnit
	}
	entry := scores.Entry{
		Name:       c.opts.Player,
		Turns:      turns,
		Seconds:    int(took / time.Second),
		FinishedAt: c.clock.Now().UTC().Truncate(time.Second),
	}
	c.table.Add(entry)
	log.WithFields(log.Fields{"player": entry.Name, "turns": turns, "took": took}).Info("Journey complete")

	if c.opts.ScoresPath == "" {
		return
	}
	if err := c.table.Save(c.opts.ScoresPath); err != nil {
		log.WithError(err).Warn("Failed to save scores")
	}
}
