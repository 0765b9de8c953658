// Package turn runs the per-turn sequence: roll the die, wait for the roll
// animation to settle, then walk the token tile by tile.
package turn

import (
	"errors"
	"fmt"
	"time"

	"chosenoffset.com/chaosend/internal/board"
	"chosenoffset.com/chaosend/internal/dice"
	"chosenoffset.com/chaosend/internal/token"
)

// ErrNotIdle is returned when a roll is triggered outside the Idle state.
var ErrNotIdle = errors.New("turn: roll trigger is not armed")

// State is the sequencer's current stage.
type State int

const (
	StateIdle     State = iota // Waiting for the roll trigger
	StateRolling               // Dice animation running
	StateMoving                // Token walking toward its destination
	StateFinished              // Token stands on the last tile
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRolling:
		return "rolling"
	case StateMoving:
		return "moving"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Progress tracks where the token is and how far it still has to go.
type Progress struct {
	TileIndex      int
	RemainingSteps int
}

// Sequencer orchestrates one turn at a time.
type Sequencer struct {
	board    *board.Board
	roller   *dice.Roller
	animator *token.Animator

	state    State
	progress Progress
	phase    dice.Phase
	outcome  int
	turns    int

	// Callbacks
	OnTileReached     func(index int)
	OnTurnEnd         func(turn, tileIndex int)
	OnJourneyComplete func(turns int)
}

// NewSequencer creates a sequencer with the token resting on the first tile.
func NewSequencer(b *board.Board, roller *dice.Roller, animator *token.Animator) *Sequencer {
	animator.Place(b.Tile(0).Pos())
	return &Sequencer{
		board:    b,
		roller:   roller,
		animator: animator,
		state:    StateIdle,
	}
}

// State returns the current stage.
func (s *Sequencer) State() State {
	return s.state
}

// Progress returns the tile index and remaining steps.
func (s *Sequencer) Progress() Progress {
	return s.progress
}

// Phase returns the dice phase computed on the last update.
func (s *Sequencer) Phase() dice.Phase {
	return s.phase
}

// Outcome returns the outcome of the most recent roll, or 0 when none counts.
func (s *Sequencer) Outcome() int {
	return s.outcome
}

// Turns returns how many rolls have counted on this journey.
func (s *Sequencer) Turns() int {
	return s.turns
}

// TokenPosition returns where the token is drawn.
func (s *Sequencer) TokenPosition() board.Point {
	return s.animator.Position()
}

// RollEnabled reports whether the roll trigger should be offered.
func (s *Sequencer) RollEnabled() bool {
	return s.state == StateIdle
}

// Roll starts a turn. It is only honoured while idle.
func (s *Sequencer) Roll(now time.Time) (int, error) {
	if s.state != StateIdle || s.animator.Moving() {
		return 0, ErrNotIdle
	}
	outcome, err := s.roller.Start(now)
	if err != nil {
		return 0, err
	}
	s.outcome = outcome
	s.turns++
	s.state = StateRolling
	s.phase = dice.Phase{Kind: dice.PhaseSpinning, Face: dice.SpinFace(0)}
	return outcome, nil
}

// Update advances the turn by one tick.
func (s *Sequencer) Update(now time.Time) {
	switch s.state {
	case StateRolling:
		s.phase = s.roller.Tick(now)
		if s.phase.Kind == dice.PhaseSettled {
			s.beginMove()
		}
	case StateMoving:
		s.phase = dice.Phase{Kind: dice.PhaseIdle}
		if s.animator.Advance() {
			s.stepReached()
		}
	default:
		s.phase = dice.Phase{Kind: dice.PhaseIdle}
	}
}

// Reset returns the sequencer to Idle. A finished journey starts over from
// the first tile; otherwise the token keeps its tile. A roll abandoned before
// it settled does not count as a turn.
func (s *Sequencer) Reset() {
	switch s.state {
	case StateFinished:
		s.progress = Progress{}
		s.turns = 0
	case StateRolling:
		s.turns--
		s.outcome = 0
	}
	s.progress.RemainingSteps = 0
	s.animator.Place(s.board.Tile(s.progress.TileIndex).Pos())
	s.phase = dice.Phase{Kind: dice.PhaseIdle}
	s.state = StateIdle
	s.roller.Cancel()
}

// beginMove converts the settled roll into steps, clamped to the board end.
func (s *Sequencer) beginMove() {
	steps := s.outcome
	if remaining := s.board.Last() - s.progress.TileIndex; steps > remaining {
		steps = remaining
	}
	s.progress.RemainingSteps = steps
	if steps == 0 {
		s.endTurn()
		return
	}
	s.retarget()
	s.animator.SetMoving(true)
	s.state = StateMoving
}

func (s *Sequencer) stepReached() {
	s.progress.TileIndex++
	s.progress.RemainingSteps--
	if s.OnTileReached != nil {
		s.OnTileReached(s.progress.TileIndex)
	}
	if s.progress.RemainingSteps > 0 {
		s.retarget()
		return
	}
	s.animator.SetMoving(false)
	s.endTurn()
}

func (s *Sequencer) retarget() {
	next := s.board.Tile(s.progress.TileIndex + 1)
	s.animator.SetTarget(next.X, next.Y)
}

func (s *Sequencer) endTurn() {
	if s.OnTurnEnd != nil {
		s.OnTurnEnd(s.turns, s.progress.TileIndex)
	}
	if s.progress.TileIndex == s.board.Last() {
		s.state = StateFinished
		if s.OnJourneyComplete != nil {
			s.OnJourneyComplete(s.turns)
		}
		return
	}
	s.state = StateIdle
}
