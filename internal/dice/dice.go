// Package dice rolls the three-sided movement die and runs its animation:
// a spinning flicker, a reveal of the true face, and a settle pause.
package dice

import (
	"errors"
	"fmt"
	"time"

	"chosenoffset.com/chaosend/internal/core/clock"
)

const (
	// Faces is the number of die faces. Outcomes are 1..Faces.
	Faces = 3

	// SpinTicks is how long the die flickers before revealing the outcome.
	SpinTicks = 30

	// SettleDelay is how long the revealed face stays up before the move starts.
	SettleDelay = 2000 * time.Millisecond
)

// ErrRollInProgress is returned when a roll is started while another is running.
var ErrRollInProgress = errors.New("dice: roll already in progress")

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// PhaseKind identifies the stage of the roll animation.
type PhaseKind int

const (
	PhaseIdle     PhaseKind = iota // No roll running
	PhaseSpinning                  // Flickering through faces
	PhaseRevealed                  // Showing the true outcome
	PhaseSettled                   // Pause over, roll finished
)

func (k PhaseKind) String() string {
	switch k {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseRevealed:
		return "revealed"
	case PhaseSettled:
		return "settled"
	default:
		return fmt.Sprintf("phase(%d)", int(k))
	}
}

// Phase is the animation state for one tick. Face is the die face to draw,
// or 0 when nothing should be shown.
type Phase struct {
	Kind PhaseKind
	Face int
}

// RollState is the bookkeeping for the roll in progress.
type RollState struct {
	Rolling        bool
	Start          time.Time
	Outcome        int
	SettleDeadline time.Time // zero until the reveal has been shown
}

// Roller owns the die and its animation state.
type Roller struct {
	src         Source
	spinTicks   int
	settleDelay time.Duration
	state       RollState
}

// NewRoller creates a Roller drawing from src with the default timings.
func NewRoller(src Source) *Roller {
	return &Roller{src: src, spinTicks: SpinTicks, settleDelay: SettleDelay}
}

// SetTimings overrides the spin length and settle pause. Non-positive values
// keep the current setting.
func (r *Roller) SetTimings(spinTicks int, settleDelay time.Duration) {
	if spinTicks > 0 {
		r.spinTicks = spinTicks
	}
	if settleDelay > 0 {
		r.settleDelay = settleDelay
	}
}

// State returns a copy of the current roll state.
func (r *Roller) State() RollState {
	return r.state
}

// Rolling reports whether a roll animation is running.
func (r *Roller) Rolling() bool {
	return r.state.Rolling
}

// Start samples an outcome and begins the animation at now.
func (r *Roller) Start(now time.Time) (int, error) {
	if r.state.Rolling {
		return 0, ErrRollInProgress
	}
	outcome := r.src.Intn(Faces) + 1
	r.state = RollState{
		Rolling: true,
		Start:   now,
		Outcome: outcome,
	}
	return outcome, nil
}

// Cancel abandons a running roll.
func (r *Roller) Cancel() {
	r.state = RollState{}
}

// Tick advances the animation to now and returns the phase to display.
// Settled is reported exactly once per roll; afterwards the roller is idle.
func (r *Roller) Tick(now time.Time) Phase {
	if !r.state.Rolling {
		return Phase{Kind: PhaseIdle}
	}

	elapsed := clock.Ticks(now.Sub(r.state.Start))
	switch {
	case elapsed < r.spinTicks:
		return Phase{Kind: PhaseSpinning, Face: SpinFace(elapsed)}
	case elapsed == r.spinTicks:
		return Phase{Kind: PhaseRevealed, Face: r.state.Outcome}
	}

	if r.state.SettleDeadline.IsZero() {
		r.state.SettleDeadline = now.Add(r.settleDelay)
	}
	if now.Before(r.state.SettleDeadline) {
		return Phase{Kind: PhaseRevealed, Face: r.state.Outcome}
	}

	r.state.Rolling = false
	return Phase{Kind: PhaseSettled, Face: r.state.Outcome}
}

// SpinFace is the cosmetic face shown while spinning. It is a fixed pattern
// over the elapsed tick count and says nothing about the outcome.
func SpinFace(elapsed int) int {
	switch {
	case elapsed%3 == 0:
		return 3
	case elapsed%2 == 0:
		return 2
	default:
		return 1
	}
}
