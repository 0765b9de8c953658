// Package clock supplies the timestamps that drive every timed behavior in the
// game. Time is measured in ticks of a fixed unit so animation thresholds can
// be written as small integers.
package clock

import "time"

// TickUnit is the length of one animation tick (a decisecond).
const TickUnit = 100 * time.Millisecond

// Source provides the current time.
type Source interface {
	Now() time.Time
}

// System is the Source backed by the wall clock.
var System Source = systemSource{}

type systemSource struct{}

func (systemSource) Now() time.Time {
	return time.Now()
}

// Ticks converts a duration to whole ticks. Negative durations count as zero.
func Ticks(d time.Duration) int {
	if d < 0 {
		return 0
	}
	return int(d / TickUnit)
}

// Clock reports time relative to a reference instant.
type Clock struct {
	src    Source
	origin time.Time
}

// New creates a Clock whose reference instant is the source's current time.
func New(src Source) *Clock {
	if src == nil {
		src = System
	}
	return &Clock{src: src, origin: src.Now()}
}

// Now returns the source's current time.
func (c *Clock) Now() time.Time {
	return c.src.Now()
}

// Elapsed returns the number of ticks since the reference instant.
func (c *Clock) Elapsed() int {
	return Ticks(c.src.Now().Sub(c.origin))
}

// Manual is a Source that only moves when told to. Used by tests and replays.
type Manual struct {
	t time.Time
}

// NewManual creates a Manual clock starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{t: t}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time {
	return m.t
}

// Advance moves the manual time forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.t = m.t.Add(d)
}
