// Package progress drives the loading bar fraction from elapsed frame time.
package progress

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is returned by Advance for a negative or NaN elapsed
// time or rate. The fraction is left untouched.
var ErrInvalidArgument = errors.New("progress: invalid argument")

// completeEpsilon absorbs float drift so that, e.g., five 0.2 steps land on
// Complete rather than 0.9999999.
const completeEpsilon = 1e-9

type State int

const (
	Running  State = iota // fraction < 1
	Complete              // fraction == 1, terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Animator holds the progress fraction. The zero value is a Running
// animator at 0. It is owned by a single frame loop and is not safe for
// concurrent use.
type Animator struct {
	fraction float64
}

func NewAnimator() *Animator {
	return &Animator{}
}

// Advance moves the fraction forward by rate*elapsedSeconds, clamping at 1.
// Once complete it is a no-op. Negative or NaN inputs are rejected so a
// clock that jumps backwards can never rewind the bar.
func (a *Animator) Advance(elapsedSeconds, rate float64) error {
	if elapsedSeconds < 0 || math.IsNaN(elapsedSeconds) {
		return fmt.Errorf("%w: elapsed %v", ErrInvalidArgument, elapsedSeconds)
	}
	if rate < 0 || math.IsNaN(rate) {
		return fmt.Errorf("%w: rate %v", ErrInvalidArgument, rate)
	}
	if a.IsComplete() {
		return nil
	}

	step := rate * elapsedSeconds
	if math.IsNaN(step) { // 0 * Inf
		return nil
	}
	next := a.fraction + step
	if next >= 1-completeEpsilon {
		next = 1
	}
	a.fraction = next
	return nil
}

// CurrentFraction is always within [0, 1].
func (a *Animator) CurrentFraction() float64 {
	return a.fraction
}

func (a *Animator) State() State {
	if a.fraction >= 1 {
		return Complete
	}
	return Running
}

func (a *Animator) IsComplete() bool {
	return a.State() == Complete
}

// FilledWidth is the foreground width of a bar fullWidth pixels wide. It is
// exactly fullWidth once complete.
func (a *Animator) FilledWidth(fullWidth int) int {
	if fullWidth <= 0 {
		return 0
	}
	if a.IsComplete() {
		return fullWidth
	}
	w := int(math.Round(float64(fullWidth) * a.fraction))
	return min(w, fullWidth)
}

// Percent is the whole percentage for display. It only reads 100 when
// complete.
func (a *Animator) Percent() int {
	if a.IsComplete() {
		return 100
	}
	return min(int(a.fraction*100), 99)
}
