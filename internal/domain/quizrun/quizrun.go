// Package quizrun is the per-run quiz state machine: it tracks the
// current question index, captures validated interval answers exactly
// once per question, and carries the stats-commit guard.
package quizrun

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/calibra-quiz/backend/internal/domain/catalog"
	"github.com/calibra-quiz/backend/internal/numeric"
)

var (
	// ErrBadNumber means one of the bounds was not a recognized
	// numeric form. The caller re-prompts with the raw text preserved.
	ErrBadNumber = errors.New("bound is not a recognized number")

	// ErrBounds means both bounds parsed but lower > upper.
	ErrBounds = errors.New("lower bound exceeds upper bound")

	// ErrOutOfStep means the submission targeted an index other than
	// the run's current question. Recovered by redirecting, never by
	// an error message.
	ErrOutOfStep = errors.New("submission out of step with the run")
)

// Interval is the user's claimed [Lower, Upper] range for a question's
// true value. Lower <= Upper always holds for a stored Interval.
type Interval struct {
	Lower float64
	Upper float64
}

// UnitSystem is the user's display preference for toggling units.
type UnitSystem string

const (
	UnitMetric   UnitSystem = "metric"
	UnitImperial UnitSystem = "imperial"
)

// ParseUnitSystem validates a raw preference value.
func ParseUnitSystem(raw string) (UnitSystem, bool) {
	switch UnitSystem(raw) {
	case UnitMetric:
		return UnitMetric, true
	case UnitImperial:
		return UnitImperial, true
	}
	return "", false
}

// State describes where a run is in its lifecycle.
type State string

const (
	StateFresh      State = "fresh"
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
	StateCommitted  State = "committed"
)

// Run is one traversal of the question sequence by one user.
type Run struct {
	ID           string
	CurrentIndex int
	Committed    bool
	UnitSystem   UnitSystem // empty until the user picks one
	Answers      map[string]Interval
}

// New creates a fresh run.
func New() *Run {
	return &Run{
		ID:      uuid.NewString(),
		Answers: make(map[string]Interval),
	}
}

// Reset forces the run back to fresh: no answers, index zero,
// nothing committed, no unit preference. This is the only way to
// re-enter index 0.
func (r *Run) Reset() {
	r.CurrentIndex = 0
	r.Committed = false
	r.UnitSystem = ""
	r.Answers = make(map[string]Interval)
}

// Submit parses both bounds and captures the answer for the given
// question, advancing the run to the next index. index must equal the
// run's current index; questions are answered in order, exactly once.
func (r *Run) Submit(q catalog.Question, index int, rawLower, rawUpper string) error {
	if index != r.CurrentIndex {
		return ErrOutOfStep
	}

	lower, err := numeric.Parse(rawLower)
	if err != nil {
		return fmt.Errorf("%w: lower %q", ErrBadNumber, rawLower)
	}
	upper, err := numeric.Parse(rawUpper)
	if err != nil {
		return fmt.Errorf("%w: upper %q", ErrBadNumber, rawUpper)
	}
	if lower > upper {
		return ErrBounds
	}

	r.Answers[q.ID] = Interval{Lower: lower, Upper: upper}
	r.CurrentIndex++
	return nil
}

// IsComplete reports whether every one of total questions has a
// captured answer. Partial runs never score.
func (r *Run) IsComplete(total int) bool {
	return len(r.Answers) == total
}

// State returns the run's lifecycle state for a catalog of total
// questions.
func (r *Run) State(total int) State {
	switch {
	case r.Committed:
		return StateCommitted
	case r.IsComplete(total) && r.CurrentIndex >= total:
		return StateComplete
	case len(r.Answers) == 0 && r.CurrentIndex == 0:
		return StateFresh
	default:
		return StateInProgress
	}
}
