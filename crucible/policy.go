package crucible

import (
	"errors"
	"fmt"
)

// ErrInvalidPolicy indicates MinRun < 1 or MinRun > MaxRun.
var ErrInvalidPolicy = errors.New("crucible: policy requires 1 <= MinRun <= MaxRun")

// Policy bounds how far a crucible travels in one heading.
//
// MinRun – cells that must be covered in a straight line before turning or stopping.
// MaxRun – cells after which a turn is forced.
type Policy struct {
	MinRun int
	MaxRun int
}

// NewPolicy validates and returns a Policy. Values are never clamped.
func NewPolicy(minRun, maxRun int) (Policy, error) {
	p := Policy{MinRun: minRun, MaxRun: maxRun}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// ShortHaul returns the standard crucible policy: turn after at most 3 cells.
func ShortHaul() Policy { return Policy{MinRun: 1, MaxRun: 3} }

// LongHaul returns the ultra crucible policy: at least 4 and at most 10 cells per run.
func LongHaul() Policy { return Policy{MinRun: 4, MaxRun: 10} }

// Validate reports ErrInvalidPolicy (wrapped with the values) when the bounds are inconsistent.
// Useful for Policy literals that bypassed NewPolicy.
func (p Policy) Validate() error {
	if p.MinRun < 1 || p.MinRun > p.MaxRun {
		return fmt.Errorf("%w: got MinRun=%d MaxRun=%d", ErrInvalidPolicy, p.MinRun, p.MaxRun)
	}

	return nil
}

// CanStop reports whether s may be accepted as a goal state:
// the crucible must have covered at least MinRun cells in its current heading.
// The virtual origin (Run == 0) can never stop.
func (p Policy) CanStop(s State) bool {
	return s.Run >= p.MinRun
}

// CanTurn reports whether a 90° turn out of s is permitted.
func (p Policy) CanTurn(s State) bool {
	return s.IsOrigin() || s.Run >= p.MinRun
}

// CanContinue reports whether one more straight step out of s is permitted.
func (p Policy) CanContinue(s State) bool {
	return !s.IsOrigin() && s.Run < p.MaxRun
}

// Weaker reports whether every move legal under q is also legal under p,
// that is p.MinRun <= q.MinRun and p.MaxRun >= q.MaxRun.
func (p Policy) Weaker(q Policy) bool {
	return p.MinRun <= q.MinRun && p.MaxRun >= q.MaxRun
}

func (p Policy) String() string {
	return fmt.Sprintf("run[%d..%d]", p.MinRun, p.MaxRun)
}
