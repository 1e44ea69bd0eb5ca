package monotone

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phantomkit/sample"
)

// Direction is the sign of dModulus/dConcentration over a family.
type Direction int

const (
	// Increasing: modulus grows with thinner concentration.
	Increasing Direction = iota + 1

	// Decreasing: modulus falls with thinner concentration (the usual
	// case for silicone thinner).
	Decreasing
)

// String returns "increasing" or "decreasing".
func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

var (
	// ErrNonMonotonic is matched by every *NonMonotonicError.
	ErrNonMonotonic = errors.New("monotone: modulus is not strictly monotonic in concentration")

	// ErrTooFewSamples indicates fewer than two samples were supplied.
	ErrTooFewSamples = errors.New("monotone: at least two samples required")

	// ErrUnsorted indicates the input was not strictly increasing in concentration.
	ErrUnsorted = errors.New("monotone: samples not sorted by concentration")
)

// NonMonotonicError reports the first consecutive pair (I, J=I+1) whose
// modulus step breaks the direction established by the first step, or
// whose step is zero.
type NonMonotonicError struct {
	Family sample.Family
	I, J   int
}

func (e *NonMonotonicError) Error() string {
	return fmt.Sprintf("monotone: family %s: samples %d and %d break strict monotonicity", e.Family, e.I, e.J)
}

// Unwrap lets errors.Is(err, ErrNonMonotonic) match.
func (e *NonMonotonicError) Unwrap() error { return ErrNonMonotonic }

// Validate returns the monotonic direction of samples, which must be sorted
// by strictly increasing concentration (as returned by Store.SamplesFor).
//
// Complexity: O(n).
func Validate(samples []sample.Sample) (Direction, error) {
	if len(samples) < 2 {
		return 0, ErrTooFewSamples
	}
	fam := samples[0].Family

	var dir Direction
	for i := 1; i < len(samples); i++ {
		if samples[i].Concentration <= samples[i-1].Concentration {
			return 0, fmt.Errorf("%w: family %s at index %d", ErrUnsorted, fam, i)
		}
		d := samples[i].Modulus - samples[i-1].Modulus
		var step Direction
		switch {
		case d > 0:
			step = Increasing
		case d < 0:
			step = Decreasing
		default:
			return 0, &NonMonotonicError{Family: fam, I: i - 1, J: i}
		}
		if dir == 0 {
			dir = step
		} else if step != dir {
			return 0, &NonMonotonicError{Family: fam, I: i - 1, J: i}
		}
	}

	return dir, nil
}
