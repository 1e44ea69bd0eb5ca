package curve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/phantomkit/monotone"
	"github.com/katalvlaran/phantomkit/pchip"
	"github.com/katalvlaran/phantomkit/sample"
)

// ErrOutOfRange is re-exported so callers need not import pchip.
var ErrOutOfRange = pchip.ErrOutOfRange

// FamilyCurve is an immutable per-family view over the sample store.
type FamilyCurve struct {
	family    sample.Family
	samples   []sample.Sample
	direction monotone.Direction
	ip        *pchip.Interpolator
}

// Build validates samples (sorted by concentration) and fits the
// interpolant. A non-monotonic family returns *monotone.NonMonotonicError.
func Build(family sample.Family, samples []sample.Sample) (*FamilyCurve, error) {
	dir, err := monotone.Validate(samples)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i], ys[i] = s.Concentration, s.Modulus
	}
	ip, err := pchip.New(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("curve: family %s: %w", family, err)
	}

	return &FamilyCurve{
		family:    family,
		samples:   append([]sample.Sample(nil), samples...),
		direction: dir,
		ip:        ip,
	}, nil
}

// Family returns the material family.
func (c *FamilyCurve) Family() sample.Family { return c.family }

// Direction returns the validated monotonic direction.
func (c *FamilyCurve) Direction() monotone.Direction { return c.direction }

// Samples returns a copy of the underlying samples.
func (c *FamilyCurve) Samples() []sample.Sample {
	return append([]sample.Sample(nil), c.samples...)
}

// ConcentrationRange returns the tested concentration interval.
func (c *FamilyCurve) ConcentrationRange() (lo, hi float64) { return c.ip.Domain() }

// ModulusRange returns the validated modulus interval, lo ≤ hi.
func (c *FamilyCurve) ModulusRange() (lo, hi float64) { return c.ip.Range() }

// Midpoint returns the centre of the validated modulus interval.
func (c *FamilyCurve) Midpoint() float64 {
	lo, hi := c.ip.Range()

	return lo + (hi-lo)/2
}

// Covers reports whether m lies in the closed validated modulus interval.
func (c *FamilyCurve) Covers(m float64) bool {
	lo, hi := c.ip.Range()

	return m >= lo && m <= hi
}

// Forward maps concentration to modulus inside the tested domain.
func (c *FamilyCurve) Forward(conc float64) (float64, error) {
	return c.ip.Forward(conc)
}

// Inverse maps modulus to concentration inside the validated range.
func (c *FamilyCurve) Inverse(modulus float64) (float64, error) {
	return c.ip.Inverse(modulus)
}

// Grid evaluates the curve on n evenly spaced concentrations.
func (c *FamilyCurve) Grid(n int) (conc, modulus []float64) {
	return c.ip.Grid(n)
}

// IsOutOfRange reports whether err came from a query outside the curve.
func IsOutOfRange(err error) bool {
	return errors.Is(err, pchip.ErrOutOfRange)
}
