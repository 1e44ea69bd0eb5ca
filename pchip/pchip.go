// SPDX-License-Identifier: MIT

package pchip

import (
	"fmt"
	"math"
	"sort"
)

// maxBisect bounds the inverse search; 2^-64 of a segment width is below
// float64 resolution for any realistic knot spacing.
const maxBisect = 64

// Interpolator is an immutable monotone cubic Hermite interpolant.
// Safe for concurrent use.
type Interpolator struct {
	xs, ys, ms []float64
	increasing bool
}

// New builds the interpolant through (xs[i], ys[i]).
//
// Contract:
//   - len(xs) == len(ys) ≥ 2, all values finite;
//   - xs strictly increasing;
//   - ys strictly increasing or strictly decreasing.
//
// Inputs are copied.
func New(xs, ys []float64) (*Interpolator, error) {
	n := len(xs)
	if n < 2 || len(ys) != n {
		return nil, fmt.Errorf("%w: need ≥2 equal-length series, got %d/%d", ErrBadInput, len(xs), len(ys))
	}
	for i := 0; i < n; i++ {
		if !finite(xs[i]) || !finite(ys[i]) {
			return nil, fmt.Errorf("%w: non-finite value at %d", ErrBadInput, i)
		}
		if i > 0 && xs[i] <= xs[i-1] {
			return nil, fmt.Errorf("%w: x not strictly increasing at %d", ErrBadInput, i)
		}
	}
	increasing := ys[1] > ys[0]
	for i := 1; i < n; i++ {
		d := ys[i] - ys[i-1]
		if d == 0 || (d > 0) != increasing {
			return nil, fmt.Errorf("%w: between knots %d and %d", ErrNotMonotone, i-1, i)
		}
	}

	ip := &Interpolator{
		xs:         append([]float64(nil), xs...),
		ys:         append([]float64(nil), ys...),
		increasing: increasing,
	}
	ip.ms = slopes(ip.xs, ip.ys)

	return ip, nil
}

// slopes computes Fritsch–Carlson knot derivatives.
//
// Interior knots use the weighted harmonic mean of adjacent secants
// (zero where the secants disagree in sign). End knots use the
// one-sided three-point estimate, clamped to zero when it points the
// wrong way and to 3·secant when the data turns.
func slopes(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	d := make([]float64, n-1)
	for k := 0; k < n-1; k++ {
		h[k] = xs[k+1] - xs[k]
		d[k] = (ys[k+1] - ys[k]) / h[k]
	}

	m := make([]float64, n)
	if n == 2 {
		m[0], m[1] = d[0], d[0]
		return m
	}

	for k := 1; k < n-1; k++ {
		if d[k-1]*d[k] <= 0 {
			continue
		}
		w1 := 2*h[k] + h[k-1]
		w2 := h[k] + 2*h[k-1]
		m[k] = (w1 + w2) / (w1/d[k-1] + w2/d[k])
	}
	m[0] = endSlope(h[0], h[1], d[0], d[1])
	m[n-1] = endSlope(h[n-2], h[n-3], d[n-2], d[n-3])

	return m
}

func endSlope(h0, h1, d0, d1 float64) float64 {
	m := ((2*h0+h1)*d0 - h0*d1) / (h0 + h1)
	if math.Signbit(m) != math.Signbit(d0) || m == 0 {
		return 0
	}
	if math.Signbit(d0) != math.Signbit(d1) && math.Abs(m) > 3*math.Abs(d0) {
		return 3 * d0
	}

	return m
}

// Forward evaluates the interpolant at x ∈ [x0, xn-1]. Knots return the
// stored y exactly.
func (ip *Interpolator) Forward(x float64) (float64, error) {
	n := len(ip.xs)
	if math.IsNaN(x) || x < ip.xs[0] || x > ip.xs[n-1] {
		return 0, fmt.Errorf("%w: x=%v not in [%v, %v]", ErrOutOfRange, x, ip.xs[0], ip.xs[n-1])
	}
	k := sort.SearchFloat64s(ip.xs, x)
	if ip.xs[k] == x {
		return ip.ys[k], nil
	}

	return ip.eval(k-1, x), nil
}

// Inverse returns the x ∈ [x0, xn-1] at which the interpolant equals y.
// y must lie in the observed range (either orientation). Knots return the
// stored x exactly.
func (ip *Interpolator) Inverse(y float64) (float64, error) {
	lo, hi := ip.Range()
	if math.IsNaN(y) || y < lo || y > hi {
		return 0, fmt.Errorf("%w: y=%v not in [%v, %v]", ErrOutOfRange, y, lo, hi)
	}

	// first segment whose right knot reaches y
	segs := len(ip.xs) - 1
	k := sort.Search(segs, func(i int) bool {
		if ip.increasing {
			return ip.ys[i+1] >= y
		}
		return ip.ys[i+1] <= y
	})
	if ip.ys[k] == y {
		return ip.xs[k], nil
	}
	if ip.ys[k+1] == y {
		return ip.xs[k+1], nil
	}

	// bisection on a monotone segment
	a, b := ip.xs[k], ip.xs[k+1]
	for i := 0; i < maxBisect; i++ {
		mid := a + (b-a)/2
		if mid <= a || mid >= b {
			break
		}
		v := ip.eval(k, mid)
		if v == y {
			return mid, nil
		}
		if (v < y) == ip.increasing {
			a = mid
		} else {
			b = mid
		}
	}

	return a + (b-a)/2, nil
}

// eval computes the cubic Hermite polynomial on segment k at x.
func (ip *Interpolator) eval(k int, x float64) float64 {
	h := ip.xs[k+1] - ip.xs[k]
	t := (x - ip.xs[k]) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*ip.ys[k] + h10*h*ip.ms[k] + h01*ip.ys[k+1] + h11*h*ip.ms[k+1]
}

// Domain returns the closed x interval [x0, xn-1].
func (ip *Interpolator) Domain() (lo, hi float64) {
	return ip.xs[0], ip.xs[len(ip.xs)-1]
}

// Range returns the closed y interval with lo ≤ hi regardless of direction.
func (ip *Interpolator) Range() (lo, hi float64) {
	a, b := ip.ys[0], ip.ys[len(ip.ys)-1]
	if a > b {
		a, b = b, a
	}

	return a, b
}

// Increasing reports whether y grows with x.
func (ip *Interpolator) Increasing() bool { return ip.increasing }

// Knots returns copies of the knot coordinates.
func (ip *Interpolator) Knots() (xs, ys []float64) {
	return append([]float64(nil), ip.xs...), append([]float64(nil), ip.ys...)
}

// Slopes returns a copy of the knot derivatives.
func (ip *Interpolator) Slopes() []float64 {
	return append([]float64(nil), ip.ms...)
}

// Grid evaluates the interpolant on n evenly spaced x values spanning the
// domain (n ≥ 2). Endpoints are the first and last knots.
func (ip *Interpolator) Grid(n int) (xs, ys []float64) {
	if n < 2 {
		n = 2
	}
	lo, hi := ip.Domain()
	xs = make([]float64, n)
	ys = make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n; i++ {
		x := lo + float64(i)*step
		if i == n-1 {
			x = hi
		}
		xs[i] = x
		ys[i], _ = ip.Forward(x)
	}

	return xs, ys
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
