// SPDX-License-Identifier: MIT

// Package pchip implements shape-preserving piecewise cubic Hermite
// interpolation (PCHIP, Fritsch–Carlson slope limiting) over strictly
// monotone data, with forward and inverse evaluation.
//
// 🚀 Why PCHIP?
//
//	A plain cubic spline may overshoot between knots. On monotone data
//	that overshoot makes the inverse multi-valued. PCHIP chooses knot
//	slopes with a weighted harmonic mean of neighbouring secants, which
//	keeps every segment monotone and never overshoots the data.
//
// ✨ Key guarantees:
//   - the interpolant passes through every knot exactly (both directions)
//   - strictly monotone input ⇒ monotone interpolant, single-valued inverse
//   - no extrapolation: Forward and Inverse return ErrOutOfRange outside
//     the observed closed interval
//
// ⚙️ Usage:
//
//	ip, err := pchip.New([]float64{0, 10, 20}, []float64{60, 45, 30})
//	y, _ := ip.Forward(5)   // modulus at 5 %
//	x, _ := ip.Inverse(50)  // concentration that yields 50 kPa
//
// Slopes follow the same end-point rule as SciPy's PchipInterpolator, so
// results agree with published curves to float64 precision.
//
// Complexity:
//   - New:     O(n)
//   - Forward: O(log n)
//   - Inverse: O(log n + 64) (binary search + bisection to float64 resolution)
package pchip
