// Package monotone checks that a family's elastic modulus is a strictly
// monotonic function of thinner concentration.
//
// Strict monotonicity is the gate that makes inversion (modulus →
// concentration) single-valued. Validate walks the concentration-sorted
// samples and requires every consecutive modulus difference to share one
// strict sign; a zero difference or a sign flip is reported together
// with the offending index pair.
package monotone
