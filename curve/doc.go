// Package curve builds a FamilyCurve: one family's validated samples,
// their monotonic direction and the shape-preserving interpolant used to
// map thinner concentration to elastic modulus and back.
package curve
