// Package coverage answers "which material families can reach modulus M?"
//
// A Map holds one FamilyCurve per family that passed monotonicity
// validation. Resolve returns either the covering families (canonical
// order) or a GapReport naming the nearest validated samples below and
// above the target across every covered family. Families that fail
// validation have zero coverage and are listed by Excluded.
//
// Bounds are computed globally: every sample of every usable family is a
// candidate, the closest one at or below the target is Lower, the
// closest one at or above is Upper. Ties prefer the earlier family in
// canonical order, then the lower concentration.
package coverage
