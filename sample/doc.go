// Package sample holds the validated phantom dataset: one record per
// experimentally measured silicone phantom, grouped by material family.
//
// 🚀 What is a Sample?
//
//	A Sample pairs a control variable (thinner concentration, % by weight
//	of the A+B base) with the measured outcome (elastic modulus, kPa) for
//	one fabricated phantom. Samples are created once from the canonical
//	table and never mutated.
//
// ✨ Key guarantees of Load:
//   - every family present in the data has at least two samples
//   - concentrations are finite and non-negative, moduli finite and positive
//   - no two samples of one family share a concentration
//   - families belong to a fixed, ordered set (canonical order)
//
// ⚙️ Usage:
//
//	store, err := sample.Load(rows)
//	if err != nil {
//	  // errors.Is(err, sample.ErrDataIntegrity)
//	}
//	for _, f := range store.AllFamilies() {
//	  pts := store.SamplesFor(f) // sorted by concentration
//	  _ = pts
//	}
//
// The canonical order (EF50, EF30, EF10 by default) is the deterministic
// tie-break used by every downstream package.
package sample
