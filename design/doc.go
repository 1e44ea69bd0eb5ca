// Package design maps a target elastic modulus to a fabricable phantom
// recipe (material family + thinner concentration) using only validated
// data, and refuses to extrapolate.
//
// 🚀 Flow:
//
//	sample.Store ─► coverage.Map (curves, exclusions) ─► Designer.Design
//
//	Design(target):
//	  1. target must be finite and > 0, else ErrInvalidTarget;
//	  2. no family covers target ⇒ Outcome.Gap (a successful answer);
//	  3. each covering family: c = Inverse(target), achieved = Forward(c);
//	  4. several families ⇒ pick the one whose validated modulus midpoint
//	     is nearest the target (ties: canonical order).
//
// ✨ Concurrency:
//
//	A Designer is immutable after New and safe for concurrent callers.
//	Service wraps a Designer in an atomic pointer so a reloaded dataset
//	is swapped in whole; in-flight queries keep their snapshot.
//
// ⚙️ Usage:
//
//	d, err := design.New(store, design.WithLogger(slog.Default()))
//	out, err := d.Design(50)
//	switch {
//	case err != nil:        // ErrInvalidTarget
//	case out.Recipe != nil: fmt.Println(out.Recipe.Instruction())
//	default:                // out.Gap.Lower / out.Gap.Upper
//	}
package design
