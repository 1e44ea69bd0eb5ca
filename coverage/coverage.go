package coverage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/phantomkit/curve"
	"github.com/katalvlaran/phantomkit/monotone"
	"github.com/katalvlaran/phantomkit/sample"
)

// ErrNilStore is returned by Build for a nil store.
var ErrNilStore = errors.New("coverage: nil sample store")

// GapReport describes a target no family covers. Bounds are drawn only
// from usable families; samples of excluded non-monotonic families never
// appear. Either bound may be nil when the target lies beyond all usable
// data on that side.
type GapReport struct {
	Target float64        `json:"target_modulus"`
	Lower  *sample.Sample `json:"lower_bound"`
	Upper  *sample.Sample `json:"upper_bound"`
}

// Result is the outcome of Resolve: exactly one of Covered (non-empty)
// or Gap (non-nil) is set.
type Result struct {
	Covered []sample.Family
	Gap     *GapReport
}

// Map is the immutable coverage index.
type Map struct {
	store    *sample.Store
	curves   map[sample.Family]*curve.FamilyCurve
	order    []sample.Family
	excluded map[sample.Family]error
	// usable samples sorted by modulus, then family rank, then concentration
	sorted []sample.Sample
}

// Build constructs a FamilyCurve for every present family. Non-monotonic
// families are excluded and recorded; any other error aborts.
func Build(store *sample.Store) (*Map, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	m := &Map{
		store:    store,
		curves:   make(map[sample.Family]*curve.FamilyCurve),
		excluded: make(map[sample.Family]error),
	}
	for _, f := range store.AllFamilies() {
		c, err := curve.Build(f, store.SamplesFor(f))
		if err != nil {
			if errors.Is(err, monotone.ErrNonMonotonic) {
				m.excluded[f] = err
				continue
			}
			return nil, fmt.Errorf("coverage: family %s: %w", f, err)
		}
		m.curves[f] = c
		m.order = append(m.order, f)
		m.sorted = append(m.sorted, c.Samples()...)
	}

	sort.SliceStable(m.sorted, func(i, j int) bool {
		a, b := m.sorted[i], m.sorted[j]
		if a.Modulus != b.Modulus {
			return a.Modulus < b.Modulus
		}
		if ra, rb := store.Rank(a.Family), store.Rank(b.Family); ra != rb {
			return ra < rb
		}
		return a.Concentration < b.Concentration
	})

	return m, nil
}

// Resolve classifies target. Pure.
//
// Complexity: O(F) when covered, O(log n) extra for a gap.
func (m *Map) Resolve(target float64) Result {
	var covered []sample.Family
	for _, f := range m.order {
		if m.curves[f].Covers(target) {
			covered = append(covered, f)
		}
	}
	if len(covered) > 0 {
		return Result{Covered: covered}
	}
	gap := m.NearestBounds(target)

	return Result{Gap: &gap}
}

// NearestBounds returns the closest usable samples at or below and at or
// above target, regardless of coverage.
func (m *Map) NearestBounds(target float64) GapReport {
	rep := GapReport{Target: target}
	n := len(m.sorted)

	// first index with modulus >= target
	i := sort.Search(n, func(k int) bool { return m.sorted[k].Modulus >= target })
	if i < n {
		up := m.sorted[i]
		rep.Upper = &up
	}

	// last index with modulus <= target; walk back to the first of its tie group
	j := sort.Search(n, func(k int) bool { return m.sorted[k].Modulus > target }) - 1
	if j >= 0 {
		for j > 0 && m.sorted[j-1].Modulus == m.sorted[j].Modulus {
			j--
		}
		lo := m.sorted[j]
		rep.Lower = &lo
	}

	return rep
}

// Curve returns the FamilyCurve of a usable family.
func (m *Map) Curve(f sample.Family) (*curve.FamilyCurve, bool) {
	c, ok := m.curves[f]

	return c, ok
}

// Families returns usable families in canonical order.
func (m *Map) Families() []sample.Family {
	return append([]sample.Family(nil), m.order...)
}

// Excluded returns a copy of the families dropped during Build with the
// validation error for each.
func (m *Map) Excluded() map[sample.Family]error {
	out := make(map[sample.Family]error, len(m.excluded))
	for f, err := range m.excluded {
		out[f] = err
	}

	return out
}

// Store returns the underlying sample store.
func (m *Map) Store() *sample.Store { return m.store }
