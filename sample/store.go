package sample

import (
	"fmt"
	"math"
	"sort"
)

// Store owns the validated dataset. It is immutable after Load and safe
// for concurrent readers.
type Store struct {
	order    []Family
	rank     map[Family]int
	byFamily map[Family][]Sample
}

// Load validates samples and builds a Store.
//
// Validation order (first violation wins):
//  1. non-empty input;
//  2. family belongs to the configured set;
//  3. concentration finite and ≥ 0, modulus finite and > 0;
//  4. unique concentration per family;
//  5. at least two samples per present family.
//
// Every failure wraps ErrDataIntegrity.
//
// Complexity: O(n log n).
func Load(samples []Sample, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrDataIntegrity)
	}

	rank := make(map[Family]int, len(o.families))
	for i, f := range o.families {
		rank[f] = i
	}

	byFamily := make(map[Family][]Sample)
	for i, s := range samples {
		if _, ok := rank[s.Family]; !ok {
			return nil, fmt.Errorf("%w: row %d: unknown family %q", ErrDataIntegrity, i, s.Family)
		}
		if !isFinite(s.Concentration) || s.Concentration < 0 {
			return nil, fmt.Errorf("%w: row %d: invalid thinner concentration %v", ErrDataIntegrity, i, s.Concentration)
		}
		if !isFinite(s.Modulus) || s.Modulus <= 0 {
			return nil, fmt.Errorf("%w: row %d: invalid elastic modulus %v", ErrDataIntegrity, i, s.Modulus)
		}
		byFamily[s.Family] = append(byFamily[s.Family], s)
	}

	for f, pts := range byFamily {
		sort.SliceStable(pts, func(i, j int) bool { return pts[i].Concentration < pts[j].Concentration })
		for i := 1; i < len(pts); i++ {
			if pts[i].Concentration == pts[i-1].Concentration {
				return nil, fmt.Errorf("%w: family %s: duplicate concentration %v", ErrDataIntegrity, f, pts[i].Concentration)
			}
		}
		if len(pts) < 2 {
			return nil, fmt.Errorf("%w: family %s: %d sample(s), need at least 2", ErrDataIntegrity, f, len(pts))
		}
	}

	return &Store{order: o.families, rank: rank, byFamily: byFamily}, nil
}

// SamplesFor returns a copy of the family's samples sorted by
// concentration. Unknown or absent families yield nil.
func (s *Store) SamplesFor(f Family) []Sample {
	pts, ok := s.byFamily[f]
	if !ok {
		return nil
	}

	return append([]Sample(nil), pts...)
}

// AllFamilies returns the families present in the dataset, in canonical order.
func (s *Store) AllFamilies() []Family {
	out := make([]Family, 0, len(s.byFamily))
	for _, f := range s.order {
		if _, ok := s.byFamily[f]; ok {
			out = append(out, f)
		}
	}

	return out
}

// Families returns the configured canonical order, including families
// with no samples.
func (s *Store) Families() []Family {
	return append([]Family(nil), s.order...)
}

// Rank returns the canonical position of f, or -1 if f is not in the set.
func (s *Store) Rank(f Family) int {
	if r, ok := s.rank[f]; ok {
		return r
	}

	return -1
}

// All returns every sample, ordered by canonical family then concentration.
func (s *Store) All() []Sample {
	var out []Sample
	for _, f := range s.AllFamilies() {
		out = append(out, s.byFamily[f]...)
	}

	return out
}

// Len reports the total number of samples.
func (s *Store) Len() int {
	n := 0
	for _, pts := range s.byFamily {
		n += len(pts)
	}

	return n
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
