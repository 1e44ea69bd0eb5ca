package design

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/phantomkit/coverage"
	"github.com/katalvlaran/phantomkit/curve"
	"github.com/katalvlaran/phantomkit/sample"
)

// Designer answers design queries against one immutable dataset snapshot.
type Designer struct {
	cov *coverage.Map
	log *slog.Logger
}

// New builds the coverage index for store. Families failing monotonicity
// validation are excluded and logged at WARN; they never abort startup.
func New(store *sample.Store, opts ...Option) (*Designer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cov, err := coverage.Build(store)
	if err != nil {
		return nil, err
	}
	ex := cov.Excluded()
	for _, f := range store.AllFamilies() {
		if err, ok := ex[f]; ok {
			o.logger.Warn("family excluded from design: not strictly monotonic",
				"family", f, "error", err)
		}
	}

	return &Designer{cov: cov, log: o.logger}, nil
}

// FromSamples is Load followed by New.
func FromSamples(samples []sample.Sample, storeOpts []sample.Option, opts ...Option) (*Designer, error) {
	store, err := sample.Load(samples, storeOpts...)
	if err != nil {
		return nil, err
	}

	return New(store, opts...)
}

// Design returns a recipe for target, or a gap report when no validated
// composition reaches it. The only error is ErrInvalidTarget.
func (d *Designer) Design(target float64) (Outcome, error) {
	if err := checkTarget(target); err != nil {
		return Outcome{}, err
	}
	out := Outcome{Target: target}

	res := d.cov.Resolve(target)
	if res.Gap != nil {
		out.Gap = res.Gap
		return out, nil
	}

	bestIdx := -1
	bestDist := math.Inf(1)
	for _, f := range res.Covered {
		c, _ := d.cov.Curve(f)
		r, err := recipeFor(c, target)
		if err != nil {
			// boundary round-off: treat as not covering
			d.log.Debug("covering family failed inversion", "family", f, "target", target, "error", err)
			continue
		}
		out.Candidates = append(out.Candidates, r)
		if dist := math.Abs(c.Midpoint() - target); dist < bestDist {
			bestDist = dist
			bestIdx = len(out.Candidates) - 1
		}
	}
	if bestIdx < 0 {
		gap := d.cov.NearestBounds(target)
		out.Gap = &gap
		return out, nil
	}
	chosen := out.Candidates[bestIdx]
	out.Recipe = &chosen

	return out, nil
}

// DesignFamily restricts the query to one family. A family that cannot
// reach target (or was excluded) yields a gap report with global nearest
// bounds.
func (d *Designer) DesignFamily(f sample.Family, target float64) (Outcome, error) {
	if err := checkTarget(target); err != nil {
		return Outcome{}, err
	}
	if d.cov.Store().Rank(f) < 0 {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownFamily, f)
	}
	out := Outcome{Target: target}

	if c, ok := d.cov.Curve(f); ok && c.Covers(target) {
		if r, err := recipeFor(c, target); err == nil {
			out.Recipe = &r
			out.Candidates = []Recipe{r}
			return out, nil
		}
	}
	gap := d.cov.NearestBounds(target)
	out.Gap = &gap

	return out, nil
}

// Families summarises every family present in the dataset, usable or not,
// in canonical order.
func (d *Designer) Families() []FamilyInfo {
	store := d.cov.Store()
	ex := d.cov.Excluded()
	var out []FamilyInfo
	for _, f := range store.AllFamilies() {
		pts := store.SamplesFor(f)
		info := FamilyInfo{
			Family:           f,
			Samples:          len(pts),
			ConcentrationMin: pts[0].Concentration,
			ConcentrationMax: pts[len(pts)-1].Concentration,
		}
		if c, ok := d.cov.Curve(f); ok {
			info.Direction = c.Direction().String()
			info.ModulusMin, info.ModulusMax = c.ModulusRange()
		} else {
			info.ModulusMin, info.ModulusMax = modulusSpan(pts)
			if err := ex[f]; err != nil {
				info.Excluded = err.Error()
			}
		}
		out = append(out, info)
	}

	return out
}

// Curve exposes the FamilyCurve of a usable family.
func (d *Designer) Curve(f sample.Family) (*curve.FamilyCurve, bool) {
	return d.cov.Curve(f)
}

// Excluded lists families removed for failing monotonicity validation.
func (d *Designer) Excluded() map[sample.Family]error {
	return d.cov.Excluded()
}

// Samples returns the number of samples in the snapshot.
func (d *Designer) Samples() int {
	return d.cov.Store().Len()
}

// recipeFor inverts then re-derives the achieved modulus.
func recipeFor(c *curve.FamilyCurve, target float64) (Recipe, error) {
	conc, err := c.Inverse(target)
	if err != nil {
		return Recipe{}, err
	}
	achieved, err := c.Forward(conc)
	if err != nil {
		return Recipe{}, err
	}

	return Recipe{Family: c.Family(), Concentration: conc, Achieved: achieved, Exact: true}, nil
}

func checkTarget(target float64) error {
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidTarget, target)
	}

	return nil
}

func modulusSpan(pts []sample.Sample) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		lo = math.Min(lo, p.Modulus)
		hi = math.Max(hi, p.Modulus)
	}

	return lo, hi
}
