package design

import (
	"fmt"

	"github.com/katalvlaran/phantomkit/coverage"
	"github.com/katalvlaran/phantomkit/sample"
)

// GapReport is the non-extrapolation answer: nearest validated samples
// bracketing the target.
type GapReport = coverage.GapReport

// Recipe is a concrete fabrication answer.
//
// Achieved is Forward(Concentration): it may differ from the target by
// interpolation round-off only. Exact is true when the target lies in the
// family's validated range (always, for recipes returned by this package).
type Recipe struct {
	Family        sample.Family `json:"family"`
	Concentration float64       `json:"thinner_concentration"`
	Achieved      float64       `json:"achieved_modulus"`
	Exact         bool          `json:"exact"`
}

// Instruction renders the fabrication line, e.g.
// "EF10 (A+B) + 12.34% thinner (by weight of A+B)".
func (r Recipe) Instruction() string {
	return fmt.Sprintf("%s (A+B) + %.2f%% thinner (by weight of A+B)", r.Family, r.Concentration)
}

// Outcome is the answer to a design query: either Recipe (with every
// covering family's recipe in Candidates, canonical order) or Gap.
type Outcome struct {
	Target     float64    `json:"target_modulus"`
	Recipe     *Recipe    `json:"recipe,omitempty"`
	Candidates []Recipe   `json:"candidates,omitempty"`
	Gap        *GapReport `json:"gap,omitempty"`
}

// Covered reports whether the outcome carries a recipe.
func (o Outcome) Covered() bool { return o.Recipe != nil }

// FamilyInfo summarises one family for listings.
type FamilyInfo struct {
	Family           sample.Family `json:"family"`
	Samples          int           `json:"samples"`
	Direction        string        `json:"direction,omitempty"`
	ModulusMin       float64       `json:"modulus_min_kpa"`
	ModulusMax       float64       `json:"modulus_max_kpa"`
	ConcentrationMin float64       `json:"concentration_min"`
	ConcentrationMax float64       `json:"concentration_max"`
	Excluded         string        `json:"excluded,omitempty"`
}
