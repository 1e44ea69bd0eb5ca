package sample

import "fmt"

// Family identifies a base-material group within which thinner
// concentration varies.
type Family string

// Default material families, in canonical order.
const (
	EF50 Family = "EF50"
	EF30 Family = "EF30"
	EF10 Family = "EF10"
)

// DefaultFamilies returns the canonical family order used when no
// WithFamilies option is supplied.
func DefaultFamilies() []Family {
	return []Family{EF50, EF30, EF10}
}

// Sample is one experimentally measured phantom.
//
// Fields:
//   - Family       : material family the phantom was cast from.
//   - Label        : optional phantom label, e.g. "EF10_12.5T".
//   - Concentration: thinner concentration in % (independent variable).
//   - Modulus      : measured elastic modulus in kPa.
type Sample struct {
	Family        Family  `json:"family"`
	Label         string  `json:"label,omitempty"`
	Concentration float64 `json:"thinner_concentration"`
	Modulus       float64 `json:"elastic_modulus_kpa"`
}

// String renders the sample as "EF10 @ 12.50% → 48.20 kPa".
func (s Sample) String() string {
	return fmt.Sprintf("%s @ %.2f%% → %.2f kPa", s.Family, s.Concentration, s.Modulus)
}
