package sample

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLabel splits a phantom label into family and thinner concentration.
// Both "EF10_12.5T" and "EF10_12_5T" yield (EF10, 12.5).
func ParseLabel(label string) (Family, float64, error) {
	label = strings.TrimSpace(label)
	fam, rest, ok := strings.Cut(label, "_")
	if !ok || fam == "" || rest == "" {
		return "", 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	rest = strings.TrimSuffix(rest, "T")
	rest = strings.ReplaceAll(rest, "_", ".")
	c, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return Family(strings.TrimSpace(fam)), c, nil
}
