package sample_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/phantomkit/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []sample.Sample {
	return []sample.Sample{
		{Family: sample.EF10, Concentration: 20, Modulus: 30},
		{Family: sample.EF10, Concentration: 0, Modulus: 60},
		{Family: sample.EF10, Concentration: 10, Modulus: 45},
		{Family: sample.EF50, Concentration: 0, Modulus: 200},
		{Family: sample.EF50, Concentration: 15, Modulus: 120},
	}
}

// TestLoad_SortsAndGroups verifies per-family grouping and concentration order.
func TestLoad_SortsAndGroups(t *testing.T) {
	store, err := sample.Load(fixture())
	require.NoError(t, err)

	assert.Equal(t, []sample.Family{sample.EF50, sample.EF10}, store.AllFamilies(), "present families in canonical order")
	assert.Equal(t, []sample.Family{sample.EF50, sample.EF30, sample.EF10}, store.Families())
	assert.Equal(t, 5, store.Len())

	pts := store.SamplesFor(sample.EF10)
	require.Len(t, pts, 3)
	assert.Equal(t, []float64{0, 10, 20}, []float64{pts[0].Concentration, pts[1].Concentration, pts[2].Concentration})
	assert.Nil(t, store.SamplesFor(sample.EF30), "absent family has no samples")
}

// TestLoad_SamplesForIsCopy ensures callers cannot mutate the store.
func TestLoad_SamplesForIsCopy(t *testing.T) {
	store, err := sample.Load(fixture())
	require.NoError(t, err)

	pts := store.SamplesFor(sample.EF10)
	pts[0].Modulus = -1
	assert.Equal(t, 60.0, store.SamplesFor(sample.EF10)[0].Modulus)
}

// TestLoad_All orders by canonical family then concentration.
func TestLoad_All(t *testing.T) {
	store, err := sample.Load(fixture())
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 5)
	assert.Equal(t, sample.EF50, all[0].Family)
	assert.Equal(t, 0.0, all[0].Concentration)
	assert.Equal(t, sample.EF10, all[4].Family)
	assert.Equal(t, 20.0, all[4].Concentration)
}

// TestLoad_IntegrityErrors covers every rejection path.
func TestLoad_IntegrityErrors(t *testing.T) {
	cases := []struct {
		name string
		rows []sample.Sample
	}{
		{"empty", nil},
		{"unknown family", []sample.Sample{{Family: "EF99", Concentration: 1, Modulus: 1}, {Family: "EF99", Concentration: 2, Modulus: 2}}},
		{"negative concentration", []sample.Sample{{Family: sample.EF10, Concentration: -1, Modulus: 1}, {Family: sample.EF10, Concentration: 2, Modulus: 2}}},
		{"NaN concentration", []sample.Sample{{Family: sample.EF10, Concentration: math.NaN(), Modulus: 1}, {Family: sample.EF10, Concentration: 2, Modulus: 2}}},
		{"zero modulus", []sample.Sample{{Family: sample.EF10, Concentration: 1, Modulus: 0}, {Family: sample.EF10, Concentration: 2, Modulus: 2}}},
		{"Inf modulus", []sample.Sample{{Family: sample.EF10, Concentration: 1, Modulus: math.Inf(1)}, {Family: sample.EF10, Concentration: 2, Modulus: 2}}},
		{"duplicate concentration", []sample.Sample{{Family: sample.EF10, Concentration: 1, Modulus: 1}, {Family: sample.EF10, Concentration: 1, Modulus: 2}}},
		{"single sample family", []sample.Sample{{Family: sample.EF10, Concentration: 1, Modulus: 1}, {Family: sample.EF30, Concentration: 1, Modulus: 2}, {Family: sample.EF30, Concentration: 2, Modulus: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sample.Load(tc.rows)
			assert.ErrorIs(t, err, sample.ErrDataIntegrity)
		})
	}
}

// TestLoad_ZeroConcentrationAllowed: 0 % thinner is a valid recipe.
func TestLoad_ZeroConcentrationAllowed(t *testing.T) {
	_, err := sample.Load([]sample.Sample{
		{Family: sample.EF30, Concentration: 0, Modulus: 90},
		{Family: sample.EF30, Concentration: 5, Modulus: 70},
	})
	assert.NoError(t, err)
}

// TestWithFamilies sets a custom canonical order.
func TestWithFamilies(t *testing.T) {
	store, err := sample.Load([]sample.Sample{
		{Family: "Y", Concentration: 1, Modulus: 5},
		{Family: "Y", Concentration: 2, Modulus: 6},
		{Family: "X", Concentration: 1, Modulus: 10},
		{Family: "X", Concentration: 2, Modulus: 20},
	}, sample.WithFamilies("X", "Y"))
	require.NoError(t, err)

	assert.Equal(t, []sample.Family{"X", "Y"}, store.AllFamilies())
	assert.Equal(t, 0, store.Rank("X"))
	assert.Equal(t, 1, store.Rank("Y"))
	assert.Equal(t, -1, store.Rank(sample.EF10))
}

// TestWithFamilies_Panics guards programmer errors.
func TestWithFamilies_Panics(t *testing.T) {
	assert.Panics(t, func() { sample.WithFamilies() })
	assert.Panics(t, func() { sample.WithFamilies("X", "X") })
}
