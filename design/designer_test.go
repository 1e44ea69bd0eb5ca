package design_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/phantomkit/design"
	"github.com/katalvlaran/phantomkit/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDesigner(t *testing.T, rows []sample.Sample, families ...sample.Family) *design.Designer {
	t.Helper()
	d, err := design.FromSamples(rows, []sample.Option{sample.WithFamilies(families...)})
	require.NoError(t, err)

	return d
}

// TestDesign_ScenarioA: a single increasing family inverts linearly.
func TestDesign_ScenarioA(t *testing.T) {
	d := newDesigner(t, []sample.Sample{
		{Family: "X", Concentration: 1, Modulus: 10},
		{Family: "X", Concentration: 2, Modulus: 20},
	}, "X")

	out, err := d.Design(15)
	require.NoError(t, err)
	require.NotNil(t, out.Recipe)
	assert.Nil(t, out.Gap)
	assert.True(t, out.Covered())
	assert.Equal(t, sample.Family("X"), out.Recipe.Family)
	assert.InDelta(t, 1.5, out.Recipe.Concentration, 1e-9)
	assert.InDelta(t, 15, out.Recipe.Achieved, 1e-9)
	assert.True(t, out.Recipe.Exact)
	assert.Len(t, out.Candidates, 1)
}

// TestDesign_ScenarioB: above every family's maximum ⇒ gap with the
// global maximum as lower bound and no upper bound.
func TestDesign_ScenarioB(t *testing.T) {
	d := newDesigner(t, []sample.Sample{
		{Family: "X", Concentration: 1, Modulus: 10},
		{Family: "X", Concentration: 2, Modulus: 20},
		{Family: "Y", Concentration: 0, Modulus: 300},
		{Family: "Y", Concentration: 5, Modulus: 150},
	}, "X", "Y")

	out, err := d.Design(1000)
	require.NoError(t, err, "a gap is not an error")
	assert.Nil(t, out.Recipe)
	require.NotNil(t, out.Gap)
	assert.Equal(t, 1000.0, out.Gap.Target)
	assert.Nil(t, out.Gap.Upper)
	require.NotNil(t, out.Gap.Lower)
	assert.Equal(t, sample.Sample{Family: "Y", Concentration: 0, Modulus: 300}, *out.Gap.Lower)
}

// TestDesign_BelowAll: lower bound absent, upper is the global minimum.
func TestDesign_BelowAll(t *testing.T) {
	d := newDesigner(t, []sample.Sample{
		{Family: "X", Concentration: 1, Modulus: 10},
		{Family: "X", Concentration: 2, Modulus: 20},
		{Family: "Y", Concentration: 0, Modulus: 300},
		{Family: "Y", Concentration: 5, Modulus: 150},
	}, "X", "Y")

	out, err := d.Design(2)
	require.NoError(t, err)
	require.NotNil(t, out.Gap)
	assert.Nil(t, out.Gap.Lower)
	require.NotNil(t, out.Gap.Upper)
	assert.Equal(t, 10.0, out.Gap.Upper.Modulus)
}

// TestDesign_ScenarioC: a non-monotonic family is excluded, logged, and
// never used.
func TestDesign_ScenarioC(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	d, err := design.FromSamples([]sample.Sample{
		{Family: "X", Concentration: 1, Modulus: 10},
		{Family: "X", Concentration: 2, Modulus: 20},
		{Family: "Y", Concentration: 1, Modulus: 30},
		{Family: "Y", Concentration: 2, Modulus: 30},
	}, []sample.Option{sample.WithFamilies("X", "Y")}, design.WithLogger(logger))
	require.NoError(t, err, "non-monotonic family must not abort construction")

	assert.Contains(t, d.Excluded(), sample.Family("Y"))
	assert.Contains(t, buf.String(), "family excluded")
	assert.Contains(t, buf.String(), "family=Y")

	out, err := d.Design(30)
	require.NoError(t, err)
	assert.Nil(t, out.Recipe, "Y has zero coverage")
	require.NotNil(t, out.Gap)
	assert.Equal(t, 20.0, out.Gap.Lower.Modulus)
	assert.Nil(t, out.Gap.Upper, "excluded samples are not bounds")

	out, err = d.Design(12)
	require.NoError(t, err)
	require.NotNil(t, out.Recipe)
	assert.Equal(t, sample.Family("X"), out.Recipe.Family)
}

// TestDesign_ScenarioD: non-positive and non-finite targets fail.
func TestDesign_ScenarioD(t *testing.T) {
	d := newDesigner(t, []sample.Sample{
		{Family: "X", Concentration: 1, Modulus: 10},
		{Family: "X", Concentration: 2, Modulus: 20},
	}, "X")

	for _, target := range []float64{-5, 0, math.NaN(), math.Inf(1)} {
		_, err := d.Design(target)
		assert.ErrorIs(t, err, design.ErrInvalidTarget, "target=%v", target)
		_, err = d.DesignFamily("X", target)
		assert.ErrorIs(t, err, design.ErrInvalidTarget, "target=%v", target)
	}
}

// TestDesign_ScenarioE: two covering families; the nearer midpoint wins
// and both candidates are reported in canonical order.
func TestDesign_ScenarioE(t *testing.T) {
	d := newDesigner(t, []sample.Sample{
		{Family: "Q", Concentration: 0, Modulus: 200},
		{Family: "Q", Concentration: 10, Modulus: 40},
		{Family: "P", Concentration: 0, Modulus: 60},
		{Family: "P", Concentration: 10, Modulus: 10},
	}, "Q", "P")

	out, err := d.Design(50)
	require.NoError(t, err)
	require.NotNil(t, out.Recipe)
	assert.Equal(t, sample.Family("P"), out.Recipe.Family, "midpoint 35 beats 120")
	require.Len(t, out.Candidates, 2)
	assert.Equal(t, sample.Family("Q"), out.Candidates[0].Family)
	assert.Equal(t, sample.Family("P"), out.Candidates[1].Family)
	for _, c := range out.Candidates {
		assert.InDelta(t, 50, c.Achieved, 1e-9)
	}
}

// TestDesign_TieOnMidpoint falls back to canonical order.
func TestDesign_TieOnMidpoint(t *testing.T) {
	d := newDesigner(t, []sample.Sample{
		{Family: "B", Concentration: 0, Modulus: 10},
		{Family: "B", Concentration: 1, Modulus: 30},
		{Family: "A", Concentration: 0, Modulus: 30},
		{Family: "A", Concentration: 3, Modulus: 10},
	}, "A", "B")

	out, err := d.Design(25)
	require.NoError(t, err)
	require.NotNil(t, out.Recipe)
	assert.Equal(t, sample.Family("A"), out.Recipe.Family)
}

// TestDesign_Properties checks the round trip, knot exactness and
// idempotence on a realistic three-family dataset.
func TestDesign_Properties(t *testing.T) {
	rows := realistic()
	d := newDesigner(t, rows, sample.DefaultFamilies()...)

	for _, s := range rows {
		c, ok := d.Curve(s.Family)
		require.True(t, ok)
		m, err := c.Forward(s.Concentration)
		require.NoError(t, err)
		assert.Equal(t, s.Modulus, m, "knot %s", s)

		out, err := d.DesignFamily(s.Family, s.Modulus)
		require.NoError(t, err)
		require.NotNil(t, out.Recipe)
		assert.Equal(t, s.Concentration, out.Recipe.Concentration, "inverse at knot %s", s)
	}

	for target := 20.0; target <= 140; target += 0.5 {
		a, err := d.Design(target)
		require.NoError(t, err)
		b, err := d.Design(target)
		require.NoError(t, err)
		assert.Equal(t, a, b, "idempotent at %v", target)
		if a.Recipe != nil {
			assert.InDelta(t, target, a.Recipe.Achieved, 1e-9)
		} else {
			require.NotNil(t, a.Gap)
		}
	}
}

// TestDesignFamily mirrors the forced-family mode.
func TestDesignFamily(t *testing.T) {
	d := newDesigner(t, realistic(), sample.DefaultFamilies()...)

	out, err := d.DesignFamily(sample.EF10, 40)
	require.NoError(t, err)
	require.NotNil(t, out.Recipe)
	assert.Equal(t, sample.EF10, out.Recipe.Family)

	// EF50 cannot go that soft; the report carries global bounds
	out, err = d.DesignFamily(sample.EF50, 40)
	require.NoError(t, err)
	assert.Nil(t, out.Recipe)
	require.NotNil(t, out.Gap)
	require.NotNil(t, out.Gap.Lower)
	require.NotNil(t, out.Gap.Upper)
	assert.LessOrEqual(t, out.Gap.Lower.Modulus, 40.0)
	assert.GreaterOrEqual(t, out.Gap.Upper.Modulus, 40.0)

	_, err = d.DesignFamily("EF99", 40)
	assert.ErrorIs(t, err, design.ErrUnknownFamily)
}

func TestFamilies(t *testing.T) {
	d := newDesigner(t, append(realistic(),
		sample.Sample{Family: "BAD", Concentration: 0, Modulus: 5},
		sample.Sample{Family: "BAD", Concentration: 1, Modulus: 7},
		sample.Sample{Family: "BAD", Concentration: 2, Modulus: 6},
	), sample.EF50, sample.EF30, sample.EF10, "BAD")

	infos := d.Families()
	require.Len(t, infos, 4)
	assert.Equal(t, sample.EF50, infos[0].Family)
	assert.Equal(t, "decreasing", infos[0].Direction)
	assert.Empty(t, infos[0].Excluded)

	bad := infos[3]
	assert.Equal(t, sample.Family("BAD"), bad.Family)
	assert.NotEmpty(t, bad.Excluded)
	assert.Equal(t, 5.0, bad.ModulusMin)
	assert.Equal(t, 7.0, bad.ModulusMax)
	assert.Equal(t, 3, bad.Samples)
	assert.Equal(t, 16, d.Samples())
}

func TestRecipeInstruction(t *testing.T) {
	r := design.Recipe{Family: sample.EF10, Concentration: 12.344}
	assert.Equal(t, "EF10 (A+B) + 12.34% thinner (by weight of A+B)", r.Instruction())
}

// realistic is a synthetic 13-phantom table shaped like the published one:
// three families, stiffness falling with thinner, internal gaps.
func realistic() []sample.Sample {
	return []sample.Sample{
		{Family: sample.EF50, Label: "EF50_0T", Concentration: 0, Modulus: 135.4},
		{Family: sample.EF50, Label: "EF50_10T", Concentration: 10, Modulus: 124.9},
		{Family: sample.EF50, Label: "EF50_20T", Concentration: 20, Modulus: 111.1},
		{Family: sample.EF50, Label: "EF50_30T", Concentration: 30, Modulus: 103.5},
		{Family: sample.EF30, Label: "EF30_0T", Concentration: 0, Modulus: 97.26},
		{Family: sample.EF30, Label: "EF30_10T", Concentration: 10, Modulus: 86.2},
		{Family: sample.EF30, Label: "EF30_20T", Concentration: 20, Modulus: 79.9},
		{Family: sample.EF30, Label: "EF30_30T", Concentration: 30, Modulus: 73.18},
		{Family: sample.EF10, Label: "EF10_0T", Concentration: 0, Modulus: 54.21},
		{Family: sample.EF10, Label: "EF10_5T", Concentration: 5, Modulus: 47.3},
		{Family: sample.EF10, Label: "EF10_12_5T", Concentration: 12.5, Modulus: 38.8},
		{Family: sample.EF10, Label: "EF10_20T", Concentration: 20, Modulus: 31.6},
		{Family: sample.EF10, Label: "EF10_30T", Concentration: 30, Modulus: 24.7},
	}
}
