package align_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslevel/xalign/align"
	"github.com/crosslevel/xalign/simmatrix"
)

// buildLevel constructs an EdgeSimMatrix over the given entities and
// replicate maps (used for SPEC_FULL.md §8 scenarios 1/2 and the cases
// below).
func buildLevel(t *testing.T, n int, entities []int, replicates []map[int]float64) *simmatrix.EdgeSimMatrix {
	t.Helper()
	m, err := simmatrix.BuildEdgeSimMatrix(n, entities, replicates)
	require.NoError(t, err)
	return m
}

func identityEntries(n int) []simmatrix.VertexEntry {
	out := make([]simmatrix.VertexEntry, n)
	for i := 0; i < n; i++ {
		out[i] = simmatrix.VertexEntry{I: i, J: i, Sim: 1.0}
	}
	return out
}

func TestCosinePerfectlyCorrelated(t *testing.T) {
	reps := []map[int]float64{
		{0: 1.0, 1: 2.0},
		{0: 2.0, 1: 4.0},
	}
	e1 := buildLevel(t, 2, []int{0, 1}, reps)
	e2 := buildLevel(t, 2, []int{0, 1}, reps)

	result, err := align.Cosine(context.Background(), "A", "B", 2, e1, e2, identityEntries(2), align.WithSamples(10))
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Scores[0], 1e-9)
	assert.InDelta(t, 1.0, result.Scores[1], 1e-9)
}

func TestCosineAntiCorrelated(t *testing.T) {
	repsA := []map[int]float64{
		{0: 1.0, 1: 2.0},
		{0: 2.0, 1: 4.0},
	}
	repsB := []map[int]float64{
		{0: 2.0, 1: 1.0},
		{0: 4.0, 1: 2.0},
	}
	e1 := buildLevel(t, 2, []int{0, 1}, repsA)
	e2 := buildLevel(t, 2, []int{0, 1}, repsB)

	result, err := align.Cosine(context.Background(), "A", "B", 2, e1, e2, identityEntries(2), align.WithSamples(10))
	require.NoError(t, err)

	assert.InDelta(t, -1.0, result.Scores[0], 1e-9)
	assert.InDelta(t, -1.0, result.Scores[1], 1e-9)
}

func TestCosineNoOverlapYieldsNaN(t *testing.T) {
	// Level A only has entity 0; level B only has entity 1. A single
	// entity has no pairs, so neither matrix has any rows.
	e1 := buildLevel(t, 2, []int{0}, []map[int]float64{{0: 1.0}, {0: 2.0}})
	e2 := buildLevel(t, 2, []int{1}, []map[int]float64{{1: 1.0}, {1: 2.0}})

	result, err := align.Cosine(context.Background(), "A", "B", 2, e1, e2, nil, align.WithSamples(10))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(result.Scores[0]))
	assert.True(t, math.IsNaN(result.Scores[1]))
}

func TestCosineRejectsZeroSamples(t *testing.T) {
	e1 := buildLevel(t, 1, nil, nil)
	e2 := buildLevel(t, 1, nil, nil)

	_, err := align.Cosine(context.Background(), "A", "B", 1, e1, e2, nil, align.WithSamples(0))
	assert.ErrorIs(t, err, align.ErrInvalidSteps)
}

func TestCosineBootstrapBoundsBracketPoint(t *testing.T) {
	reps := []map[int]float64{
		{0: 1.0, 1: 2.0, 2: 1.5},
		{0: 2.0, 1: 3.0, 2: 0.5},
		{0: 0.5, 1: 1.0, 2: 2.0},
	}
	e1 := buildLevel(t, 3, []int{0, 1, 2}, reps)
	e2 := buildLevel(t, 3, []int{0, 1, 2}, reps)

	result, err := align.Cosine(context.Background(), "A", "B", 3, e1, e2, identityEntries(3), align.WithSamples(200))
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		st := result.Stats[k]
		require.NotNil(t, st)
		assert.Equal(t, align.StatBootstrap, st.Kind)
		assert.LessOrEqual(t, st.Lower, st.Point)
		assert.LessOrEqual(t, st.Point, st.Upper)
	}
}

func TestCosinePermutationPInRange(t *testing.T) {
	reps := []map[int]float64{
		{0: 1.0, 1: 2.0, 2: 1.5},
		{0: 2.0, 1: 3.0, 2: 0.5},
		{0: 0.5, 1: 1.0, 2: 2.0},
	}
	e1 := buildLevel(t, 3, []int{0, 1, 2}, reps)
	e2 := buildLevel(t, 3, []int{0, 1, 2}, reps)

	result, err := align.Cosine(context.Background(), "A", "B", 3, e1, e2, identityEntries(3),
		align.WithSamples(50), align.WithConfidenceMethod(align.ConfidencePermutation))
	require.NoError(t, err)

	for k := 0; k < 3; k++ {
		st := result.Stats[k]
		require.NotNil(t, st)
		assert.Equal(t, align.StatPValue, st.Kind)
		assert.GreaterOrEqual(t, st.P, 0.0)
		assert.LessOrEqual(t, st.P, 1.0)
	}
}

func TestCosineIsDeterministicAcrossRuns(t *testing.T) {
	reps := []map[int]float64{
		{0: 1.0, 1: 2.0, 2: 1.5},
		{0: 2.0, 1: 3.0, 2: 0.5},
		{0: 0.5, 1: 1.0, 2: 2.0},
	}
	e1 := buildLevel(t, 3, []int{0, 1, 2}, reps)
	e2 := buildLevel(t, 3, []int{0, 1, 2}, reps)

	run := func() *align.NodeCorrScores {
		result, err := align.Cosine(context.Background(), "A", "B", 3, e1, e2, identityEntries(3),
			align.WithSamples(100), align.WithSeed(42))
		require.NoError(t, err)
		return result
	}

	first := run()
	second := run()
	assert.Equal(t, first.Scores, second.Scores)
	for k := range first.Stats {
		assert.Equal(t, first.Stats[k], second.Stats[k])
	}
}
