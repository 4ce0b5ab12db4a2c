package aggregate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslevel/xalign/aggregate"
)

func flatOf(scores []float64) *aggregate.FlatNodeCorrScores {
	return &aggregate.FlatNodeCorrScores{N: len(scores), Scores: scores}
}

func TestRankOrdersAscendingWithNaNLast(t *testing.T) {
	flat := flatOf([]float64{0.9, math.NaN(), 0.1, 0.5})

	ranked := aggregate.Rank(flat)
	require.Len(t, ranked, 4)

	order := make([]int, len(ranked))
	for i, r := range ranked {
		order[i] = r.Index
	}
	assert.Equal(t, []int{2, 3, 0, 1}, order)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 4, ranked[3].Rank)
}

func TestRankTiesBreakOnIndex(t *testing.T) {
	flat := flatOf([]float64{0.5, 0.5, 0.1})
	ranked := aggregate.Rank(flat)

	// Both 0.5 entries tie; index 0 sorts before index 1.
	assert.Equal(t, 0, ranked[1].Index)
	assert.Equal(t, 1, ranked[2].Index)
}

// TestAccuracyWorkedExample reproduces SPEC_FULL.md §8 scenario 6:
// N=10, |T|=5, truth entities occupying ranks {1,2,3,8,10} ->
// 1 - (3+5)/(10+9+8+7+6) = 1 - 8/40 = 0.80.
func TestAccuracyWorkedExample(t *testing.T) {
	n := 10
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = float64(i)
	}
	flat := flatOf(scores)
	ranked := aggregate.Rank(flat)

	// Index i has score i, so ascending rank r = i+1. We want truth
	// entities landing at ranks {1,2,3,8,10} -> indices {0,1,2,7,9}.
	truth := map[int]struct{}{0: {}, 1: {}, 2: {}, 7: {}, 9: {}}

	acc := aggregate.Accuracy(ranked, truth)
	assert.InDelta(t, 0.80, acc, 1e-9)
}

func TestAccuracyPerfectConcentrationIsOne(t *testing.T) {
	n := 6
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = float64(i)
	}
	flat := flatOf(scores)
	ranked := aggregate.Rank(flat)

	truth := map[int]struct{}{0: {}, 1: {}, 2: {}}
	assert.Equal(t, 1.0, aggregate.Accuracy(ranked, truth))
}

func TestAccuracyEmptyTruthIsOne(t *testing.T) {
	flat := flatOf([]float64{0.1, 0.2})
	ranked := aggregate.Rank(flat)
	assert.Equal(t, 1.0, aggregate.Accuracy(ranked, map[int]struct{}{}))
}
