package aggregate

import (
	"math"

	"github.com/crosslevel/xalign/align"
)

// FlatNodeCorrScores is the dense length-N per-entity score vector of
// SPEC_FULL.md §4.6: the average, over every level pair an entity
// appears in, of that pair's defined score. An entity undefined in every
// pair holds NaN.
type FlatNodeCorrScores struct {
	N      int
	Scores []float64
}

// Aggregate implements SPEC_FULL.md §4.6: for each entity k, average
// pairs[i].Scores[k] over every pair i where that entry is not NaN.
// Aggregation is invariant to the order pairs are given in (SPEC_FULL.md
// §8, "Aggregation is invariant to the ordering of level pairs").
func Aggregate(n int, pairs []*align.NodeCorrScores) *FlatNodeCorrScores {
	sums := make([]float64, n)
	counts := make([]int, n)

	for _, pair := range pairs {
		if pair == nil {
			continue
		}
		for k := 0; k < n && k < len(pair.Scores); k++ {
			v := pair.Scores[k]
			if math.IsNaN(v) {
				continue
			}
			sums[k] += v
			counts[k]++
		}
	}

	scores := make([]float64, n)
	for k := 0; k < n; k++ {
		if counts[k] == 0 {
			scores[k] = math.NaN()
			continue
		}
		scores[k] = sums[k] / float64(counts[k])
	}

	return &FlatNodeCorrScores{N: n, Scores: scores}
}
