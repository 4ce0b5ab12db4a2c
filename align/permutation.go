package align

import (
	"math"
	"math/rand/v2"
)

// permutationStat implements SPEC_FULL.md §4.4's permutation alternative:
// observe o = cosine(xs, ys), then for p trials shuffle ys' positions
// (keeping its value multiset) and recompute cosine, counting trials
// whose absolute value is at least |o|.
func permutationStat(xs, ys []float64, p int, rng *rand.Rand) Statistic {
	observed, degenerate := cosineDense(xs, ys)
	if degenerate {
		observed = 0
	}
	absObserved := math.Abs(observed)

	n := len(ys)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	shuffled := make([]float64, n)

	successes := 0
	for t := 0; t < p; t++ {
		rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
		for i, j := range idx {
			shuffled[i] = ys[j]
		}

		c, deg := cosineDense(xs, shuffled)
		if deg {
			c = 0
		}
		if math.Abs(c) >= absObserved {
			successes++
		}
	}

	return Statistic{Kind: StatPValue, P: float64(successes) / float64(p)}
}
