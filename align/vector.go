package align

import "gonum.org/v1/gonum/floats"

// densify expands a sparse neighborhood row to a dense length-n slice,
// absent entries becoming 0 (SPEC_FULL.md §4.4 step 4, "treating absent
// entries as 0").
func densify(row map[int]float64, n int) []float64 {
	out := make([]float64, n)
	for i, v := range row {
		if i >= 0 && i < n {
			out[i] = v
		}
	}

	return out
}

// cosineDense computes cosine(xs, ys) via gonum/floats' Dot/Norm kernels.
// Returns degenerate=true (and score 0) when either vector has zero L2
// norm — the "numeric-degeneracy warning" case of SPEC_FULL.md §7 kind 5,
// logged by the caller and recovered here as score 0.
func cosineDense(xs, ys []float64) (score float64, degenerate bool) {
	nx := floats.Norm(xs, 2)
	ny := floats.Norm(ys, 2)
	if nx == 0 || ny == 0 {
		return 0, true
	}

	return floats.Dot(xs, ys) / (nx * ny), false
}
