package simmatrix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// BuildEdgeSimMatrix implements SPEC_FULL.md §4.3: for a single level with
// n globally-registered entities and a deterministic, replicate-ordered
// sequence of (entity index -> intensity) maps, compute a sparse
// symmetric matrix of pairwise entity similarities.
//
// replicates[r] holds the intensities present in replicate r, keyed by
// global entity index; an entity absent from replicate r simply has no
// key there (SPEC_FULL.md §3, "missing values are represented as
// absent"). entities is the sorted set of entity indices present in at
// least one replicate of this level — the row set the resulting matrix
// is built over.
//
// For each unordered pair (i,j) of entities in entities:
//   - if at least two replicates have both i and j present, the Pearson
//     correlation of the paired values is computed and clamped to
//     MaximumEdge;
//   - otherwise, or if the correlation is undefined (a zero-variance
//     replicate vector makes Pearson correlation 0/0 = NaN), DefaultEdge
//     is stored instead (SPEC_FULL.md §3, EdgeSimMatrix invariant (b):
//     "insufficient replicates or undefined similarity" both take the
//     sentinel — a bare NaN is never written into the matrix).
//
// Both (i,j) and (j,i) are written; the diagonal is left untouched,
// reserved for InjectVertexSim.
func BuildEdgeSimMatrix(n int, entities []int, replicates []map[int]float64) (*EdgeSimMatrix, error) {
	m, err := NewEdgeSimMatrix(n)
	if err != nil {
		return nil, err
	}

	sorted := append([]int(nil), entities...)
	sort.Ints(sorted)

	for a := 0; a < len(sorted); a++ {
		for b := a + 1; b < len(sorted); b++ {
			i, j := sorted[a], sorted[b]
			xs, ys := pairedValues(replicates, i, j)

			v := DefaultEdge
			if len(xs) >= 2 {
				v = stat.Correlation(xs, ys, nil)
				switch {
				case math.IsNaN(v):
					v = DefaultEdge
				case v > MaximumEdge:
					v = MaximumEdge
				}
			}
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// pairedValues collects, in replicate order, the intensities of entities
// i and j at every replicate where both are present.
func pairedValues(replicates []map[int]float64, i, j int) (xs, ys []float64) {
	for _, rep := range replicates {
		xv, xok := rep[i]
		yv, yok := rep[j]
		if xok && yok {
			xs = append(xs, xv)
			ys = append(ys, yv)
		}
	}

	return xs, ys
}
