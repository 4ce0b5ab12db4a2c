package align

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/crosslevel/xalign/simmatrix"
)

// RandomWalk implements SPEC_FULL.md §4.5: a restartable random walk over
// the product graph of the two levels' entities, vectorized as the
// Sylvester-form update Π_{t+1} = (1-r)·A1ᵀ·Π_t·A2 + r·U, which is
// equivalent to power-iterating the full Kronecker-product transition
// matrix without ever materializing it (SPEC_FULL.md §4.5 step 1-3).
//
// For product graphs small enough that the explicit transition matrix
// fits memory (|m1|·|m2| <= WithEigenDenseCutoff), RandomWalkEigen is
// used instead of power iteration, per SPEC_FULL.md §4.5's "an
// eigen-decomposition path is acceptable for small graphs" allowance.
func RandomWalk(ctx context.Context, e1, e2 *simmatrix.EdgeSimMatrix, vertexEntries []simmatrix.VertexEntry, n int, opts ...RandomWalkOption) (*NodeCorrScores, error) {
	cfg := newRandomWalkConfig(opts...)
	if cfg.restart <= 0 || cfg.restart >= 1 {
		return nil, ErrInvalidRestart
	}
	if cfg.steps < 1 {
		return nil, ErrInvalidSteps
	}

	m1 := e1.RowIndices()
	m2 := e2.RowIndices()
	if len(m1) == 0 || len(m2) == 0 {
		return nil, ErrEmptyLevel
	}

	a1 := rowNormalizedAdjacency(e1, m1)
	a2 := rowNormalizedAdjacency(e2, m2)
	u := initialDistribution(vertexEntries, m1, m2)

	var pi *mat.Dense
	var err error
	if len(m1)*len(m2) <= cfg.eigenDenseCutoff {
		pi, err = RandomWalkEigen(a1, a2, u, cfg.restart)
	} else {
		pi = powerIterate(ctx, a1, a2, u, cfg.restart, cfg.steps, cfg.epsilon)
	}
	if err != nil {
		return nil, err
	}

	pos1 := positionIndex(m1)
	pos2 := positionIndex(m2)
	result := NewNodeCorrScores(n)
	for _, k := range intersectSorted(m1, m2) {
		result.Scores[k] = pi.At(pos1[k], pos2[k])
	}

	return result, nil
}

// powerIterate runs the Sylvester-form power iteration until either steps
// is exhausted or the L1 residual between successive iterates drops
// below epsilon (SPEC_FULL.md §4.5 step 3), grounded in the teacher's
// matrix/ops/eigen.go staged convergence-loop shape.
func powerIterate(ctx context.Context, a1, a2, u *mat.Dense, r float64, steps int, epsilon float64) *mat.Dense {
	pi := mat.DenseCopyOf(u)
	var rU mat.Dense
	rU.Scale(r, u)

	for iter := 0; iter < steps; iter++ {
		select {
		case <-ctx.Done():
			return pi
		default:
		}

		var tmp, next mat.Dense
		tmp.Mul(pi, a2)
		next.Mul(a1.T(), &tmp)
		next.Scale(1-r, &next)
		next.Add(&next, &rU)

		if l1Diff(pi, &next) < epsilon {
			return &next
		}
		pi = &next
	}

	return pi
}

// rowNormalizedAdjacency builds the |rows|x|rows| row-stochastic
// transition matrix for one level's edge matrix (as handed to RandomWalk,
// without vertex-similarity injection), restricted to its scored rows. A row with no positive weight (dangling, or entirely
// sentinel/negative) is replaced with a uniform distribution, matching
// the usual PageRank-style dangling-node fix.
func rowNormalizedAdjacency(e *simmatrix.EdgeSimMatrix, rows []int) *mat.Dense {
	dim := len(rows)
	a := mat.NewDense(dim, dim, nil)
	weights := make([]float64, dim)

	for p, i := range rows {
		sum := 0.0
		for q, j := range rows {
			w := 0.0
			if v, ok := e.At(i, j); ok && v > 0 {
				w = v
			}
			weights[q] = w
			sum += w
		}
		if sum == 0 {
			uniform := 1.0 / float64(dim)
			for q := 0; q < dim; q++ {
				a.Set(p, q, uniform)
			}
			continue
		}
		for q := 0; q < dim; q++ {
			a.Set(p, q, weights[q]/sum)
		}
	}

	return a
}

// initialDistribution builds π₀, the |m1|x|m2| matrix weighted by the
// cross-level vertex-similarity entries restricted to this level pair
// (identity similarity on the diagonal in the default case), normalized
// to sum to 1 (SPEC_FULL.md §4.5 step 2).
func initialDistribution(entries []simmatrix.VertexEntry, m1, m2 []int) *mat.Dense {
	pos1 := positionIndex(m1)
	pos2 := positionIndex(m2)
	u := mat.NewDense(len(m1), len(m2), nil)

	sum := 0.0
	for _, entry := range entries {
		p, ok1 := pos1[entry.I]
		q, ok2 := pos2[entry.J]
		if !ok1 || !ok2 || entry.Sim <= 0 {
			continue
		}
		u.Set(p, q, u.At(p, q)+entry.Sim)
		sum += entry.Sim
	}

	if sum == 0 {
		uniform := 1.0 / float64(len(m1)*len(m2))
		for p := 0; p < len(m1); p++ {
			for q := 0; q < len(m2); q++ {
				u.Set(p, q, uniform)
			}
		}
		return u
	}

	u.Scale(1/sum, u)

	return u
}

func positionIndex(rows []int) map[int]int {
	pos := make(map[int]int, len(rows))
	for p, r := range rows {
		pos[r] = p
	}

	return pos
}

// intersectSorted returns the sorted intersection of two already-sorted
// int slices.
func intersectSorted(a, b []int) []int {
	bSet := make(map[int]struct{}, len(b))
	for _, v := range b {
		bSet[v] = struct{}{}
	}

	out := make([]int, 0, len(a))
	for _, v := range a {
		if _, ok := bSet[v]; ok {
			out = append(out, v)
		}
	}

	return out
}

func l1Diff(a, b *mat.Dense) float64 {
	rows, cols := a.Dims()
	sum := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sum += math.Abs(a.At(i, j) - b.At(i, j))
		}
	}

	return sum
}
