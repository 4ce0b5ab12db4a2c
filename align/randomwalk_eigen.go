package align

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// RandomWalkEigen is the alternate, small-graph path of SPEC_FULL.md
// §4.5: build the explicit |m1|·|m2| x |m1|·|m2| product-graph transition
// matrix and extract its dominant left eigenvector directly via
// gonum/mat.Eigen, rather than power-iterating (grounding: the teacher's
// matrix/ops.Eigen plays the same "decompose a structured matrix
// directly" role for its own spectral-analysis examples; here the
// transition matrix is non-symmetric in general, so gonum's general
// mat.Eigen is used instead of the teacher's Jacobi routine, which only
// handles symmetric input).
//
// a1, a2 are the two levels' row-normalized adjacency matrices (see
// rowNormalizedAdjacency) and u is π₀ (see initialDistribution); the
// returned matrix has the same |m1|x|m2| shape as u.
//
// The restart mass on every row is not spread uniformly over targets —
// it is r·u[target], the same per-target teleport weight powerIterate
// adds back in each step. This is the standard personalized-PageRank
// "Google matrix" construction (a rank-one r·1·uᵀ teleport term folded
// into an otherwise row-stochastic matrix): its unique dominant
// eigenvector is exactly the fixed point of
// Π_{t+1} = (1-r)·A1ᵀ·Π_t·A2 + r·U, i.e. the same quantity powerIterate
// converges to, rather than the V-independent unconditional stationary
// distribution a uniform-teleport matrix would give.
func RandomWalkEigen(a1, a2, u *mat.Dense, r float64) (*mat.Dense, error) {
	d1, _ := a1.Dims()
	d2, _ := a2.Dims()
	v := d1 * d2

	t := mat.NewDense(v, v, nil)
	for i := 0; i < d1; i++ {
		for j := 0; j < d2; j++ {
			row := i*d2 + j
			for ip := 0; ip < d1; ip++ {
				a1ip := a1.At(i, ip)
				for jp := 0; jp < d2; jp++ {
					col := ip*d2 + jp
					t.Set(row, col, (1-r)*a1ip*a2.At(j, jp)+r*u.At(ip, jp))
				}
			}
		}
	}

	var tTranspose mat.Dense
	tTranspose.CloneFrom(t.T())

	var eig mat.Eigen
	if ok := eig.Factorize(&tTranspose, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}

	values := eig.Values(nil)
	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	// The dominant eigenvalue of a row-stochastic matrix is 1
	// (Perron-Frobenius); pick the eigenvector whose eigenvalue is
	// closest to 1+0i.
	best := 0
	bestDist := math.Inf(1)
	for i, lam := range values {
		if dist := cmplx.Abs(lam - complex(1, 0)); dist < bestDist {
			bestDist = dist
			best = i
		}
	}

	weights := make([]float64, v)
	sum := 0.0
	for i := 0; i < v; i++ {
		w := math.Abs(real(vectors.At(i, best)))
		weights[i] = w
		sum += w
	}
	if sum == 0 {
		return nil, ErrEigenFailed
	}

	pi := mat.NewDense(d1, d2, nil)
	for i := 0; i < d1; i++ {
		for j := 0; j < d2; j++ {
			pi.Set(i, j, weights[i*d2+j]/sum)
		}
	}

	return pi, nil
}
