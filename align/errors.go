package align

import "errors"

// Sentinel errors for the align package. These cover the configuration
// errors of SPEC_FULL.md §7 kind 3; per-vertex numeric degeneracy (kind 5)
// is recovered locally and never surfaces as an error.
var (
	// ErrInvalidRestart is returned when a random-walk restart
	// probability is outside the open interval (0,1).
	ErrInvalidRestart = errors.New("align: walker restart probability must be in (0,1)")

	// ErrInvalidSteps is returned when the random-walk step count or the
	// bootstrap/permutation sample count is below 1.
	ErrInvalidSteps = errors.New("align: step/sample count must be >= 1")

	// ErrEmptyLevel is returned when one of the two edge matrices handed
	// to RandomWalk has no rows at all. Cosine does not return it: with no
	// shared rows it returns an all-NaN NodeCorrScores.
	ErrEmptyLevel = errors.New("align: level has no scored entities")

	// ErrEigenFailed is returned when RandomWalkEigen's dense
	// eigendecomposition of the product-graph transition matrix fails to
	// factorize.
	ErrEigenFailed = errors.New("align: product-graph eigendecomposition failed")
)
