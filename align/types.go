package align

import "math"

// NaNPolicy controls how a zero-norm (degenerate) bootstrap resample is
// folded into the BCa statistic (SPEC_FULL.md §9, resolved Open
// Question). NaNZero matches the source's observed behavior; NaNPropagate
// is offered for callers who want degenerate resamples excluded instead
// of zeroed. The permutation path does not consult it: a degenerate
// permutation trial always counts as cosine 0.
type NaNPolicy int

const (
	// NaNZero substitutes 0 for a zero-norm resample cosine. Default.
	NaNZero NaNPolicy = iota
	// NaNPropagate leaves a zero-norm resample out of the statistic
	// entirely instead of folding it in as 0.
	NaNPropagate
)

// ConfidenceMethod selects which confidence statistic Cosine attaches to
// each per-vertex score (SPEC_FULL.md §4.4).
type ConfidenceMethod int

const (
	// ConfidenceBootstrap computes a BCa bootstrap interval (default).
	ConfidenceBootstrap ConfidenceMethod = iota
	// ConfidencePermutation computes a permutation p-value instead.
	ConfidencePermutation
)

// StatKind tags which variant a Statistic holds.
type StatKind int

const (
	// StatPValue marks a Statistic populated via the permutation path.
	StatPValue StatKind = iota
	// StatBootstrap marks a Statistic populated via the BCa path.
	StatBootstrap
)

// Statistic is the tagged confidence-statistic variant of SPEC_FULL.md
// §3: either a permutation p-value or a BCa bootstrap interval. Only the
// fields relevant to Kind are meaningful.
type Statistic struct {
	Kind StatKind

	// P is the permutation p-value; valid when Kind == StatPValue.
	P float64

	// Point, Lower, Upper are the BCa point estimate and 0.95-level
	// interval bounds; Level records the confidence level used
	// (SPEC_FULL.md §4.4, "0.95 confidence level"). Valid when
	// Kind == StatBootstrap.
	Point, Lower, Upper, Level float64
}

// NodeCorrScores is the dense length-N per-entity score vector of
// SPEC_FULL.md §4.4 step 6: Scores[k] is NaN for an entity not present as
// a shared row between the two levels, and Stats[k] is nil in that case.
type NodeCorrScores struct {
	N      int
	Scores []float64
	Stats  []*Statistic
}

// NewNodeCorrScores returns an all-NaN, all-nil-Stats vector of length n.
func NewNodeCorrScores(n int) *NodeCorrScores {
	scores := make([]float64, n)
	for i := range scores {
		scores[i] = math.NaN()
	}

	return &NodeCorrScores{
		N:      n,
		Scores: scores,
		Stats:  make([]*Statistic, n),
	}
}
