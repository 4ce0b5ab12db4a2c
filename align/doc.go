// Package align implements the two cross-level alignment engines of
// SPEC_FULL.md §4.4-§4.5: for a pair of levels, produce one NodeCorrScores
// vector scoring how consistently each shared entity's neighborhood of
// edge-similarities agrees between the two levels.
//
// Cosine (the default, file group cosine_*.go / bootstrap.go /
// permutation.go) folds the cross-level VertexSimMap into each level's
// EdgeSimMatrix diagonal, then compares the resulting neighborhood rows
// of every shared entity with cosine similarity, alongside a BCa
// bootstrap or permutation-p confidence statistic.
//
// RandomWalk (file group randomwalk_*.go) is the alternative: a
// restartable random walk over the product graph of the two levels,
// whose stationary mass on the diagonal (i,i) gives the per-entity score.
//
// Per-vertex jobs are independent pure functions of their inputs (the
// injected edge rows, plus a per-job seed) and run on a bounded,
// cancellable worker pool (golang.org/x/sync/errgroup), matching
// SPEC_FULL.md §5's concurrency model: the aggregator only runs after
// every job for a level pair has returned.
package align
