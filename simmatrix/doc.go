// Package simmatrix implements the sparse similarity structures of
// SPEC_FULL.md §3-§4.3: per-level EdgeSimMatrix, cross-level VertexSimMap,
// and the diagonal-injection operation that folds one into the other.
//
// Sentinel discipline (SPEC_FULL.md §9): within a sparse matrix, a missing
// (i,j) entry always means "unknown / not computed", never zero. The one
// place a zero-adjacent sentinel is stored explicitly is DefaultEdge, the
// design-default -5 written for a pair that was attempted but could not be
// scored (too few shared replicate positions) — it is deliberately outside
// [-1,1] so it can never be confused with a real similarity.
//
// Grounded on the teacher's matrix/impl_adjacency.go sparse-construction
// discipline (deterministic key order, explicit sentinel-vs-absence split)
// and matrix/errors.go's sentinel-error-set convention.
package simmatrix
