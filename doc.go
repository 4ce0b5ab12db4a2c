// Package xalign integrates per-entity measurements collected across
// multiple independent experiment "levels" and scores each entity by how
// consistent its behavior is across every pair of levels.
//
// 🚀 What is xalign?
//
//	A small, dependency-light batch computation: read a table of per-entity
//	intensities (tagged by level and replicate) and an optional table of
//	cross-level entity similarities, then print one consistency score per
//	entity.
//
// The pipeline, leaf-first:
//
//	registry/  — dense integer IDs for entity names (bijective, frozen post-ingest)
//	ingest/    — CSV parsing + grouping into per-level replicate tables
//	simmatrix/ — sparse per-level edge-similarity matrices + cross-level vertex map
//	align/     — cosine neighborhood alignment (BCa bootstrap) or random-walk alignment
//	aggregate/ — combine per-pair scores into one score per entity, rank, print
//
// Why this shape?
//
//   - Deterministic — fixed ID allocation order, fixed per-job RNG seeding,
//     fixed replicate ordering; reruns on the same input reproduce the same
//     scores (see SPEC_FULL.md §5).
//   - No partial results — any fatal error during ingestion or alignment
//     aborts the whole run with a non-zero exit code; nothing is printed.
//   - Everything surrounding the alignment engine — CLI parsing, CSV I/O,
//     output formatting — is thin glue around the five packages above.
//
// This package itself holds only the cross-cutting FatalError type used to
// classify and propagate errors out of cmd/xalign (see errors.go).
package xalign
