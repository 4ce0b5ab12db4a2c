// Package registry assigns stable, dense integer indices to entity names.
//
// An entity (protein, gene, or any other measured unit) is identified by an
// opaque string name throughout ingestion. registry.Registry interns each
// distinct name exactly once into an index i in [0, N), and offers the
// reverse lookup index -> name for the whole lifetime of a run.
//
// Guarantees:
//
//   - Bijective: Intern(name) always returns the same index for the same
//     name, and Lookup(i) is total over every index ever allocated.
//   - Deterministic allocation order: indices are handed out in first-seen
//     order, so re-running ingestion on the same input in the same order
//     reproduces the same mapping.
//   - Freeze-after-ingest: once Freeze is called, Intern on an unseen name
//     returns ErrFrozen instead of silently growing the registry. All other
//     packages in this module treat the registry as read-only after
//     ingestion (see SPEC_FULL.md §3, Lifecycles).
//   - Thread-safe: guarded by a single sync.RWMutex, matching the teacher's
//     locking granularity for a structure this small (contrast with
//     core.Graph's split muVert/muEdgeAdj, which exists there to reduce
//     contention on a much hotter vertex+edge structure).
package registry
