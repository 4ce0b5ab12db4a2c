// Package ingest reads the two CSV inputs described by SPEC_FULL.md §6 and
// turns them into the dense, per-level structures the alignment engine
// operates on.
//
// Data input (required) has columns dataLevel, dataReplicate, vertex,
// intensity. ReadDataRows parses it into []DataRow; BuildLevels groups rows
// by level and then by replicate into a registry-indexed StandardLevel per
// level, in deterministic (sorted) replicate order.
//
// Vertex input (optional) has columns vertexLevel1, vertexLevel2, vertex1,
// vertex2, similarity. ReadVertexRows parses it into []VertexRow;
// BuildVertexSimMap turns it into a simmatrix.VertexSimMap. When the file is
// absent, DefaultVertexSimMap builds the identity map described in
// SPEC_FULL.md §3 (optionally with an entity-diff separator).
//
// Every function here validates eagerly and returns a xalign.FatalError of
// the appropriate kind (KindInputFormat or KindReference) on the first
// malformed row, matching the batch, no-partial-results philosophy of
// SPEC_FULL.md §7 — this package never aborts halfway and returns partial
// state.
package ingest
