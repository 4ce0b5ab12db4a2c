package ingest

import "errors"

// Sentinel errors for the ingest package. Every one of these is wrapped
// into a xalign.FatalError by the functions that return it; callers
// outside this package should match with errors.Is against these
// sentinels, not against the wrapping FatalError.
var (
	// ErrBadHeader is returned when a CSV file's header row does not match
	// the expected column names in the expected order (SPEC_FULL.md §6).
	ErrBadHeader = errors.New("ingest: unexpected CSV header")

	// ErrBadRow is returned when a data row has the wrong number of
	// fields or an unparsable numeric column.
	ErrBadRow = errors.New("ingest: malformed row")

	// ErrDuplicateTriple is returned when the same (level, replicate,
	// entity) triple appears more than once in the data input
	// (SPEC_FULL.md §4.2).
	ErrDuplicateTriple = errors.New("ingest: duplicate (level, replicate, entity) row")

	// ErrUnknownLevel is returned when a vertex-similarity row names a
	// level absent from the data input (SPEC_FULL.md §7, kind 2).
	ErrUnknownLevel = errors.New("ingest: vertex row references unknown level")

	// ErrUnknownEntity is returned when a vertex-similarity row names an
	// entity absent from the data input for the level it names.
	ErrUnknownEntity = errors.New("ingest: vertex row references unknown entity")
)
