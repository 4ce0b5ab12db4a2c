// Package aggregate implements SPEC_FULL.md §4.6-§4.7 and the output
// contract of §6: combining per-level-pair NodeCorrScores into one
// per-entity score, the evaluation-time ranking/accuracy metric, and the
// tab-separated score table printed to standard output.
//
// Aggregate averages the defined (non-NaN) scores across every level
// pair an entity appears in; Rank and Accuracy are evaluation-time-only
// helpers over a ground-truth set of "changed" entities, not used by the
// normal scoring pipeline. WriteTable is the sole function that writes to
// standard output — everything else in this module writes only to
// standard error via the logging layer.
package aggregate
