// Command xalign is the batch CLI glue of SPEC_FULL.md §6: it parses the
// flag surface, drives ingestion, builds the per-level edge-similarity
// matrices and the cross-level vertex-similarity map, runs the selected
// alignment engine over every level pair, aggregates, and prints the
// score table to standard output.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := newRootCmd(logger).Execute(); err != nil {
		os.Exit(exitCodeFor(err))
	}
}
