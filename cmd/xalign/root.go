package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/crosslevel/xalign"
)

// method names the CLI accepts for --method (SPEC_FULL.md §6).
const (
	methodCosine     = "CosineSimilarity"
	methodRandomWalk = "RandomWalker"
)

// cliFlags holds the resolved flag values of SPEC_FULL.md §6.
type cliFlags struct {
	dataInput     string
	vertexInput   string
	entityDiff    string
	method        string
	walkerRestart float64
	steps         int
	verbose       bool
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	var f cliFlags

	cmd := &cobra.Command{
		Use:           "xalign",
		Short:         "Score per-entity cross-level measurement agreement",
		Long:          "xalign integrates per-entity measurements collected across multiple experiment levels and prints one consistency score per entity (see SPEC_FULL.md).",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.verbose {
				logger = logger.Level(zerolog.DebugLevel)
			} else {
				logger = logger.Level(zerolog.InfoLevel)
			}
			return run(cmd.Context(), cmd.OutOrStdout(), f, logger)
		},
	}

	cmd.Flags().StringVar(&f.dataInput, "dataInput", "", "path to the required data-input CSV (dataLevel,dataReplicate,vertex,intensity)")
	cmd.Flags().StringVar(&f.vertexInput, "vertexInput", "", "path to the optional vertex-similarity CSV (vertexLevel1,vertexLevel2,vertex1,vertex2,similarity)")
	cmd.Flags().StringVar(&f.entityDiff, "entityDiff", "", "optional entity-diff separator for the default identity vertex map")
	cmd.Flags().StringVar(&f.method, "method", methodCosine, "alignment engine: CosineSimilarity or RandomWalker")
	cmd.Flags().Float64Var(&f.walkerRestart, "walkerRestart", 0.05, "random-walk restart probability, must be in (0,1)")
	cmd.Flags().IntVar(&f.steps, "steps", 10000, "bootstrap/permutation sample count, or random-walk step cap")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "raise log level from info to debug")

	if err := cmd.MarkFlagRequired("dataInput"); err != nil {
		panic(err)
	}

	return cmd
}

// exitCodeFor maps a run error to a process exit code (SPEC_FULL.md §7):
// a *xalign.FatalError carries its own Kind-derived code; anything else
// (flag parsing, cobra usage errors) exits 1.
func exitCodeFor(err error) int {
	var fe *xalign.FatalError
	if errors.As(err, &fe) {
		fmt.Fprintln(os.Stderr, fe.Error())
		return fe.Kind.ExitCode()
	}

	fmt.Fprintln(os.Stderr, err)
	return 1
}
