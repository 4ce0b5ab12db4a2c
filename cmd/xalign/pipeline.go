package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/crosslevel/xalign"
	"github.com/crosslevel/xalign/aggregate"
	"github.com/crosslevel/xalign/align"
	"github.com/crosslevel/xalign/ingest"
	"github.com/crosslevel/xalign/registry"
	"github.com/crosslevel/xalign/simmatrix"
)

// run wires the pipeline of SPEC_FULL.md §2: ingest -> simmatrix -> align
// -> aggregate -> output. It validates configuration first (SPEC_FULL.md
// §7, kind 3), then propagates any fatal error from the stages below
// unchanged, so cmd's exitCodeFor sees the original Kind.
func run(ctx context.Context, out io.Writer, f cliFlags, logger zerolog.Logger) error {
	if err := validateFlags(f); err != nil {
		return err
	}

	reg := registry.New()

	dataRows, err := readRows(f.dataInput, ingest.ReadDataRows)
	if err != nil {
		return err
	}
	logger.Info().Int("rows", len(dataRows)).Str("file", f.dataInput).Msg("data input read")

	levels, err := ingest.BuildLevels(dataRows, reg)
	if err != nil {
		return err
	}
	reg.Freeze()
	levelNames := ingest.LevelNames(levels)
	logger.Info().Int("levels", len(levelNames)).Int("entities", reg.Len()).Msg("levels built")

	vsm, err := buildVertexSimMap(f, reg, levels)
	if err != nil {
		return err
	}

	edges, err := buildEdgeMatrices(reg.Len(), levels, logger)
	if err != nil {
		return err
	}

	pairScores, err := alignAllPairs(ctx, f, levelNames, edges, vsm, reg.Len(), logger)
	if err != nil {
		return err
	}

	flat := aggregate.Aggregate(reg.Len(), pairScores)

	if err := aggregate.WriteTable(out, reg, flat); err != nil {
		return xalign.NewFatalError(xalign.KindResource, fmt.Errorf("writing output: %w", err))
	}

	return nil
}

// validateFlags implements SPEC_FULL.md §7 kind 3, Configuration error:
// unknown method name or an out-of-range flag.
func validateFlags(f cliFlags) error {
	if f.method != methodCosine && f.method != methodRandomWalk {
		return xalign.NewFatalError(xalign.KindConfiguration,
			fmt.Errorf("unknown --method %q: want %q or %q", f.method, methodCosine, methodRandomWalk))
	}
	if f.walkerRestart <= 0 || f.walkerRestart >= 1 {
		return xalign.NewFatalError(xalign.KindConfiguration,
			fmt.Errorf("--walkerRestart %v must be in (0,1)", f.walkerRestart))
	}
	if f.steps < 1 {
		return xalign.NewFatalError(xalign.KindConfiguration,
			fmt.Errorf("--steps %d must be >= 1", f.steps))
	}

	return nil
}

// readRows opens path and delegates to parse, mapping an open failure to
// a KindResource fatal error (SPEC_FULL.md §7 kind 4).
func readRows[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, xalign.NewFatalError(xalign.KindResource, fmt.Errorf("opening %s: %w", path, err))
	}
	defer file.Close()

	return parse(file)
}

// buildVertexSimMap implements the explicit-vs-default branch of
// SPEC_FULL.md §3's VertexSimMap: a --vertexInput file takes precedence;
// otherwise the identity map (with optional --entityDiff suffix rule) is
// built from the levels just ingested.
func buildVertexSimMap(f cliFlags, reg *registry.Registry, levels map[string]*ingest.StandardLevel) (*simmatrix.VertexSimMap, error) {
	if f.vertexInput == "" {
		return ingest.DefaultVertexSimMap(reg, levels, f.entityDiff), nil
	}

	vertexRows, err := readRows(f.vertexInput, ingest.ReadVertexRows)
	if err != nil {
		return nil, err
	}

	return ingest.BuildVertexSimMap(vertexRows, reg, levels)
}

// buildEdgeMatrices implements SPEC_FULL.md §4.3 for every ingested
// level.
func buildEdgeMatrices(n int, levels map[string]*ingest.StandardLevel, logger zerolog.Logger) (map[string]*simmatrix.EdgeSimMatrix, error) {
	out := make(map[string]*simmatrix.EdgeSimMatrix, len(levels))
	for name, lvl := range levels {
		m, err := simmatrix.BuildEdgeSimMatrix(n, lvl.Entities, lvl.Replicates)
		if err != nil {
			return nil, xalign.NewFatalError(xalign.KindResource, fmt.Errorf("building edge matrix for level %q: %w", name, err))
		}
		out[name] = m
		logger.Debug().Str("level", name).Int("entities", len(lvl.Entities)).Msg("edge-similarity matrix built")
	}

	return out, nil
}

// alignAllPairs runs the selected engine over every unordered pair of
// levels (SPEC_FULL.md §4.4/§4.5), in the deterministic sorted-name order
// LevelNames returns, so output does not depend on map iteration order
// (SPEC_FULL.md §5, Ordering guarantees).
func alignAllPairs(ctx context.Context, f cliFlags, levelNames []string, edges map[string]*simmatrix.EdgeSimMatrix, vsm *simmatrix.VertexSimMap, n int, logger zerolog.Logger) ([]*align.NodeCorrScores, error) {
	var pairs []*align.NodeCorrScores

	for a := 0; a < len(levelNames); a++ {
		for b := a + 1; b < len(levelNames); b++ {
			l1, l2 := levelNames[a], levelNames[b]
			entries := vsm.For(l1, l2)

			var scores *align.NodeCorrScores
			var err error
			switch f.method {
			case methodRandomWalk:
				scores, err = align.RandomWalk(ctx, edges[l1], edges[l2], entries, n,
					align.WithRestart(f.walkerRestart), align.WithSteps(f.steps))
			default:
				scores, err = align.Cosine(ctx, l1, l2, n, edges[l1], edges[l2], entries,
					align.WithSamples(f.steps), align.WithLogger(logger))
			}
			if err != nil {
				return nil, xalign.NewFatalError(alignErrorKind(err), fmt.Errorf("aligning %q/%q: %w", l1, l2, err))
			}

			logger.Debug().Str("levelA", l1).Str("levelB", l2).Msg("level pair aligned")
			pairs = append(pairs, scores)
		}
	}

	return pairs, nil
}

// alignErrorKind classifies an error the align package returns into the
// SPEC_FULL.md §7 Kind it represents: invalid restart/sample counts are
// configuration errors (validateFlags should normally catch these first),
// an empty level is an input-format condition (a level with no scored
// entities), and anything else (e.g. a failed eigendecomposition) is a
// resource error.
func alignErrorKind(err error) xalign.Kind {
	switch {
	case errors.Is(err, align.ErrInvalidRestart), errors.Is(err, align.ErrInvalidSteps):
		return xalign.KindConfiguration
	case errors.Is(err, align.ErrEmptyLevel):
		return xalign.KindInputFormat
	default:
		return xalign.KindResource
	}
}
