package align

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crosslevel/xalign/simmatrix"
)

// Cosine implements SPEC_FULL.md §4.4: given the two levels' already-built
// EdgeSimMatrix values and the VertexSimMap entries for this level pair
// (oriented either direction — InjectVertexSim is symmetric in I/J), it
// produces a NodeCorrScores vector over the global entity space of size n.
//
// Per-vertex jobs (cosine + confidence statistic) run on a worker pool
// bounded by WithWorkers and are cancelled as a group if any one fails
// (SPEC_FULL.md §5, Cancellation); the aggregator-facing result is only
// returned once every job has completed.
func Cosine(ctx context.Context, levelA, levelB string, n int, e1, e2 *simmatrix.EdgeSimMatrix, vertexEntries []simmatrix.VertexEntry, opts ...CosineOption) (*NodeCorrScores, error) {
	cfg := newCosineConfig(opts...)
	if cfg.samples < 1 {
		return nil, ErrInvalidSteps
	}

	e1p, err := simmatrix.InjectVertexSim(e1, vertexEntries)
	if err != nil {
		return nil, err
	}
	e2p, err := simmatrix.InjectVertexSim(e2, vertexEntries)
	if err != nil {
		return nil, err
	}

	shared := sharedRows(e1p, e2p)
	result := NewNodeCorrScores(n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)

	for _, k := range shared {
		k := k
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			xs := densify(e1p.Row(k), n)
			ys := densify(e2p.Row(k), n)

			score, degenerate := cosineDense(xs, ys)
			if degenerate {
				cfg.logger.Warn().
					Str("levelA", levelA).
					Str("levelB", levelB).
					Int("entity", k).
					Msg("zero-norm neighborhood vector during cosine alignment, score reset to 0")
			}

			rng := newJobRand(levelA, levelB, k, cfg.seed)
			var st Statistic
			if cfg.confidence == ConfidencePermutation {
				st = permutationStat(xs, ys, cfg.samples, rng)
			} else {
				st = bcaBootstrap(xs, ys, cfg.samples, rng, cfg.nanPolicy)
			}

			result.Scores[k] = score
			result.Stats[k] = &st

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// sharedRows returns the sorted set intersection of e1 and e2's row
// indices — the entities present as a neighborhood row in both levels
// (SPEC_FULL.md §4.4 step 3).
func sharedRows(e1, e2 *simmatrix.EdgeSimMatrix) []int {
	a := e1.RowIndices()
	bSet := make(map[int]struct{}, len(a))
	for _, i := range e2.RowIndices() {
		bSet[i] = struct{}{}
	}

	out := make([]int, 0, len(a))
	for _, i := range a {
		if _, ok := bSet[i]; ok {
			out = append(out, i)
		}
	}

	return out
}
