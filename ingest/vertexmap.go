package ingest

import (
	"fmt"

	"github.com/crosslevel/xalign"
	"github.com/crosslevel/xalign/registry"
	"github.com/crosslevel/xalign/simmatrix"
)

// BuildVertexSimMap implements the explicit half of SPEC_FULL.md §3's
// VertexSimMap: turns user-supplied vertex-similarity rows into a
// simmatrix.VertexSimMap, validating that every referenced level and
// entity is one the data input actually produced (SPEC_FULL.md §7, kind
// 2, Reference error).
//
// reg must already have every data-input entity interned (and may be
// frozen); levels is the result of BuildLevels.
func BuildVertexSimMap(rows []VertexRow, reg *registry.Registry, levels map[string]*StandardLevel) (*simmatrix.VertexSimMap, error) {
	out := simmatrix.NewVertexSimMap()

	for _, row := range rows {
		lvl1, ok := levels[row.Level1]
		if !ok {
			return nil, xalign.NewFatalError(xalign.KindReference, fmt.Errorf("%w: %q", ErrUnknownLevel, row.Level1))
		}
		lvl2, ok := levels[row.Level2]
		if !ok {
			return nil, xalign.NewFatalError(xalign.KindReference, fmt.Errorf("%w: %q", ErrUnknownLevel, row.Level2))
		}

		i, err := reg.Intern(row.Entity1)
		if err != nil || !lvl1.HasEntity(i) {
			return nil, xalign.NewFatalError(xalign.KindReference, fmt.Errorf("%w: %q in level %q", ErrUnknownEntity, row.Entity1, row.Level1))
		}
		j, err := reg.Intern(row.Entity2)
		if err != nil || !lvl2.HasEntity(j) {
			return nil, xalign.NewFatalError(xalign.KindReference, fmt.Errorf("%w: %q in level %q", ErrUnknownEntity, row.Entity2, row.Level2))
		}

		out.Add(row.Level1, row.Level2, i, j, row.Similarity)
	}

	return out, nil
}

// DefaultVertexSimMap builds the identity VertexSimMap of SPEC_FULL.md §3
// when no vertex-input file is supplied: every entity is similar to
// itself (weight 1) across every pair of levels, with an optional
// entity-diff suffix rule (see simmatrix.IdentityVertexSimMap).
func DefaultVertexSimMap(reg *registry.Registry, levels map[string]*StandardLevel, entityDiffSep string) *simmatrix.VertexSimMap {
	names := reg.Names()

	levelEntities := make(map[string][]int, len(levels))
	for name, lvl := range levels {
		levelEntities[name] = lvl.Entities
	}

	return simmatrix.IdentityVertexSimMap(names, levelEntities, entityDiffSep)
}
