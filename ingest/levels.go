package ingest

import (
	"fmt"
	"sort"

	"github.com/crosslevel/xalign"
	"github.com/crosslevel/xalign/registry"
)

// BuildLevels implements SPEC_FULL.md §4.2: groups rows by level, then by
// replicate, interning every entity name into reg, producing one
// StandardLevel per level with replicates in sorted-name order.
//
// Fails with a *xalign.FatalError of KindInputFormat if the same
// (level, replicate, entity) triple appears more than once.
func BuildLevels(rows []DataRow, reg *registry.Registry) (map[string]*StandardLevel, error) {
	type key struct {
		level, replicate, entity string
	}
	seen := make(map[key]struct{}, len(rows))

	// level -> replicate -> entity index -> intensity
	byLevel := make(map[string]map[string]map[int]float64)
	levelOrderSeen := make(map[string]struct{})

	for _, row := range rows {
		k := key{row.Level, row.Replicate, row.Entity}
		if _, dup := seen[k]; dup {
			return nil, xalign.NewFatalError(xalign.KindInputFormat,
				fmt.Errorf("%w: level=%q replicate=%q entity=%q", ErrDuplicateTriple, row.Level, row.Replicate, row.Entity))
		}
		seen[k] = struct{}{}

		idx, err := reg.Intern(row.Entity)
		if err != nil {
			return nil, xalign.NewFatalError(xalign.KindInputFormat, fmt.Errorf("ingest: interning %q: %w", row.Entity, err))
		}

		levelOrderSeen[row.Level] = struct{}{}
		reps, ok := byLevel[row.Level]
		if !ok {
			reps = make(map[string]map[int]float64)
			byLevel[row.Level] = reps
		}
		ents, ok := reps[row.Replicate]
		if !ok {
			ents = make(map[int]float64)
			reps[row.Replicate] = ents
		}
		ents[idx] = row.Intensity
	}

	out := make(map[string]*StandardLevel, len(byLevel))
	for level, reps := range byLevel {
		repNames := make([]string, 0, len(reps))
		for r := range reps {
			repNames = append(repNames, r)
		}
		sort.Strings(repNames)

		replicates := make([]map[int]float64, len(repNames))
		entitySet := make(map[int]struct{})
		for i, r := range repNames {
			replicates[i] = reps[r]
			for idx := range reps[r] {
				entitySet[idx] = struct{}{}
			}
		}

		entities := make([]int, 0, len(entitySet))
		for idx := range entitySet {
			entities = append(entities, idx)
		}
		sort.Ints(entities)

		out[level] = &StandardLevel{
			Name:           level,
			ReplicateNames: repNames,
			Replicates:     replicates,
			Entities:       entities,
			entitySet:      entitySet,
		}
	}

	return out, nil
}

// LevelNames returns the sorted names of levels, for deterministic
// iteration over level pairs (SPEC_FULL.md §5, ordering guarantees).
func LevelNames(levels map[string]*StandardLevel) []string {
	names := make([]string, 0, len(levels))
	for name := range levels {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
