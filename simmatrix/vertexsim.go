package simmatrix

import "strings"

// LevelPair identifies an unordered pair of levels by name, normalized so
// that Pair(a,b) == Pair(b,a). VertexSimMap is keyed on the normalized
// pair so a lookup in either order returns the same entries.
type LevelPair struct {
	A, B string
}

// NewLevelPair returns a LevelPair with A <= B lexically, so the pair is
// identical regardless of argument order.
func NewLevelPair(l1, l2 string) LevelPair {
	if l1 <= l2 {
		return LevelPair{A: l1, B: l2}
	}
	return LevelPair{A: l2, B: l1}
}

// VertexEntry is one cross-level similarity triple: entity i (assumed
// present in the pair's first level in allocation order) is similar to
// entity j (in the second) with weight Sim.
type VertexEntry struct {
	I, J int
	Sim  float64
}

// VertexSimMap is the symmetric (levelA, levelB) -> cross-level entity
// similarity mapping of SPEC_FULL.md §3. Entries are stored per
// normalized LevelPair; For reports entries oriented for a specific
// (from, to) query direction.
type VertexSimMap struct {
	entries map[LevelPair][]VertexEntry
}

// NewVertexSimMap returns an empty map with no entries.
func NewVertexSimMap() *VertexSimMap {
	return &VertexSimMap{entries: make(map[LevelPair][]VertexEntry)}
}

// Add records that entity i (in level "from") and entity j (in level "to")
// have cross-level similarity sim. Order of from/to is preserved for For's
// orientation logic.
func (v *VertexSimMap) Add(from, to string, i, j int, sim float64) {
	pair := NewLevelPair(from, to)
	entry := VertexEntry{I: i, J: j, Sim: sim}
	if from != pair.A {
		// Normalize storage orientation to (A,B); swap i/j accordingly.
		entry = VertexEntry{I: j, J: i, Sim: sim}
	}
	v.entries[pair] = append(v.entries[pair], entry)
}

// For returns the similarity triples for the unordered pair (l1, l2),
// oriented so that I indexes an entity of l1 and J indexes an entity of
// l2 — swapping storage orientation if the caller asked in the opposite
// order from how entries were Added.
func (v *VertexSimMap) For(l1, l2 string) []VertexEntry {
	pair := NewLevelPair(l1, l2)
	stored := v.entries[pair]
	if l1 == pair.A {
		out := make([]VertexEntry, len(stored))
		copy(out, stored)
		return out
	}

	out := make([]VertexEntry, len(stored))
	for k, e := range stored {
		out[k] = VertexEntry{I: e.J, J: e.I, Sim: e.Sim}
	}

	return out
}

// IdentityVertexSimMap builds the default VertexSimMap of SPEC_FULL.md §3:
// every entity is similar to itself with weight 1, across every pair of
// the given levels, and nothing else. entityDiffSep, when non-empty,
// additionally matches a name in one level against a differently
// suffixed name in another level when their prefixes up to the first
// occurrence of the separator are equal and exactly one of the two names
// contains the separator.
//
// names maps a global registry index to its interned name; levelEntities
// maps a level name to the set of entity indices present in that level.
func IdentityVertexSimMap(names []string, levelEntities map[string][]int, entityDiffSep string) *VertexSimMap {
	out := NewVertexSimMap()

	levels := make([]string, 0, len(levelEntities))
	for l := range levelEntities {
		levels = append(levels, l)
	}

	for a := 0; a < len(levels); a++ {
		for b := a + 1; b < len(levels); b++ {
			l1, l2 := levels[a], levels[b]
			for _, i := range levelEntities[l1] {
				for _, j := range levelEntities[l2] {
					if i == j {
						out.Add(l1, l2, i, j, 1.0)
						continue
					}
					if entityDiffSep != "" && sameEntityModuloSuffix(names[i], names[j], entityDiffSep) {
						out.Add(l1, l2, i, j, 1.0)
					}
				}
			}
		}
	}

	return out
}

// sameEntityModuloSuffix implements the entity-diff rule of SPEC_FULL.md
// §3: a and b are the same entity iff exactly one of them contains sep,
// and the prefixes up to the first sep are equal.
func sameEntityModuloSuffix(a, b, sep string) bool {
	ai := strings.Index(a, sep)
	bi := strings.Index(b, sep)
	hasA := ai >= 0
	hasB := bi >= 0
	if hasA == hasB {
		return false // either both or neither contain sep: not this rule's case
	}

	prefixA := a
	if hasA {
		prefixA = a[:ai]
	}
	prefixB := b
	if hasB {
		prefixB = b[:bi]
	}

	return prefixA == prefixB
}
