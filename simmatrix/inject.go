package simmatrix

// InjectVertexSim implements SPEC_FULL.md §4.3's diagonal-injection
// operation: it returns a copy of E with E[i,j] = E[j,i] = entry.Sim
// written for every entry in entries, leaving E itself untouched.
//
// entries are typically VertexEntry values from VertexSimMap.For(L1, L2)
// for the level E belongs to, where I indexes an entity of this level and
// J indexes an entity of the other level — in the common identity-map
// case I == J and the write lands on the diagonal, but InjectVertexSim
// makes no such assumption: it is defined for any (I,J) pair.
//
// Idempotent: InjectVertexSim(InjectVertexSim(E, V), V) produces the same
// matrix as InjectVertexSim(E, V), because both calls write the exact
// same (i,j) -> v entries, overwriting whatever was previously there.
func InjectVertexSim(e *EdgeSimMatrix, entries []VertexEntry) (*EdgeSimMatrix, error) {
	out := e.Clone()
	for _, entry := range entries {
		if err := out.Set(entry.I, entry.J, entry.Sim); err != nil {
			return nil, err
		}
	}

	return out, nil
}
