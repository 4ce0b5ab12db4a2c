package simmatrix

import "sort"

// DefaultEdge is the sentinel written for an entity pair that was
// considered but could not be scored (fewer than two shared replicate
// positions). It is chosen outside [-1,1] so it can never be confused with
// a real similarity value (SPEC_FULL.md §3, EdgeSimMatrix invariant b).
const DefaultEdge = -5.0

// MaximumEdge is the upper clamp applied to every computed edge
// similarity (SPEC_FULL.md §4.3, parameter MaximumEdge).
const MaximumEdge = 1.0

// EdgeSimMatrix is a sparse symmetric N-entity similarity matrix for a
// single level. Rows are keyed by global registry index; within a row,
// columns are keyed the same way. A (row, col) pair that has never been
// Set is unknown, not zero — callers must use At's ok return, not the
// zero value of float64.
//
// The diagonal is left unset by the edge-similarity builder (SPEC_FULL.md
// §4.3) and is the designated location for InjectVertexSim to write
// cross-level similarities into — though InjectVertexSim may write any
// (i,j) pair, diagonal or not (see inject.go).
type EdgeSimMatrix struct {
	n    int
	rows map[int]map[int]float64
}

// NewEdgeSimMatrix returns an empty n-sized matrix with no entries set.
func NewEdgeSimMatrix(n int) (*EdgeSimMatrix, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}

	return &EdgeSimMatrix{
		n:    n,
		rows: make(map[int]map[int]float64),
	}, nil
}

// N returns the matrix's declared dimension.
func (m *EdgeSimMatrix) N() int {
	return m.n
}

// Set writes the same value at (i,j) and (j,i), maintaining symmetry.
// Set(i,i,v) writes a single diagonal entry.
func (m *EdgeSimMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return ErrOutOfRange
	}

	m.set1(i, j, v)
	if i != j {
		m.set1(j, i, v)
	}

	return nil
}

func (m *EdgeSimMatrix) set1(i, j int, v float64) {
	row, ok := m.rows[i]
	if !ok {
		row = make(map[int]float64)
		m.rows[i] = row
	}
	row[j] = v
}

// At returns the value stored at (i,j) and whether it has ever been Set.
func (m *EdgeSimMatrix) At(i, j int) (float64, bool) {
	row, ok := m.rows[i]
	if !ok {
		return 0, false
	}
	v, ok := row[j]

	return v, ok
}

// Row returns a defensive copy of the sparse neighborhood vector for
// entity i: a map from column index to stored value. An absent row
// (entity i has no entries at all) returns a non-nil empty map.
func (m *EdgeSimMatrix) Row(i int) map[int]float64 {
	row, ok := m.rows[i]
	if !ok {
		return map[int]float64{}
	}

	out := make(map[int]float64, len(row))
	for k, v := range row {
		out[k] = v
	}

	return out
}

// HasRow reports whether entity i has at least one stored entry — i.e.
// whether i is a "vertex present" in this level's matrix per SPEC_FULL.md
// §4.4 step 3 (set intersection of rows).
func (m *EdgeSimMatrix) HasRow(i int) bool {
	row, ok := m.rows[i]
	return ok && len(row) > 0
}

// RowIndices returns the sorted set of entity indices that have at least
// one stored row entry, for deterministic iteration.
func (m *EdgeSimMatrix) RowIndices() []int {
	out := make([]int, 0, len(m.rows))
	for i, row := range m.rows {
		if len(row) > 0 {
			out = append(out, i)
		}
	}
	sort.Ints(out)

	return out
}

// Clone returns a deep copy, used so InjectVertexSim can mutate a working
// copy without disturbing the matrix shared across workers (SPEC_FULL.md
// §4.3, "work on copies").
func (m *EdgeSimMatrix) Clone() *EdgeSimMatrix {
	out := &EdgeSimMatrix{
		n:    m.n,
		rows: make(map[int]map[int]float64, len(m.rows)),
	}
	for i, row := range m.rows {
		cp := make(map[int]float64, len(row))
		for j, v := range row {
			cp[j] = v
		}
		out.rows[i] = cp
	}

	return out
}
