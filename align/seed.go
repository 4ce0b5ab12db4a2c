package align

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
)

// jobSeed derives a deterministic per-job seed from (level pair, entity
// index, global seed) via an FNV-1a mix, per SPEC_FULL.md §5: "a
// deterministic per-job RNG seed derived from (level pair, entity index,
// a global seed)". It never touches the shared global RNG.
func jobSeed(levelA, levelB string, entity int, global uint64) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(levelA))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(levelB))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(entity)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.FormatUint(global, 16)))

	return h.Sum64()
}

// newJobRand returns a per-job *rand.Rand seeded deterministically, never
// sharing state with any other job (SPEC_FULL.md §5, "Shared resources").
func newJobRand(levelA, levelB string, entity int, global uint64) *rand.Rand {
	seed := jobSeed(levelA, levelB, entity, global)
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
