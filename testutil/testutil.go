package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint32n returns a pseudo-random uint32 in [0,n). n must be positive.
func (r *RNG) Uint32n(n uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return uint32(r.rand.Int63n(int64(n)))
}

// Indices returns count pseudo-random indices in [0,max), duplicates
// allowed. max must be positive. A small max yields a dense workload, a
// large max a sparse one.
// Locks only once per call (preferred over calling Uint32n in a loop).
func (r *RNG) Indices(count int, max uint32) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, count)
	for i := range out {
		out[i] = uint32(r.rand.Int63n(int64(max)))
	}
	return out
}

// Distinct returns the distinct values of indices. The result order is
// unspecified. Useful for computing expected cardinalities.
func Distinct(indices []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(indices))
	out := make([]uint32, 0, len(indices))
	for _, idx := range indices {
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}
