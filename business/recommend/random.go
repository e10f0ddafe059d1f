package recommend

import (
	"math/rand/v2"
	"sync"
)

// RandomSource yields uniform values in [0, 1). It is the only source of
// non-determinism in ranking.
type RandomSource interface {
	Float64() float64
}

type lockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a goroutine-safe source seeded from the runtime.
func NewRandomSource() RandomSource {
	return &lockedRand{rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

// FixedRandom always returns the same value. FixedRandom(0.5) means zero
// jitter.
type FixedRandom float64

func (f FixedRandom) Float64() float64 {
	return float64(f)
}
