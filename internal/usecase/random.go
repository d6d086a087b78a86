package usecase

import (
	"math/rand/v2"
	"sync"
)

// LockedSource is a random source safe for concurrent requests.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedSource - a zero seed draws the seed from the runtime generator.
func NewLockedSource(seed uint64) *LockedSource {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return &LockedSource{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (that *LockedSource) IntN(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rng.IntN(n)
}
