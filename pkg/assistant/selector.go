package assistant

import (
	"math/rand"
	"sync"
)

// Selector picks one of n response variants. Injected so tests can pin the
// choice.
type Selector interface {
	Pick(n int) int
}

type randSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandSelector returns a uniformly random Selector seeded with seed.
func NewRandSelector(seed int64) Selector {
	return &randSelector{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSelector) Pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
